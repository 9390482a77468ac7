package images

// Preset is one output rendition of an uploaded image.
type Preset struct {
	Name    string
	Quality int

	// MaxWidth/MaxHeight bound the rendition. Zero means keep the source
	// dimensions.
	MaxWidth  int
	MaxHeight int
}

// Resizes reports whether the preset constrains dimensions.
func (p Preset) Resizes() bool {
	return p.MaxWidth > 0 && p.MaxHeight > 0
}

// Presets returns the rendition ladder, smallest first.
func Presets() []Preset {
	return []Preset{
		{Name: "thumbnail", Quality: 70, MaxWidth: 200, MaxHeight: 200},
		{Name: "small", Quality: 80, MaxWidth: 400, MaxHeight: 400},
		{Name: "medium", Quality: 85, MaxWidth: 800, MaxHeight: 800},
		{Name: "large", Quality: 90, MaxWidth: 1600, MaxHeight: 1600},
		{Name: "original", Quality: 95},
	}
}
