package images

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedImage marks input that could not be decoded as an image.
var ErrUnsupportedImage = errors.New("unsupported image data")

const (
	// variantWorkers bounds concurrent encodes per processed image.
	variantWorkers = 4

	placeholderWidth   = 20
	placeholderQuality = 40

	hashLen = 12
)

// Variant is one encoded rendition of a processed image.
type Variant struct {
	Preset   string
	Format   string // "jpeg" or "webp"
	Filename string
	Width    int
	Height   int
	Data     []byte
}

// Result holds everything produced from one source image.
type Result struct {
	Hash   string
	Width  int
	Height int

	// BlurPlaceholder is a tiny JPEG as a base64 data URI, suitable for
	// inlining while the real rendition loads.
	BlurPlaceholder string

	Variants []Variant
}

// Processor converts an uploaded image into the preset rendition ladder.
type Processor struct {
	presets []Preset
}

func NewProcessor() *Processor {
	return &Processor{presets: Presets()}
}

// Process decodes the source, flattens transparency onto white, and encodes
// a JPEG and WebP variant per preset concurrently. Renditions never upscale:
// a source smaller than the preset box keeps its dimensions.
func (p *Processor) Process(ctx context.Context, content []byte, baseName string) (*Result, error) {
	src, err := imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	src = flattenOntoWhite(src)

	hash := fmt.Sprintf("%x", md5.Sum(content))[:hashLen]
	bounds := src.Bounds()

	result := &Result{
		Hash:   hash,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	result.BlurPlaceholder, err = blurPlaceholder(src)
	if err != nil {
		return nil, err
	}

	type job struct {
		preset Preset
		format string
	}
	var jobs []job
	for _, preset := range p.presets {
		jobs = append(jobs, job{preset, "jpeg"}, job{preset, "webp"})
	}

	variants := make([]Variant, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(variantWorkers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			v, err := encodeVariant(src, j.preset, j.format, baseName, hash)
			if err != nil {
				return err
			}
			variants[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Variants = variants
	return result, nil
}

// flattenOntoWhite composites the image over a white background so alpha
// does not turn black in JPEG output.
func flattenOntoWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}

func encodeVariant(src image.Image, preset Preset, format, baseName, hash string) (Variant, error) {
	out := src
	if preset.Resizes() {
		// Fit scales down to the bounding box and leaves smaller images
		// untouched.
		out = imaging.Fit(src, preset.MaxWidth, preset.MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(preset.Quality))
	case "webp":
		err = webp.Encode(&buf, out, &webp.Options{Quality: float32(preset.Quality)})
	default:
		err = fmt.Errorf("unknown variant format %q", format)
	}
	if err != nil {
		return Variant{}, fmt.Errorf("encode %s/%s: %w", preset.Name, format, err)
	}

	ext := format
	if format == "jpeg" {
		ext = "jpg"
	}
	bounds := out.Bounds()
	return Variant{
		Preset:   preset.Name,
		Format:   format,
		Filename: fmt.Sprintf("%s-%s-%s.%s", baseName, preset.Name, hash, ext),
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Data:     buf.Bytes(),
	}, nil
}

// blurPlaceholder shrinks the image to 20px wide and inlines it as a JPEG
// data URI.
func blurPlaceholder(src image.Image) (string, error) {
	tiny := imaging.Resize(src, placeholderWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, tiny, imaging.JPEG, imaging.JPEGQuality(placeholderQuality)); err != nil {
		return "", fmt.Errorf("blur placeholder: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
