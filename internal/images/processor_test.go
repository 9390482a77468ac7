package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcess_GeneratesAllVariants(t *testing.T) {
	proc := NewProcessor()
	content := pngBytes(t, 1000, 500)

	result, err := proc.Process(context.Background(), content, "banner")
	require.NoError(t, err)

	assert.Len(t, result.Hash, 12)
	assert.Equal(t, 1000, result.Width)
	assert.Equal(t, 500, result.Height)

	require.Len(t, result.Variants, len(Presets())*2, "a JPEG and a WebP per preset")

	byKey := make(map[string]Variant)
	for _, v := range result.Variants {
		assert.NotEmpty(t, v.Data)
		assert.Contains(t, v.Filename, "banner-"+v.Preset+"-"+result.Hash)
		byKey[v.Preset+"/"+v.Format] = v
	}

	thumb := byKey["thumbnail/jpeg"]
	assert.Equal(t, 200, thumb.Width, "landscape thumbnail constrained by width")
	assert.Equal(t, 100, thumb.Height, "aspect ratio preserved")
	assert.True(t, strings.HasSuffix(thumb.Filename, ".jpg"))

	original := byKey["original/webp"]
	assert.Equal(t, 1000, original.Width)
	assert.True(t, strings.HasSuffix(original.Filename, ".webp"))
}

func TestProcess_NeverUpscales(t *testing.T) {
	proc := NewProcessor()
	content := pngBytes(t, 100, 50)

	result, err := proc.Process(context.Background(), content, "tiny")
	require.NoError(t, err)

	for _, v := range result.Variants {
		assert.Equal(t, 100, v.Width, "%s/%s keeps source width", v.Preset, v.Format)
		assert.Equal(t, 50, v.Height)
	}
}

func TestProcess_BlurPlaceholder(t *testing.T) {
	proc := NewProcessor()

	result, err := proc.Process(context.Background(), pngBytes(t, 640, 480), "photo")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.BlurPlaceholder, "data:image/jpeg;base64,"))
	assert.Less(t, len(result.BlurPlaceholder), 4096, "placeholder stays inline-sized")
}

func TestProcess_DeterministicHash(t *testing.T) {
	proc := NewProcessor()
	content := pngBytes(t, 64, 64)

	a, err := proc.Process(context.Background(), content, "a")
	require.NoError(t, err)
	b, err := proc.Process(context.Background(), content, "b")
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash, "hash keys on content, not name")
}

func TestProcess_UndecodableInput(t *testing.T) {
	proc := NewProcessor()

	_, err := proc.Process(context.Background(), []byte("definitely not an image"), "junk")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}
