package imagepipeline_test

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/imagepipeline"
)

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 30, G: 120, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)))
	return buf.Bytes()
}

func TestReencodeShrinksToFit(t *testing.T) {
	data := testJPEG(t, 1600, 1200)

	enc, err := imagepipeline.ReencodeBytes(data, imagepipeline.PhotoProfile)
	require.NoError(t, err)

	assert.Equal(t, "jpeg", enc.Format)
	assert.Equal(t, 800, enc.Width)
	assert.Equal(t, 600, enc.Height)
	assert.NotEmpty(t, enc.Data)
}

func TestReencodePreservesAspectRatio(t *testing.T) {
	data := testJPEG(t, 1600, 400)

	enc, err := imagepipeline.ReencodeBytes(data, imagepipeline.PhotoProfile)
	require.NoError(t, err)

	assert.Equal(t, 800, enc.Width)
	assert.Equal(t, 200, enc.Height)
}

func TestReencodeNeverUpscales(t *testing.T) {
	data := testJPEG(t, 100, 50)

	enc, err := imagepipeline.ReencodeBytes(data, imagepipeline.PhotoProfile)
	require.NoError(t, err)

	assert.Equal(t, 100, enc.Width)
	assert.Equal(t, 50, enc.Height)
}

func TestReencodeLogoProfileIsLossless(t *testing.T) {
	data := testJPEG(t, 600, 200)

	enc, err := imagepipeline.ReencodeBytes(data, imagepipeline.LogoProfile)
	require.NoError(t, err)

	assert.Equal(t, "png", enc.Format)
	assert.LessOrEqual(t, enc.Width, 200)
	assert.LessOrEqual(t, enc.Height, 80)

	decoded, err := imaging.Decode(bytes.NewReader(enc.Data))
	require.NoError(t, err)
	assert.Equal(t, enc.Width, decoded.Bounds().Dx())
}

func TestReencodeMalformedDataFails(t *testing.T) {
	_, err := imagepipeline.ReencodeBytes([]byte("definitely not an image"), imagepipeline.PhotoProfile)

	require.Error(t, err)
	assert.ErrorIs(t, err, imagepipeline.ErrImageDecode)
}

func TestLoadDataURL(t *testing.T) {
	raw := testJPEG(t, 20, 20)
	source := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	data, err := imagepipeline.Load(source)
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestLoadRejectsBadSources(t *testing.T) {
	for _, source := range []string{"", "data:image/jpeg;base64,", "ftp://host/img.jpg", "not-a-url"} {
		_, err := imagepipeline.Load(source)
		assert.ErrorIs(t, err, imagepipeline.ErrImageDecode, "source %q", source)
	}
}

func TestPlaceholderDimensions(t *testing.T) {
	enc := imagepipeline.Placeholder("Imagem não disponível", 400, 300)

	assert.Equal(t, "png", enc.Format)
	assert.Equal(t, 400, enc.Width)
	assert.Equal(t, 300, enc.Height)

	decoded, err := imaging.Decode(bytes.NewReader(enc.Data))
	require.NoError(t, err)
	assert.Equal(t, 400, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())
}

func TestMustReencodeDegradesToPlaceholder(t *testing.T) {
	enc := imagepipeline.MustReencode("data:image/jpeg;base64,%%%garbage", imagepipeline.PhotoProfile, "Imagem não disponível")

	require.NotNil(t, enc)
	assert.Equal(t, "png", enc.Format)
	assert.Equal(t, imagepipeline.PhotoProfile.MaxWidth, enc.Width)
	assert.NotEmpty(t, enc.Data)
}
