package upload

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestValidateImageSource(t *testing.T) {
	assert.NoError(t, ValidateImageSource(""))
	assert.NoError(t, ValidateImageSource("https://example.com/photo.jpg"))
	assert.NoError(t, ValidateImageSource("http://example.com/photo.jpg"))
	assert.NoError(t, ValidateImageSource(pngDataURL(t)))
}

func TestValidateImageSourceRejectsNonImages(t *testing.T) {
	html := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte("<html><body>x</body></html>"))
	assert.Error(t, ValidateImageSource(html))

	svg := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`))
	assert.Error(t, ValidateImageSource(svg))

	assert.Error(t, ValidateImageSource("ftp://example.com/photo.jpg"))
	assert.Error(t, ValidateImageSource("data:image/png"))
}
