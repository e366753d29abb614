package exporter_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/exporter"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

func testJPEGDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestExportBothTargets(t *testing.T) {
	photo := testJPEGDataURL(t, 64, 48)
	record := laudo.Normalize(string(laudo.KindPrecautionary),
		map[string]string{
			laudo.FieldTitle: "Vistoria Cautelar – Rua das Flores, 123",
			laudo.FieldDate:  "01/09/2026",
		},
		[]laudo.Photo{
			{ID: "1", Source: photo, Caption: "Fachada"},
			{ID: "2", Source: photo, Caption: "Telhado"},
			{ID: "3", Source: ""},
		},
		photo, photo)

	for _, target := range []exporter.Target{exporter.TargetPDF, exporter.TargetWord} {
		result, err := exporter.Export(record, target)
		require.NoError(t, err, "target %s", target)
		assert.NotEmpty(t, result.Data)
		assert.NotEmpty(t, result.ContentType)
	}
}

func TestExportSamePlanAcrossTargets(t *testing.T) {
	// three photos give 3 front-matter pages + 2 photo pages
	record := laudo.Normalize(string(laudo.KindAccounting), nil,
		[]laudo.Photo{{ID: "1"}, {ID: "2"}, {ID: "3"}}, "", "")
	plan := laudo.BuildPlan(record)
	require.Equal(t, 5, plan.TotalPages)

	pdf, err := exporter.Export(record, exporter.TargetPDF)
	require.NoError(t, err)
	word, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)

	assert.NotEmpty(t, pdf.Data)
	assert.NotEmpty(t, word.Data)
}

func TestExportUnknownTarget(t *testing.T) {
	record := laudo.Normalize("precautionary", nil, nil, "", "")

	result, err := exporter.Export(record, exporter.Target("odt"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, exporter.ErrExportContainer)
}

func TestFilenameFromTitle(t *testing.T) {
	record := laudo.Normalize("precautionary",
		map[string]string{laudo.FieldTitle: "Vistoria 3: Rua Benedito dos Santos, 44 – Parque São Jorge"},
		nil, "", "")

	assert.Equal(t, "vistoria-3-rua-benedito-dos-santos-44-parque-sao-jorge.pdf",
		exporter.Filename(record, "pdf"))
}

func TestFilenameFallbackToKind(t *testing.T) {
	record := laudo.Normalize("accounting", map[string]string{laudo.FieldTitle: ""}, nil, "", "")

	assert.Equal(t, "laudo-accounting.docx", exporter.Filename(record, "docx"))
}
