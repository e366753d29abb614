package exporter_test

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/exporter"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

func unzipDocx(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	parts := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		parts[f.Name] = string(content)
	}
	return parts
}

func TestExportWordContainerLayout(t *testing.T) {
	record := laudo.Normalize("precautionary", nil, nil, "", "")

	result, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		result.ContentType)

	parts := unzipDocx(t, result.Data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/footer1.xml",
	} {
		assert.Contains(t, parts, name)
	}
}

func TestExportWordPageBreaks(t *testing.T) {
	record := laudo.Normalize("precautionary", nil,
		[]laudo.Photo{{ID: "1"}, {ID: "2"}, {ID: "3"}}, "", "")
	plan := laudo.BuildPlan(record)
	require.Equal(t, 5, plan.TotalPages)

	result, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)

	document := unzipDocx(t, result.Data)["word/document.xml"]
	breaks := strings.Count(document, `<w:br w:type="page">`)
	assert.Equal(t, plan.TotalPages-1, breaks)
}

func TestExportWordKindLabels(t *testing.T) {
	record := laudo.Normalize("accounting",
		map[string]string{"company": "Acme Ltda", "cnpj": "12.345.678/0001-00"},
		nil, "", "")

	result, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)

	document := unzipDocx(t, result.Data)["word/document.xml"]
	assert.Contains(t, document, "Empresa:")
	assert.Contains(t, document, "Acme Ltda")
	assert.Contains(t, document, "CNPJ:")
	assert.NotContains(t, document, "Ocupante / telefone:")
}

func TestExportWordFooter(t *testing.T) {
	record := laudo.Normalize("extrajudicial", nil, nil, "", "")

	result, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)

	footer := unzipDocx(t, result.Data)["word/footer1.xml"]
	assert.Contains(t, footer, laudo.FooterContact)
	assert.Contains(t, footer, " PAGE ")
	assert.Contains(t, footer, "begin")
}

func TestExportWordEmbedsPlaceholderMedia(t *testing.T) {
	// the cover location image always produces one media part, decodable or not
	record := laudo.Normalize("precautionary", nil,
		[]laudo.Photo{{ID: "1", Source: "data:image/jpeg;base64,broken"}}, "", "")

	result, err := exporter.Export(record, exporter.TargetWord)
	require.NoError(t, err)

	parts := unzipDocx(t, result.Data)
	var mediaCount int
	for name := range parts {
		if strings.HasPrefix(name, "word/media/") {
			mediaCount++
		}
	}
	// location placeholder + photo placeholder
	assert.Equal(t, 2, mediaCount)

	rels := parts["word/_rels/document.xml.rels"]
	assert.Contains(t, rels, "media/image1.png")
}
