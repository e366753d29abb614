package exporter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/exporter"
	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

func TestExportPDFEmptyRecord(t *testing.T) {
	record := laudo.Normalize("precautionary", nil, nil, "", "")

	result, err := exporter.Export(record, exporter.TargetPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.ContentType)
	require.Greater(t, len(result.Data), 4)
	assert.Equal(t, "%PDF", string(result.Data[:4]))
}

func TestExportPDFSurvivesUndecodableImages(t *testing.T) {
	// broken sources degrade to placeholder boxes, never fail the export
	record := laudo.Normalize("extrajudicial", nil,
		[]laudo.Photo{
			{ID: "1", Source: "data:image/jpeg;base64,not-base64!!", Caption: "Foto"},
			{ID: "2", Source: "ftp://nowhere/img.jpg"},
		},
		"data:image/png;base64,AAAA", "data:image/png;base64,AAAA")

	result, err := exporter.Export(record, exporter.TargetPDF)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(result.Data[:4]))
}

func TestExportPDFPageCountGrowsWithPhotos(t *testing.T) {
	base := laudo.Normalize("precautionary", nil, nil, "", "")
	withPhotos := laudo.Normalize("precautionary", nil,
		[]laudo.Photo{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}, "", "")

	small, err := exporter.Export(base, exporter.TargetPDF)
	require.NoError(t, err)
	large, err := exporter.Export(withPhotos, exporter.TargetPDF)
	require.NoError(t, err)

	// 3 pages vs 6 pages of drawn content
	assert.Greater(t, len(large.Data), len(small.Data))
}
