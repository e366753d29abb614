package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

func TestReportFieldMapTolerantDecode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]string
	}{
		{"valid", `{"title":"Laudo","address":"Rua A, 1"}`, map[string]string{"title": "Laudo", "address": "Rua A, 1"}},
		{"empty column", ``, map[string]string{}},
		{"corrupt json", `{"title":"Laudo`, map[string]string{}},
		{"wrong shape", `["not","a","map"]`, map[string]string{}},
		{"mixed value types", `{"title":"Laudo","age":42,"nested":{"x":1}}`, map[string]string{"title": "Laudo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Report{ReportData: JSONColumn(tt.data)}
			assert.Equal(t, tt.want, report.FieldMap())
		})
	}
}

func TestReportPhotoListTolerantDecode(t *testing.T) {
	report := Report{Photos: JSONColumn(`[{"id":"1","url":"data:image/jpeg;base64,AAAA","caption":"Fachada"}]`)}
	photos := report.PhotoList()
	require.Len(t, photos, 1)
	assert.Equal(t, "1", photos[0].ID)
	assert.Equal(t, "Fachada", photos[0].Caption)

	corrupt := Report{Photos: JSONColumn(`{broken`)}
	assert.Nil(t, corrupt.PhotoList())

	empty := Report{}
	assert.Nil(t, empty.PhotoList())
}

func TestReportToRecordExtractsCoverImages(t *testing.T) {
	report := Report{Kind: "precautionary"}
	require.NoError(t, report.SetFieldMap(map[string]string{
		"title":         "Vistoria",
		"locationImage": "data:image/png;base64,LOC",
		"logoImage":     "data:image/png;base64,LOGO",
	}))

	record := report.ToRecord()
	assert.Equal(t, "data:image/png;base64,LOC", record.LocationImage)
	assert.Equal(t, "data:image/png;base64,LOGO", record.LogoImage)
	assert.Equal(t, "Vistoria", record.Field(laudo.FieldTitle))
	assert.NotContains(t, record.Fields, "locationImage")
	assert.NotContains(t, record.Fields, "logoImage")
}

func TestReportToRecordFallsBackToTitleColumn(t *testing.T) {
	report := Report{Kind: "accounting", Title: "Laudo Contábil"}

	record := report.ToRecord()
	assert.Equal(t, laudo.KindAccounting, record.Kind)
	assert.Equal(t, "Laudo Contábil", record.Field(laudo.FieldTitle))
}

func TestReportJSONColumnRoundTrip(t *testing.T) {
	var col JSONColumn
	require.NoError(t, col.Scan([]byte(`{"a":"b"}`)))

	value, err := col.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, value)
}
