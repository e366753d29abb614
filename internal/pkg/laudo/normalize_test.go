package laudo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	record := laudo.Normalize(string(laudo.KindPrecautionary),
		map[string]string{laudo.FieldAddress: "Rua A, 10"}, nil, "", "")

	assert.Equal(t, laudo.KindPrecautionary, record.Kind)
	assert.Equal(t, "Rua A, 10", record.Field(laudo.FieldAddress))

	for _, key := range laudo.RecognizedFields(record.Kind) {
		_, ok := record.Fields[key]
		assert.True(t, ok, "recognized field %q must be present", key)
	}
}

func TestNormalizePreservesUnrecognizedFields(t *testing.T) {
	record := laudo.Normalize(string(laudo.KindAccounting),
		map[string]string{"legacyNote": "kept"}, nil, "", "")

	assert.Equal(t, "kept", record.Field("legacyNote"))
}

func TestNormalizeUnknownKindFallsBack(t *testing.T) {
	record := laudo.Normalize("fiscal", nil, nil, "", "")

	assert.Equal(t, laudo.KindPrecautionary, record.Kind)
	_, ok := record.Fields[laudo.FieldConservationState]
	assert.True(t, ok)
}

func TestNormalizeKeepsPhotoOrder(t *testing.T) {
	photos := []laudo.Photo{
		{ID: "c", Caption: "terceira"},
		{ID: "a", Caption: "primeira"},
		{ID: "b", Caption: "segunda"},
	}
	record := laudo.Normalize(string(laudo.KindPrecautionary), nil, photos, "", "")

	require.Len(t, record.Photos, 3)
	assert.Equal(t, "c", record.Photos[0].ID)
	assert.Equal(t, "a", record.Photos[1].ID)
	assert.Equal(t, "b", record.Photos[2].ID)
}

func TestRecognizedFieldSetsDiverge(t *testing.T) {
	accounting := laudo.RecognizedFields(laudo.KindAccounting)
	precautionary := laudo.RecognizedFields(laudo.KindPrecautionary)

	assert.Contains(t, accounting, laudo.FieldCNPJ)
	assert.NotContains(t, accounting, laudo.FieldOccupant)
	assert.Contains(t, precautionary, laudo.FieldOccupant)
	assert.NotContains(t, precautionary, laudo.FieldCNPJ)
}

func TestFieldOr(t *testing.T) {
	record := laudo.Normalize(string(laudo.KindPrecautionary),
		map[string]string{laudo.FieldOccupant: ""}, nil, "", "")

	assert.Equal(t, laudo.FallbackValue, record.FieldOr(laudo.FieldOccupant, laudo.FallbackValue))
	assert.Equal(t, laudo.FallbackValue, record.FieldOr("missing", laudo.FallbackValue))
}

func TestDataSheetRowsPerKind(t *testing.T) {
	tests := []struct {
		kind       laudo.Kind
		firstLabel string
	}{
		{laudo.KindPrecautionary, "Ocupante / telefone:"},
		{laudo.KindAccounting, "Empresa:"},
		{laudo.KindExtrajudicial, "Número do processo:"},
	}
	for _, tt := range tests {
		rows := laudo.DataSheetRows(tt.kind)
		require.Len(t, rows, 7, "kind %s", tt.kind)
		assert.Equal(t, tt.firstLabel, rows[0].Label)
	}
}

func TestDefaultFieldsCoverRecognizedSet(t *testing.T) {
	for _, kind := range []laudo.Kind{laudo.KindPrecautionary, laudo.KindAccounting, laudo.KindExtrajudicial} {
		defaults := laudo.DefaultFields(kind)
		for _, key := range laudo.RecognizedFields(kind) {
			_, ok := defaults[key]
			assert.True(t, ok, "kind %s missing default for %q", kind, key)
		}
	}
}
