package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"realartist-backend/internal/models"
)

func TestMetadata_ScanStringifiesNonStrings(t *testing.T) {
	var m models.Metadata
	err := m.Scan([]byte(`{"loginMethod":"password","success":true,"attempts":3,"ratio":0.25,"geo":{"country": "RO"},"tags":["a", "b"],"note":null}`))
	require.NoError(t, err)

	assert.Equal(t, models.Metadata{
		"loginMethod": "password",
		"success":     "true",
		"attempts":    "3",
		"ratio":       "0.25",
		"geo":         `{"country":"RO"}`,
		"tags":        `["a","b"]`,
		"note":        "",
	}, m)
}

func TestMetadata_ScanEmptyAndNull(t *testing.T) {
	var m models.Metadata
	require.NoError(t, m.Scan(nil))
	assert.Equal(t, models.Metadata{}, m)

	require.NoError(t, m.Scan("{}"))
	assert.Equal(t, models.Metadata{}, m)

	require.NoError(t, m.Scan([]byte{}))
	assert.Equal(t, models.Metadata{}, m)
}

func TestMetadata_ScanRejectsNonObjects(t *testing.T) {
	var m models.Metadata
	assert.Error(t, m.Scan([]byte(`["not","an","object"]`)))
	assert.Error(t, m.Scan(42))
}

func TestMetadata_ValueRoundTripsStrings(t *testing.T) {
	v, err := models.Metadata{"quality": "studio"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"quality":"studio"}`, string(v.([]byte)))

	v, err = models.Metadata(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}
