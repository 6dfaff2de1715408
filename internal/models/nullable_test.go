package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"realartist-backend/internal/models"
)

func TestProjectPatch_NullIsNotOmitted(t *testing.T) {
	var patch models.ProjectPatch
	require.NoError(t, json.Unmarshal([]byte(`{"audioUrl":null,"lyrics":"new words"}`), &patch))

	assert.True(t, patch.AudioURL.Set)
	assert.Nil(t, patch.AudioURL.Value)
	require.True(t, patch.Lyrics.Set)
	assert.Equal(t, "new words", *patch.Lyrics.Value)
	assert.False(t, patch.WatermarkID.Set)
}

func TestProjectPatch_WrongTypeNamesField(t *testing.T) {
	var patch models.ProjectPatch
	err := json.Unmarshal([]byte(`{"mood":5}`), &patch)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "mood", typeErr.Field)
}

func TestProject_ApplyClearsAndKeeps(t *testing.T) {
	audio, watermark := "/api/audio/a.mp3", "WM_1"
	p := models.Project{Title: "T", AudioURL: &audio, WatermarkID: &watermark}

	p.Apply(models.ProjectPatch{
		AudioURL: models.Null[string](),
		Genre:    models.NullableOf("pop"),
	})

	assert.Nil(t, p.AudioURL)
	require.NotNil(t, p.WatermarkID)
	assert.Equal(t, "WM_1", *p.WatermarkID)
	require.NotNil(t, p.Genre)
	assert.Equal(t, "pop", *p.Genre)
	assert.Equal(t, "T", p.Title)
}

func TestNullable_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(models.NullableOf("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))

	b, err = json.Marshal(models.Null[string]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
