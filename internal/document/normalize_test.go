package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

func decodeRaw(t *testing.T, data string) types.RawDocument {
	t.Helper()
	var raw types.RawDocument
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return raw
}

func TestNormalize_EmptyInput(t *testing.T) {
	doc := Normalize(types.RawDocument{}, ids.Sequence("id"))

	assert.Equal(t, "id-1", doc.ID)
	assert.Equal(t, types.CanonicalTemplate, doc.TemplateID)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)
	assert.False(t, doc.IsPinned)
	assert.Empty(t, doc.LastUpdated)
	assert.NotNil(t, doc.Experiences)
	assert.NotNil(t, doc.Education)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Languages)
	assert.NotNil(t, doc.Hobbies)
	require.NoError(t, doc.Validate())
}

func TestNormalize_LegacyDocumentWithoutThemeMode(t *testing.T) {
	raw := decodeRaw(t, `{
		"id": "legacy",
		"templateId": "blue",
		"fullName": "Ana",
		"experiences": [{"role": "Dev", "company": "ACME"}],
		"skills": [{"id": "s1", "name": "Go", "level": 80}]
	}`)

	doc := Normalize(raw, ids.Sequence("gen"))

	assert.Equal(t, "legacy", doc.ID)
	assert.Equal(t, "blue", doc.TemplateID)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)
	assert.Equal(t, "Ana", doc.FullName)
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, "gen-1", doc.Experiences[0].ID)
	assert.Equal(t, "ACME", doc.Experiences[0].Company)
	assert.Equal(t, "s1", doc.Skills[0].ID)
}

func TestNormalize_KeepsExistingValues(t *testing.T) {
	raw := decodeRaw(t, `{
		"id": "a", "templateId": "lilac", "themeMode": "light", "isPinned": true,
		"lastUpdated": "2024-01-01T00:00:00Z", "summary": "", "hobbies": ["Chess", "Go"]
	}`)

	doc := Normalize(raw, ids.Sequence("gen"))

	assert.Equal(t, "lilac", doc.TemplateID)
	assert.Equal(t, types.ThemeLight, doc.ThemeMode)
	assert.True(t, doc.IsPinned)
	assert.Equal(t, "2024-01-01T00:00:00Z", doc.LastUpdated)
	assert.Equal(t, []string{"Chess", "Go"}, doc.Hobbies)
}

func TestNormalize_ClampsSkillLevel(t *testing.T) {
	raw := decodeRaw(t, `{"skills": [
		{"id": "a", "level": 140},
		{"id": "b", "level": -5},
		{"id": "c", "level": 72.6},
		{"id": "d"}
	]}`)

	doc := Normalize(raw, nil)

	levels := []int{}
	for _, s := range doc.Skills {
		levels = append(levels, s.Level)
	}
	assert.Equal(t, []int{100, 0, 73, 0}, levels)
}

func TestNormalize_UnknownTemplateAndTheme(t *testing.T) {
	raw := decodeRaw(t, `{"id": "a", "templateId": "neon", "themeMode": "sepia"}`)
	doc := Normalize(raw, nil)
	assert.Equal(t, types.CanonicalTemplate, doc.TemplateID)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)
}

func TestNormalize_EducationTypeOutsideClosedSet(t *testing.T) {
	raw := decodeRaw(t, `{"education": [
		{"id": "1", "type": "Curso"},
		{"id": "2", "type": "Mestrado"}
	]}`)
	doc := Normalize(raw, nil)
	assert.Equal(t, DefaultEducationType, doc.Education[0].Type)
	assert.Equal(t, types.EducationMaster, doc.Education[1].Type)
}

func TestNormalize_DuplicateSubEntityIDs(t *testing.T) {
	raw := decodeRaw(t, `{"languages": [
		{"id": "1", "name": "Portuguese"},
		{"id": "1", "name": "English"},
		{"name": "Spanish"}
	]}`)

	doc := Normalize(raw, ids.Sequence("lang"))

	require.Len(t, doc.Languages, 3)
	assert.Equal(t, "1", doc.Languages[0].ID)
	assert.NotEqual(t, "1", doc.Languages[1].ID)
	assert.NotEqual(t, doc.Languages[1].ID, doc.Languages[2].ID)
	assert.Equal(t, "English", doc.Languages[1].Name)
	require.NoError(t, doc.Validate())
}

func TestNormalize_SubEntityIDsOnlyUniquePerList(t *testing.T) {
	raw := decodeRaw(t, `{
		"experiences": [{"id": "1"}],
		"skills": [{"id": "1"}]
	}`)
	doc := Normalize(raw, nil)
	assert.Equal(t, "1", doc.Experiences[0].ID)
	assert.Equal(t, "1", doc.Skills[0].ID)
}

func TestNormalize_NullsAndUnknownFields(t *testing.T) {
	raw := decodeRaw(t, `{
		"id": null, "fullName": null, "hobbies": ["Chess", null],
		"experiences": null, "favouriteColour": "green"
	}`)
	doc := Normalize(raw, ids.Sequence("n"))
	assert.Equal(t, "n-1", doc.ID)
	assert.Equal(t, "", doc.FullName)
	assert.Equal(t, []string{"Chess", ""}, doc.Hobbies)
	assert.Equal(t, []types.Experience{}, doc.Experiences)
}

func TestNormalizeDocument_DoesNotMutateInput(t *testing.T) {
	in := types.ResumeDocument{
		ID:     "a",
		Skills: []types.Skill{{ID: "", Name: "Go", Level: 500}},
	}
	out := NormalizeDocument(in, ids.Sequence("s"))

	assert.Equal(t, "", in.Skills[0].ID)
	assert.Equal(t, 500, in.Skills[0].Level)
	assert.Equal(t, "s-1", out.Skills[0].ID)
	assert.Equal(t, 100, out.Skills[0].Level)
}

func TestNormalizeDocument_Idempotent(t *testing.T) {
	once := Normalize(decodeRaw(t, `{"skills":[{"level":140}],"education":[{"type":"x"}]}`), nil)
	twice := NormalizeDocument(once, nil)
	assert.Equal(t, once, twice)
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0}, {0, 0}, {55, 55}, {100, 100}, {140, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLevel(tt.in))
	}
}

func TestValidate_WrapsValidatorErrors(t *testing.T) {
	doc := types.ResumeDocument{ID: "a", TemplateID: "neon", ThemeMode: types.ThemeDark}
	err := Validate(&doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), `document "a"`)
}

func TestNormalize_LastUpdated(t *testing.T) {
	withMillis := Normalize(decodeRaw(t, `{"lastUpdated": "2024-03-05T10:20:30.123Z"}`), nil)
	assert.Equal(t, "2024-03-05T10:20:30.123Z", withMillis.LastUpdated)

	dateOnly := Normalize(decodeRaw(t, `{"lastUpdated": "2024-01-01"}`), nil)
	assert.Equal(t, "2024-01-01", dateOnly.LastUpdated)

	garbage := Normalize(decodeRaw(t, `{"lastUpdated": "yesterday"}`), nil)
	assert.Equal(t, "yesterday", garbage.LastUpdated)
	require.NoError(t, garbage.Validate())
}
