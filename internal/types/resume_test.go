package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() ResumeDocument {
	return ResumeDocument{
		ID:          "doc-1",
		TemplateID:  TemplateViolet,
		ThemeMode:   ThemeLight,
		FullName:    "Ana",
		Experiences: []Experience{{ID: "e1"}, {ID: "e2"}},
		Education:   []Education{{ID: "ed1", Type: EducationMaster}},
		Skills:      []Skill{{ID: "s1", Level: 0}, {ID: "s2", Level: 100}},
		Languages:   []Language{{ID: "l1"}},
		Hobbies:     []string{"Chess"},
		LastUpdated: "2024-06-01T12:30:00.000Z",
	}
}

func TestValidate_AcceptsCanonicalDocument(t *testing.T) {
	doc := validDocument()
	require.NoError(t, doc.Validate())

	doc.LastUpdated = ""
	assert.NoError(t, doc.Validate(), "never-saved documents have no timestamp")

	doc.LastUpdated = "2024-01-01"
	assert.NoError(t, doc.Validate(), "stored timestamps are kept as written")
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ResumeDocument)
	}{
		{"missing id", func(d *ResumeDocument) { d.ID = "" }},
		{"unknown template", func(d *ResumeDocument) { d.TemplateID = "neon" }},
		{"missing mode", func(d *ResumeDocument) { d.ThemeMode = "" }},
		{"unknown mode", func(d *ResumeDocument) { d.ThemeMode = "sepia" }},
		{"skill above range", func(d *ResumeDocument) { d.Skills[0].Level = 101 }},
		{"skill below range", func(d *ResumeDocument) { d.Skills[0].Level = -1 }},
		{"duplicate experience ids", func(d *ResumeDocument) { d.Experiences[1].ID = "e1" }},
		{"missing skill id", func(d *ResumeDocument) { d.Skills[1].ID = "" }},
		{"unknown education type", func(d *ResumeDocument) { d.Education[0].Type = "Curso" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)
			assert.Error(t, doc.Validate())
		})
	}
}

func TestThemeMode(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, ThemeMode("").Valid())

	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeMode("sepia").Toggle())
}

func TestEducationType_Valid(t *testing.T) {
	for _, et := range EducationTypes {
		assert.True(t, et.Valid(), et)
	}
	assert.False(t, EducationType("Curso").Valid())
}

func TestTemplateCatalog(t *testing.T) {
	require.Len(t, Templates, 10)
	assert.Equal(t, CanonicalTemplate, Templates[0].ID)

	seen := map[string]bool{}
	for _, o := range Templates {
		assert.False(t, seen[o.ID], "duplicate template %s", o.ID)
		seen[o.ID] = true
		assert.True(t, IsKnownTemplate(o.ID))
	}

	option, ok := LookupTemplate(TemplateGray)
	require.True(t, ok)
	assert.Equal(t, "Minimal Gray", option.Name)
	assert.Equal(t, "Minimal Gray", TemplateName(TemplateGray))

	_, ok = LookupTemplate("neon")
	assert.False(t, ok)
	assert.Equal(t, "Custom", TemplateName("neon"))
}

func TestClone_DoesNotAlias(t *testing.T) {
	doc := validDocument()
	clone := doc.Clone()

	clone.Skills[0].Level = 55
	clone.Hobbies[0] = "Go"
	clone.Experiences = append(clone.Experiences, Experience{ID: "e3"})

	assert.Equal(t, 0, doc.Skills[0].Level)
	assert.Equal(t, "Chess", doc.Hobbies[0])
	assert.Len(t, doc.Experiences, 2)
}
