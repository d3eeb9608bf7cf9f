package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestNew(t *testing.T) {
	doc := New(types.TemplateRed, types.UserProfile{Name: "Ana", Avatar: "data:image/jpeg;base64,xyz"}, ids.Sequence("doc"))

	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, types.TemplateRed, doc.TemplateID)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)
	assert.Equal(t, "data:image/jpeg;base64,xyz", doc.AvatarURL)
	assert.Empty(t, doc.LastUpdated)
	assert.Empty(t, doc.Experiences)
	require.NoError(t, doc.Validate())
}

func TestNew_UnknownTemplateFallsBackToCanonical(t *testing.T) {
	doc := New("neon", types.UserProfile{}, nil)
	assert.Equal(t, types.CanonicalTemplate, doc.TemplateID)
}

func TestSample_IsValid(t *testing.T) {
	doc := Sample(types.TemplateGray, types.UserProfile{}, nil)
	require.NoError(t, doc.Validate())
	assert.NotEmpty(t, doc.Experiences)
	assert.NotEmpty(t, doc.Education)
	assert.NotEmpty(t, doc.Skills)
	assert.NotEmpty(t, doc.Languages)
	assert.NotEmpty(t, doc.Hobbies)
}

func TestToggleThemeAndSetTemplate(t *testing.T) {
	doc := New(types.TemplateBlue, types.UserProfile{}, nil)
	ToggleTheme(&doc)
	assert.Equal(t, types.ThemeLight, doc.ThemeMode)
	ToggleTheme(&doc)
	assert.Equal(t, types.ThemeDark, doc.ThemeMode)

	require.NoError(t, SetTemplate(&doc, types.TemplateViolet))
	assert.Equal(t, types.TemplateViolet, doc.TemplateID)

	err := SetTemplate(&doc, "neon")
	require.Error(t, err)
	assert.Equal(t, types.TemplateViolet, doc.TemplateID)
}

func TestExperienceEditing(t *testing.T) {
	gen := ids.Sequence("exp")
	doc := New(types.TemplateOriginal, types.UserProfile{}, ids.Sequence("doc"))

	first := AddExperience(&doc, gen)
	second := AddExperience(&doc, gen)
	assert.Equal(t, NewExperienceRole, first.Role)
	assert.NotEqual(t, first.ID, second.ID)

	ok := UpdateExperience(&doc, second.ID, func(e *types.Experience) { e.Company = "ACME" })
	require.True(t, ok)
	assert.Equal(t, "ACME", doc.Experiences[1].Company)

	assert.True(t, RemoveExperience(&doc, first.ID))
	assert.False(t, RemoveExperience(&doc, first.ID))
	require.Len(t, doc.Experiences, 1)
	assert.Equal(t, second.ID, doc.Experiences[0].ID)

	assert.False(t, UpdateExperience(&doc, "missing", func(e *types.Experience) { e.Role = "x" }))
}

func TestEducationEditing(t *testing.T) {
	doc := New(types.TemplateOriginal, types.UserProfile{}, nil)
	e := AddEducation(&doc, nil)
	assert.Equal(t, types.EducationCertification, e.Type)

	UpdateEducation(&doc, e.ID, func(ed *types.Education) { ed.Type = types.EducationMaster })
	assert.Equal(t, types.EducationMaster, doc.Education[0].Type)

	assert.True(t, RemoveEducation(&doc, e.ID))
	assert.Empty(t, doc.Education)
}

func TestSkillEditing_ClampsLevel(t *testing.T) {
	doc := New(types.TemplateOriginal, types.UserProfile{}, nil)
	s := AddSkill(&doc, nil)
	assert.Equal(t, NewSkillLevel, s.Level)

	UpdateSkill(&doc, s.ID, func(sk *types.Skill) { sk.Level = 140 })
	assert.Equal(t, 100, doc.Skills[0].Level)

	assert.True(t, RemoveSkill(&doc, s.ID))
}

func TestLanguageEditing(t *testing.T) {
	doc := New(types.TemplateOriginal, types.UserProfile{}, nil)
	l := AddLanguage(&doc, nil)
	UpdateLanguage(&doc, l.ID, func(lang *types.Language) {
		lang.Name = "English"
		lang.Level = "C1"
	})
	assert.Equal(t, "English", doc.Languages[0].Name)
	assert.True(t, RemoveLanguage(&doc, l.ID))
}

func TestHobbyEditing_Positional(t *testing.T) {
	doc := New(types.TemplateOriginal, types.UserProfile{}, nil)
	AddHobby(&doc)
	AddHobby(&doc)
	require.True(t, UpdateHobby(&doc, 1, "Chess"))
	assert.Equal(t, []string{NewHobby, "Chess"}, doc.Hobbies)

	before := doc.Hobbies
	require.True(t, RemoveHobby(&doc, 0))
	assert.Equal(t, []string{"Chess"}, doc.Hobbies)
	assert.Equal(t, NewHobby, before[0], "removal must not rewrite the previous slice")

	assert.False(t, RemoveHobby(&doc, 5))
	assert.False(t, UpdateHobby(&doc, -1, "x"))
}
