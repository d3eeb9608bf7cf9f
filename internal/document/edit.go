package document

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

// Editing helpers mutate a document in memory. Nothing is persisted until the
// document is saved through the collection reconciler.

// Placeholder content for newly added entries
const (
	NewExperienceRole        = "New Role"
	NewExperienceCompany     = "Company"
	NewExperiencePeriod      = "Period"
	NewExperienceDescription = "Activity description"
	NewEducationDegree       = "New Course"
	NewEducationInstitution  = "Institution"
	NewEducationYear         = "Year"
	NewSkillLevel            = 50
	NewHobby                 = "New Hobby"
)

// ToggleTheme flips between light and dark
func ToggleTheme(doc *types.ResumeDocument) {
	doc.ThemeMode = doc.ThemeMode.Toggle()
}

// SetTemplate switches the document to a registered template
func SetTemplate(doc *types.ResumeDocument, templateID string) error {
	if !types.IsKnownTemplate(templateID) {
		return &ValidationError{Message: fmt.Sprintf("unknown template %q", templateID)}
	}
	doc.TemplateID = templateID
	return nil
}

// AddExperience appends a placeholder experience with a fresh id and returns it
func AddExperience(doc *types.ResumeDocument, gen ids.Generator) types.Experience {
	e := types.Experience{
		ID:          ids.OrDefault(gen)(),
		Role:        NewExperienceRole,
		Company:     NewExperienceCompany,
		Period:      NewExperiencePeriod,
		Description: NewExperienceDescription,
	}
	doc.Experiences = append(doc.Experiences, e)
	return e
}

// RemoveExperience drops the experience with id; it reports whether one was removed
func RemoveExperience(doc *types.ResumeDocument, id string) bool {
	var ok bool
	doc.Experiences, ok = removeByID(doc.Experiences, id, func(e types.Experience) string { return e.ID })
	return ok
}

// UpdateExperience applies update to the experience with id
func UpdateExperience(doc *types.ResumeDocument, id string, update func(*types.Experience)) bool {
	return updateByID(doc.Experiences, id, func(e *types.Experience) string { return e.ID }, update)
}

// AddEducation appends a placeholder education entry with a fresh id and returns it
func AddEducation(doc *types.ResumeDocument, gen ids.Generator) types.Education {
	e := types.Education{
		ID:          ids.OrDefault(gen)(),
		Degree:      NewEducationDegree,
		Institution: NewEducationInstitution,
		Year:        NewEducationYear,
		Type:        types.EducationCertification,
	}
	doc.Education = append(doc.Education, e)
	return e
}

// RemoveEducation drops the education entry with id
func RemoveEducation(doc *types.ResumeDocument, id string) bool {
	var ok bool
	doc.Education, ok = removeByID(doc.Education, id, func(e types.Education) string { return e.ID })
	return ok
}

// UpdateEducation applies update to the education entry with id
func UpdateEducation(doc *types.ResumeDocument, id string, update func(*types.Education)) bool {
	return updateByID(doc.Education, id, func(e *types.Education) string { return e.ID }, update)
}

// AddSkill appends an unnamed skill at the default level
func AddSkill(doc *types.ResumeDocument, gen ids.Generator) types.Skill {
	s := types.Skill{ID: ids.OrDefault(gen)(), Level: NewSkillLevel}
	doc.Skills = append(doc.Skills, s)
	return s
}

// RemoveSkill drops the skill with id
func RemoveSkill(doc *types.ResumeDocument, id string) bool {
	var ok bool
	doc.Skills, ok = removeByID(doc.Skills, id, func(s types.Skill) string { return s.ID })
	return ok
}

// UpdateSkill applies update to the skill with id; the level is clamped afterwards
func UpdateSkill(doc *types.ResumeDocument, id string, update func(*types.Skill)) bool {
	return updateByID(doc.Skills, id, func(s *types.Skill) string { return s.ID }, func(s *types.Skill) {
		update(s)
		s.Level = ClampLevel(s.Level)
	})
}

// AddLanguage appends an empty language entry
func AddLanguage(doc *types.ResumeDocument, gen ids.Generator) types.Language {
	l := types.Language{ID: ids.OrDefault(gen)()}
	doc.Languages = append(doc.Languages, l)
	return l
}

// RemoveLanguage drops the language with id
func RemoveLanguage(doc *types.ResumeDocument, id string) bool {
	var ok bool
	doc.Languages, ok = removeByID(doc.Languages, id, func(l types.Language) string { return l.ID })
	return ok
}

// UpdateLanguage applies update to the language with id
func UpdateLanguage(doc *types.ResumeDocument, id string, update func(*types.Language)) bool {
	return updateByID(doc.Languages, id, func(l *types.Language) string { return l.ID }, update)
}

// AddHobby appends a placeholder hobby. Hobbies have no id and are addressed by position.
func AddHobby(doc *types.ResumeDocument) {
	doc.Hobbies = append(doc.Hobbies, NewHobby)
}

// RemoveHobby drops the hobby at index
func RemoveHobby(doc *types.ResumeDocument, index int) bool {
	if index < 0 || index >= len(doc.Hobbies) {
		return false
	}
	doc.Hobbies = append(doc.Hobbies[:index:index], doc.Hobbies[index+1:]...)
	return true
}

// UpdateHobby replaces the hobby at index
func UpdateHobby(doc *types.ResumeDocument, index int, value string) bool {
	if index < 0 || index >= len(doc.Hobbies) {
		return false
	}
	doc.Hobbies[index] = value
	return true
}

func removeByID[T any](list []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(list))
	removed := false
	for _, item := range list {
		if idOf(item) == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

func updateByID[T any](list []T, id string, idOf func(*T) string, update func(*T)) bool {
	for i := range list {
		if idOf(&list[i]) == id {
			update(&list[i])
			return true
		}
	}
	return false
}
