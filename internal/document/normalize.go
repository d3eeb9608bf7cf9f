// Package document creates, edits and normalizes résumé documents.
package document

import (
	"math"

	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

// DefaultEducationType replaces education kinds outside the closed set
const DefaultEducationType = types.EducationCertification

// Normalize upgrades a possibly partial or legacy document to the canonical
// shape. It is total: every input yields a document that passes Validate.
// Content is never invented; only ids, theme mode, template id, education
// kind and skill level bounds are filled or coerced. LastUpdated is kept as
// stored; ordering treats a value it cannot parse as the oldest.
func Normalize(raw types.RawDocument, gen ids.Generator) types.ResumeDocument {
	doc := types.ResumeDocument{
		ID:          str(raw.ID),
		TemplateID:  str(raw.TemplateID),
		ThemeMode:   types.ThemeMode(str(raw.ThemeMode)),
		FullName:    str(raw.FullName),
		Role:        str(raw.Role),
		Email:       str(raw.Email),
		Phone:       str(raw.Phone),
		LinkedIn:    str(raw.LinkedIn),
		Portfolio:   str(raw.Portfolio),
		Summary:     str(raw.Summary),
		AvatarURL:   str(raw.AvatarURL),
		LastUpdated: str(raw.LastUpdated),
		IsPinned:    raw.IsPinned != nil && *raw.IsPinned,
	}

	for _, e := range raw.Experiences {
		doc.Experiences = append(doc.Experiences, types.Experience{
			ID:          str(e.ID),
			Role:        str(e.Role),
			Company:     str(e.Company),
			Period:      str(e.Period),
			Description: str(e.Description),
		})
	}
	for _, e := range raw.Education {
		doc.Education = append(doc.Education, types.Education{
			ID:          str(e.ID),
			Degree:      str(e.Degree),
			Institution: str(e.Institution),
			Year:        str(e.Year),
			Type:        types.EducationType(str(e.Type)),
		})
	}
	for _, s := range raw.Skills {
		doc.Skills = append(doc.Skills, types.Skill{
			ID:    str(s.ID),
			Name:  str(s.Name),
			Level: level(s.Level),
		})
	}
	for _, l := range raw.Languages {
		doc.Languages = append(doc.Languages, types.Language{
			ID:    str(l.ID),
			Name:  str(l.Name),
			Level: str(l.Level),
		})
	}
	for _, h := range raw.Hobbies {
		doc.Hobbies = append(doc.Hobbies, str(h))
	}

	return NormalizeDocument(doc, gen)
}

// NormalizeDocument applies the same defaults to an already typed document.
// The input is not modified.
func NormalizeDocument(in types.ResumeDocument, gen ids.Generator) types.ResumeDocument {
	gen = ids.OrDefault(gen)
	doc := in.Clone()

	if doc.ID == "" {
		doc.ID = gen()
	}
	if !types.IsKnownTemplate(doc.TemplateID) {
		doc.TemplateID = types.CanonicalTemplate
	}
	if !doc.ThemeMode.Valid() {
		doc.ThemeMode = types.DefaultThemeMode
	}

	if doc.Experiences == nil {
		doc.Experiences = []types.Experience{}
	}
	seen := make(map[string]struct{}, len(doc.Experiences))
	for i := range doc.Experiences {
		doc.Experiences[i].ID = uniqueID(doc.Experiences[i].ID, seen, gen)
	}

	if doc.Education == nil {
		doc.Education = []types.Education{}
	}
	seen = make(map[string]struct{}, len(doc.Education))
	for i := range doc.Education {
		doc.Education[i].ID = uniqueID(doc.Education[i].ID, seen, gen)
		if !doc.Education[i].Type.Valid() {
			doc.Education[i].Type = DefaultEducationType
		}
	}

	if doc.Skills == nil {
		doc.Skills = []types.Skill{}
	}
	seen = make(map[string]struct{}, len(doc.Skills))
	for i := range doc.Skills {
		doc.Skills[i].ID = uniqueID(doc.Skills[i].ID, seen, gen)
		doc.Skills[i].Level = ClampLevel(doc.Skills[i].Level)
	}

	if doc.Languages == nil {
		doc.Languages = []types.Language{}
	}
	seen = make(map[string]struct{}, len(doc.Languages))
	for i := range doc.Languages {
		doc.Languages[i].ID = uniqueID(doc.Languages[i].ID, seen, gen)
	}

	if doc.Hobbies == nil {
		doc.Hobbies = []string{}
	}

	return doc
}

// ClampLevel bounds a skill level to [MinSkillLevel, MaxSkillLevel]
func ClampLevel(level int) int {
	return max(types.MinSkillLevel, min(types.MaxSkillLevel, level))
}

// uniqueID keeps id unless it is empty or already used in the same list
func uniqueID(id string, seen map[string]struct{}, gen ids.Generator) string {
	_, dup := seen[id]
	for id == "" || dup {
		id = gen()
		_, dup = seen[id]
	}
	seen[id] = struct{}{}
	return id
}

func level(v *float64) int {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	f := math.Round(*v)
	if f > types.MaxSkillLevel {
		return types.MaxSkillLevel
	}
	if f < types.MinSkillLevel {
		return types.MinSkillLevel
	}
	return int(f)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
