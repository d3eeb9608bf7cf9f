// Package types provides type definitions for the résumé documents shared by the store, the normalizer and the renderer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// ThemeMode is the light/dark presentation toggle, independent of the template
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// DefaultThemeMode is assumed for documents saved before the toggle existed
const DefaultThemeMode = ThemeDark

// Valid reports whether m is one of the two known modes
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}

// Toggle returns the opposite mode; anything that is not light becomes light
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// EducationType is the closed set of degree and certificate kinds
type EducationType string

const (
	EducationBachelor      EducationType = "Bacharelado"
	EducationCertification EducationType = "Certificação"
	EducationMaster        EducationType = "Mestrado"
	EducationExtension     EducationType = "Extensão"
)

// EducationTypes lists the accepted education kinds in editor order
var EducationTypes = []EducationType{
	EducationBachelor,
	EducationCertification,
	EducationMaster,
	EducationExtension,
}

// Valid reports whether t belongs to the closed set
func (t EducationType) Valid() bool {
	for _, known := range EducationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Skill level bounds; the renderer draws the level as a fraction of MaxSkillLevel
const (
	MinSkillLevel = 0
	MaxSkillLevel = 100
)

// ResumeDocument is the aggregate root: one person's résumé content and presentation choices
type ResumeDocument struct {
	ID          string       `json:"id" validate:"required"`
	TemplateID  string       `json:"templateId" validate:"required,template_id"`
	ThemeMode   ThemeMode    `json:"themeMode" validate:"oneof=light dark"`
	FullName    string       `json:"fullName"`
	Role        string       `json:"role"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	LinkedIn    string       `json:"linkedin"`
	Portfolio   string       `json:"portfolio"`
	Summary     string       `json:"summary"`
	Experiences []Experience `json:"experiences" validate:"unique=ID,dive"`
	Education   []Education  `json:"education" validate:"unique=ID,dive"`
	Skills      []Skill      `json:"skills" validate:"unique=ID,dive"`
	Languages   []Language   `json:"languages" validate:"unique=ID,dive"`
	Hobbies     []string     `json:"hobbies"`
	AvatarURL   string       `json:"avatarUrl"`
	LastUpdated string       `json:"lastUpdated,omitempty"`
	IsPinned    bool         `json:"isPinned"`
}

// Experience is one professional experience entry
type Experience struct {
	ID          string `json:"id" validate:"required"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one degree or certificate entry
type Education struct {
	ID          string        `json:"id" validate:"required"`
	Degree      string        `json:"degree"`
	Institution string        `json:"institution"`
	Year        string        `json:"year"`
	Type        EducationType `json:"type" validate:"oneof=Bacharelado Certificação Mestrado Extensão"`
}

// Skill is a named skill with a numeric level in [0,100]
type Skill struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Level int    `json:"level" validate:"min=0,max=100"`
}

// Language is a spoken language with a free-text proficiency label
type Language struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Clone returns a deep copy so callers can mutate lists without aliasing the original
func (d *ResumeDocument) Clone() ResumeDocument {
	out := *d
	out.Experiences = slices.Clone(d.Experiences)
	out.Education = slices.Clone(d.Education)
	out.Skills = slices.Clone(d.Skills)
	out.Languages = slices.Clone(d.Languages)
	out.Hobbies = slices.Clone(d.Hobbies)
	return out
}

// UserProfile is supplied by the session collaborator and only used to stamp defaults into new documents
type UserProfile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}
