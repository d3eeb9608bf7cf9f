//nolint:revive // types is a standard Go package name pattern
package types

// RawDocument is the loosely typed wire shape of a résumé: legacy records,
// partially formed editor state and import candidates all decode into it.
// Pointer fields distinguish "absent" from "empty"; only the document
// normalizer turns a RawDocument into a ResumeDocument.
type RawDocument struct {
	ID          *string         `json:"id"`
	TemplateID  *string         `json:"templateId"`
	ThemeMode   *string         `json:"themeMode"`
	FullName    *string         `json:"fullName"`
	Role        *string         `json:"role"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	LinkedIn    *string         `json:"linkedin"`
	Portfolio   *string         `json:"portfolio"`
	Summary     *string         `json:"summary"`
	Experiences []RawExperience `json:"experiences"`
	Education   []RawEducation  `json:"education"`
	Skills      []RawSkill      `json:"skills"`
	Languages   []RawLanguage   `json:"languages"`
	Hobbies     []*string       `json:"hobbies"`
	AvatarURL   *string         `json:"avatarUrl"`
	LastUpdated *string         `json:"lastUpdated"`
	IsPinned    *bool           `json:"isPinned"`
}

// RawExperience is the partial form of Experience
type RawExperience struct {
	ID          *string `json:"id"`
	Role        *string `json:"role"`
	Company     *string `json:"company"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
}

// RawEducation is the partial form of Education
type RawEducation struct {
	ID          *string `json:"id"`
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
	Type        *string `json:"type"`
}

// RawSkill is the partial form of Skill. Level is a float because import
// producers are not guaranteed to emit integers.
type RawSkill struct {
	ID    *string  `json:"id"`
	Name  *string  `json:"name"`
	Level *float64 `json:"level"`
}

// RawLanguage is the partial form of Language
type RawLanguage struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Level *string `json:"level"`
}
