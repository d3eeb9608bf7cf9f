// Package importing turns externally produced résumé data (for example the
// output of a PDF extraction service) into a stored document.
package importing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-studio/internal/collection"
	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// Defaults for values an extraction left out
const (
	DefaultFullName      = "New Résumé"
	DefaultSkillLevel    = 70
	DefaultLanguageLevel = "Basic"
)

// DefaultHobbies is used when the candidate has no hobbies list at all
var DefaultHobbies = []string{"Reading", "Technology"}

// Upserter stores a document in the collection
type Upserter interface {
	Upsert(ctx context.Context, doc types.ResumeDocument) ([]types.ResumeDocument, error)
}

// ImportError represents a candidate that could not be imported
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Importer validates, completes and stores imported candidates
type Importer struct {
	store   Upserter
	profile types.UserProfile
	gen     ids.Generator
}

// NewImporter creates an importer saving through store. The profile's avatar
// is stamped into imported documents.
func NewImporter(store Upserter, profile types.UserProfile, gen ids.Generator) *Importer {
	return &Importer{store: store, profile: profile, gen: ids.OrDefault(gen)}
}

// Candidate checks data against the document schema and completes it into a
// normalized document with fresh ids. Nothing is stored.
func (im *Importer) Candidate(data []byte) (types.ResumeDocument, error) {
	if err := schemas.ValidateDocument(data); err != nil {
		return types.ResumeDocument{}, &ImportError{Message: "candidate does not match the document shape", Cause: err}
	}
	var raw types.RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.ResumeDocument{}, &ImportError{Message: "failed to decode candidate", Cause: err}
	}
	return document.Normalize(im.complete(raw), im.gen), nil
}

// Import completes the candidate and appends it to the collection. It returns
// the stored document.
func (im *Importer) Import(ctx context.Context, data []byte) (types.ResumeDocument, error) {
	doc, err := im.Candidate(data)
	if err != nil {
		return types.ResumeDocument{}, err
	}
	docs, err := im.store.Upsert(ctx, doc)
	if err != nil {
		return types.ResumeDocument{}, fmt.Errorf("failed to save imported document: %w", err)
	}
	saved, _ := collection.Find(docs, doc.ID)
	return saved, nil
}

// ImportFile reads a candidate from path and imports it
func (im *Importer) ImportFile(ctx context.Context, path string) (types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeDocument{}, &ImportError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return im.Import(ctx, data)
}

// complete fills what an extraction typically leaves out. Imported documents
// always get new ids, the canonical template and dark mode; the candidate's
// own ids and presentation fields are ignored.
func (im *Importer) complete(raw types.RawDocument) types.RawDocument {
	out := raw
	out.ID = ptr(im.gen())
	out.TemplateID = ptr(types.CanonicalTemplate)
	out.ThemeMode = ptr(string(types.DefaultThemeMode))
	out.IsPinned = nil
	out.LastUpdated = nil

	if raw.FullName == nil || *raw.FullName == "" {
		out.FullName = ptr(DefaultFullName)
	}
	if im.profile.Avatar != "" {
		out.AvatarURL = ptr(im.profile.Avatar)
	}

	out.Experiences = make([]types.RawExperience, len(raw.Experiences))
	for i, e := range raw.Experiences {
		e.ID = ptr(im.gen())
		out.Experiences[i] = e
	}
	out.Education = make([]types.RawEducation, len(raw.Education))
	for i, e := range raw.Education {
		e.ID = ptr(im.gen())
		out.Education[i] = e
	}
	out.Skills = make([]types.RawSkill, len(raw.Skills))
	for i, s := range raw.Skills {
		s.ID = ptr(im.gen())
		if s.Level == nil || *s.Level == 0 {
			s.Level = ptr(float64(DefaultSkillLevel))
		}
		out.Skills[i] = s
	}
	out.Languages = make([]types.RawLanguage, len(raw.Languages))
	for i, l := range raw.Languages {
		l.ID = ptr(im.gen())
		if l.Level == nil || *l.Level == "" {
			l.Level = ptr(DefaultLanguageLevel)
		}
		out.Languages[i] = l
	}
	if raw.Hobbies == nil {
		out.Hobbies = make([]*string, len(DefaultHobbies))
		for i, h := range DefaultHobbies {
			out.Hobbies[i] = ptr(h)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
