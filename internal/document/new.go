package document

import (
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

// New returns an unsaved document with a fresh id, the requested template
// (canonical when unknown), dark mode and the profile's avatar.
func New(templateID string, profile types.UserProfile, gen ids.Generator) types.ResumeDocument {
	gen = ids.OrDefault(gen)
	return NormalizeDocument(types.ResumeDocument{
		ID:         gen(),
		TemplateID: templateID,
		ThemeMode:  types.DefaultThemeMode,
		AvatarURL:  profile.Avatar,
	}, gen)
}

// Sample returns a fully populated unsaved document, used as starter content
// and in previews of the template gallery.
func Sample(templateID string, profile types.UserProfile, gen ids.Generator) types.ResumeDocument {
	gen = ids.OrDefault(gen)
	doc := New(templateID, profile, gen)
	doc.FullName = "Maria Fernandes"
	doc.Role = "Senior UX/UI Designer & Product Strategist"
	doc.Email = "maria.fernandes@email.com"
	doc.Phone = "+55 11 98765-4321"
	doc.LinkedIn = "linkedin/mariafernandes"
	doc.Portfolio = "portfolio.com"
	doc.Summary = "UX/UI designer with more than eight years of experience building intuitive, " +
		"user-centred interfaces for web and mobile, working closely with research and engineering teams."
	doc.Experiences = []types.Experience{
		{ID: gen(), Role: "Senior UX/UI Designer", Company: "Tech Solutions Inc.", Period: "2020 - PRESENT",
			Description: "Led the full redesign of the SaaS platform, raising retention by 20%."},
		{ID: gen(), Role: "Product Designer", Company: "Creative Agency", Period: "2018 - 2020",
			Description: "Built scalable design systems for several e-commerce clients."},
	}
	doc.Education = []types.Education{
		{ID: gen(), Degree: "Graphic Design", Institution: "Federal University of Design", Year: "2014 - 2018", Type: types.EducationBachelor},
		{ID: gen(), Degree: "User Experience", Institution: "UX Academy Online", Year: "2019", Type: types.EducationCertification},
	}
	doc.Skills = []types.Skill{
		{ID: gen(), Name: "UI/UX Design", Level: 95},
		{ID: gen(), Name: "Figma & Adobe XD", Level: 100},
		{ID: gen(), Name: "Prototyping", Level: 90},
		{ID: gen(), Name: "JavaScript / React", Level: 75},
	}
	doc.Languages = []types.Language{
		{ID: gen(), Name: "Portuguese", Level: "Native"},
		{ID: gen(), Name: "English", Level: "C2"},
		{ID: gen(), Name: "Spanish", Level: "B1"},
	}
	doc.Hobbies = []string{"Photography", "Travel", "Technical reading", "Cycling"}
	return doc
}
