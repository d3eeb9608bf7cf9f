package rendering

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/types"
)

// Section titles shared by every template
const (
	titleProfile    = "Profile"
	titleContact    = "Contact"
	titleExperience = "Experience"
	titleEducation  = "Education"
	titleSkills     = "Skills"
	titleLanguages  = "Languages"
	titleHobbies    = "Hobbies"
)

// ink is the background and foreground a block is drawn with
type ink struct {
	bg string
	fg string
}

func (p palette) page() ink    { return ink{bg: p.Page, fg: p.Ink} }
func (p palette) surface() ink { return ink{bg: p.Surface, fg: p.SurfaceInk} }
func (p palette) panel() ink   { return ink{bg: p.Panel, fg: p.PanelInk} }
func (p palette) accent() ink  { return ink{bg: p.Accent, fg: p.AccentInk} }

func (c ink) with(fg string) ink { return ink{bg: c.bg, fg: fg} }

func newNode(kind Kind, role Role, text string, c ink) *Node {
	return &Node{Kind: kind, Role: role, Text: text, Style: Style{Background: c.bg, Foreground: c.fg}}
}

func region(role Role, c ink, layout Layout, span int) *Node {
	n := newNode(KindRegion, role, "", c)
	n.Style.Layout = layout
	n.Style.Span = span
	return n
}

// upper is built per call: a Caser keeps state and must not be shared
// between goroutines rendering concurrently.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// sectionStyle controls how the shared section builders draw headings and entries
type sectionStyle struct {
	heading   string // heading color
	rule      string // heading underline color; empty for none
	upper     bool
	font      string
	shape     string
	cards     ink  // entry card colors when card is set
	card      bool // draw entries as cards
	subtitle  string
	badge     ink
	columns   int // education grid columns
	meterBar  string
	meterBack string
	chips     bool // languages as chips rather than rows
}

// baseStyle fills every color of a sectionStyle from p; strategies override
// what they draw differently.
func baseStyle(p palette) sectionStyle {
	return sectionStyle{
		heading:   p.Heading,
		subtitle:  p.Accent,
		badge:     p.surface(),
		cards:     p.surface(),
		meterBar:  p.Accent,
		meterBack: p.Track,
		shape:     "rounded",
		columns:   1,
	}
}

func (s sectionStyle) entryInk(c ink) ink {
	if s.card {
		return s.cards
	}
	return c
}

func section(role Role, title string, c ink, s sectionStyle) *Node {
	sec := newNode(KindSection, role, "", c)
	sec.Style.Layout = LayoutStack
	if s.upper {
		title = upper(title)
	}
	h := newNode(KindHeading, "", title, c.with(s.heading))
	h.Style.Border = s.rule
	h.Style.Font = s.font
	h.Style.Bold = true
	h.Style.Uppercase = s.upper
	return sec.add(h)
}

func list(c ink, layout Layout, columns int) *Node {
	l := newNode(KindList, "", "", c)
	l.Style.Layout = layout
	l.Style.Columns = columns
	return l
}

// identityOptions selects the variations of the name block
type identityOptions struct {
	avatar      bool
	avatarShape string
	upperName   bool
	splitName   bool // draw everything after the first name in the accent color
	align       string
	font        string
	title       string // job title color
	accent      string
}

func identity(doc *types.ResumeDocument, c ink, o identityOptions) *Node {
	block := newNode(KindRegion, RoleIdentity, "", c)
	block.Style.Layout = LayoutStack
	block.Style.Align = o.align

	if o.avatar {
		block.add(avatar(doc, c, o.avatarShape))
	}

	fullName := doc.FullName
	if o.upperName {
		fullName = upper(fullName)
	}
	name := newNode(KindHeading, RoleName, "", c)
	name.Style.Font = o.font
	name.Style.Bold = true
	name.Style.Uppercase = o.upperName
	first, rest, split := strings.Cut(fullName, " ")
	if o.splitName && split && rest != "" {
		name.add(
			newNode(KindText, "", first, c),
			newNode(KindText, "", rest, c.with(cmp.Or(o.accent, c.fg))),
		)
	} else {
		name.Text = fullName
	}
	block.add(name)

	if doc.Role != "" {
		block.add(newNode(KindText, RoleJobTitle, doc.Role, c.with(cmp.Or(o.title, c.fg))))
	}
	return block
}

func avatar(doc *types.ResumeDocument, c ink, shape string) *Node {
	if doc.AvatarURL == "" {
		return nil
	}
	img := newNode(KindImage, RoleAvatar, "", c)
	img.Attrs = map[string]string{"src": doc.AvatarURL, "alt": doc.FullName}
	img.Style.Shape = shape
	return img
}

func contact(doc *types.ResumeDocument, c ink, accent string, layout Layout) *Node {
	block := newNode(KindRegion, RoleContact, "", c)
	block.Style.Layout = layout
	block.Style.Accent = accent

	item := func(role Role, text, href string) {
		if text == "" {
			return
		}
		link := newNode(KindLink, role, text, c)
		link.Style.Accent = accent
		link.Attrs = map[string]string{"href": href}
		block.add(link)
	}
	item(RoleEmail, doc.Email, "mailto:"+doc.Email)
	item(RolePhone, doc.Phone, "tel:"+strings.ReplaceAll(doc.Phone, " ", ""))
	item(RoleLinkedIn, doc.LinkedIn, webURL(doc.LinkedIn))
	item(RolePortfolio, doc.Portfolio, webURL(doc.Portfolio))
	return block
}

func webURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// summary returns nil when the document has no summary
func summary(doc *types.ResumeDocument, c ink, s sectionStyle, titled bool) *Node {
	if doc.Summary == "" {
		return nil
	}
	var sec *Node
	if titled {
		sec = section(RoleSummary, titleProfile, c, s)
	} else {
		sec = newNode(KindSection, RoleSummary, "", c)
	}
	return sec.add(newNode(KindText, RoleDescription, doc.Summary, c))
}

func experience(doc *types.ResumeDocument, c ink, s sectionStyle) *Node {
	sec := section(RoleExperience, titleExperience, c, s)
	entries := list(c, LayoutStack, 0)
	for _, e := range doc.Experiences {
		ec := s.entryInk(c)
		item := newNode(KindItem, RoleExperience, "", ec)
		item.Style.Border = s.rule
		item.Style.Shape = s.shape
		item.add(
			newNode(KindText, RoleEntryTitle, e.Role, ec.with(s.heading)),
			newNode(KindText, RoleEntrySubtitle, e.Company, ec.with(s.subtitle)),
			badge(RolePeriod, e.Period, s),
			newNode(KindText, RoleDescription, e.Description, ec),
		)
		entries.add(item)
	}
	return sec.add(entries)
}

func education(doc *types.ResumeDocument, c ink, s sectionStyle) *Node {
	sec := section(RoleEducation, titleEducation, c, s)
	layout := LayoutStack
	if s.columns > 1 {
		layout = LayoutGrid
	}
	entries := list(c, layout, s.columns)
	for _, e := range doc.Education {
		ec := s.entryInk(c)
		item := newNode(KindItem, RoleEducation, "", ec)
		item.Style.Shape = s.shape
		item.Style.Accent = s.subtitle
		item.add(
			newNode(KindText, RoleEntryTitle, e.Degree, ec.with(s.heading)),
			newNode(KindText, RoleEntrySubtitle, e.Institution, ec),
			badge(RoleBadge, string(e.Type), s),
			badge(RolePeriod, e.Year, s),
		)
		entries.add(item)
	}
	return sec.add(entries)
}

func skills(doc *types.ResumeDocument, c ink, s sectionStyle) *Node {
	sec := section(RoleSkills, titleSkills, c, s)
	entries := list(c, LayoutStack, 0)
	for _, sk := range doc.Skills {
		level := document.ClampLevel(sk.Level)
		item := newNode(KindItem, RoleSkills, "", c)
		meter := newNode(KindMeter, RoleLevel, "", ink{bg: s.meterBack, fg: s.meterBar})
		meter.Meter = &Meter{Width: MeterWidth, Fill: level}
		meter.Style.Shape = s.shape
		item.add(
			newNode(KindText, RoleEntryTitle, sk.Name, c),
			newNode(KindText, RoleBadge, fmt.Sprintf("%d%%", level), c.with(s.subtitle)),
			meter,
		)
		entries.add(item)
	}
	return sec.add(entries)
}

func languages(doc *types.ResumeDocument, c ink, s sectionStyle) *Node {
	sec := section(RoleLanguages, titleLanguages, c, s)
	layout := LayoutStack
	kind := KindItem
	if s.chips {
		layout = LayoutWrap
		kind = KindChip
	}
	entries := list(c, layout, 0)
	for _, l := range doc.Languages {
		ec := s.entryInk(c)
		item := newNode(kind, RoleLanguages, "", ec)
		item.Style.Shape = s.shape
		item.add(
			newNode(KindText, RoleEntryTitle, l.Name, ec),
			badge(RoleBadge, l.Level, s),
		)
		entries.add(item)
	}
	return sec.add(entries)
}

func hobbies(doc *types.ResumeDocument, c ink, s sectionStyle) *Node {
	sec := section(RoleHobbies, titleHobbies, c, s)
	entries := list(c, LayoutWrap, 0)
	for _, h := range doc.Hobbies {
		if h == "" {
			continue
		}
		chip := newNode(KindChip, RoleHobbies, h, s.entryInk(c))
		chip.Style.Shape = s.shape
		chip.Style.Border = s.rule
		entries.add(chip)
	}
	return sec.add(entries)
}

func badge(role Role, text string, s sectionStyle) *Node {
	if text == "" {
		return nil
	}
	b := newNode(KindText, role, text, s.badge)
	b.Style.Shape = s.shape
	return b
}
