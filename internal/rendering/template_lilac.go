package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutLilac: soft purple cards everywhere; a header card with the photo,
// a contact strip, then experience and details beside a solid education card.
func layoutLilac(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := lilacScheme.pick(mode)
	c := p.page()
	card := p.surface()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, card, LayoutRow, 0)
	header.Style.Shape = "rounded"
	header.add(
		identity(doc, card, identityOptions{
			font:  "display",
			title: p.Muted,
		}),
		avatar(doc, card, "rounded"),
	)

	quote := summary(doc, c.with(p.Heading), baseStyle(p), false)

	strip := contact(doc, c, p.Accent, LayoutRow)
	strip.Style.Border = p.Border
	strip.Style.Shape = "rounded"

	s := baseStyle(p)
	s.card = true
	s.cards = ink{bg: p.Track, fg: p.Ink}
	s.badge = p.accent()

	details := s
	details.chips = true

	solid := p.panel()
	eduStyle := s
	eduStyle.heading = solid.fg
	eduStyle.subtitle = solid.fg
	eduStyle.cards = solid
	eduStyle.badge = ink{bg: p.Page, fg: p.Accent}

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 2
	body.add(
		region(RoleColumn, card, LayoutStack, 6).add(
			experience(doc, card, s),
			skills(doc, card, s),
			languages(doc, card, details),
			hobbies(doc, card, details),
		),
		region(RoleColumn, solid, LayoutStack, 6).add(
			education(doc, solid, eduStyle),
		),
	)

	return page.add(header, quote, strip, body)
}
