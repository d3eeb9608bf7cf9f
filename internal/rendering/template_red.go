package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutRed: centered header with an uppercase name over a red rule, a
// quoted summary, then two equal columns.
func layoutRed(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := boldRedScheme.pick(mode)
	c := p.page()
	band := p.panel()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, band, LayoutStack, 0)
	header.Style.Align = "center"
	header.Style.Border = p.Accent
	header.add(
		identity(doc, band, identityOptions{
			avatar:      true,
			avatarShape: "rounded",
			upperName:   true,
			align:       "center",
			font:        "display",
			title:       p.Accent,
		}),
		contact(doc, band, p.Accent, LayoutRow),
	)

	quote := summary(doc, p.surface(), baseStyle(p), false)
	if quote != nil {
		quote.Style.Border = p.Accent
	}

	s := baseStyle(p)
	s.heading = p.Accent
	s.upper = true
	s.rule = p.Border
	s.subtitle = p.Muted
	s.badge = p.accent()
	s.meterBar = p.Accent
	s.shape = "square"

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 2
	body.add(
		region(RoleColumn, c, LayoutStack, 6).add(
			experience(doc, c, s),
			education(doc, c, s),
		),
		region(RoleColumn, c, LayoutStack, 6).add(
			skills(doc, c, s),
			languages(doc, c, s),
			hobbies(doc, c, s),
		),
	)

	return page.add(header, quote, body)
}
