package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutBlack: monospaced, square edged and high contrast, with a heavy left
// border and inverted badges.
func layoutBlack(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := monoScheme.pick(mode)
	c := p.page()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "mono"
	page.Style.Border = p.Border

	header := region(RoleHeader, c, LayoutStack, 0)
	header.Style.Border = p.Border
	header.add(
		identity(doc, c, identityOptions{
			avatar:      true,
			avatarShape: "square",
			upperName:   true,
			font:        "mono",
			title:       p.Muted,
		}),
		contact(doc, c, p.Accent, LayoutRow),
		summary(doc, c, baseStyle(p), false),
	)

	s := baseStyle(p)
	s.upper = true
	s.font = "mono"
	s.rule = p.Border
	s.shape = "square"
	s.subtitle = p.Muted
	s.badge = p.panel()

	eduStyle := s
	eduStyle.card = true
	eduStyle.columns = 2

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 12
	body.add(
		region(RoleMain, c, LayoutStack, 8).add(
			experience(doc, c, s),
			education(doc, c, eduStyle),
		),
		region(RoleSidebar, p.surface(), LayoutStack, 4).add(
			skills(doc, p.surface(), s),
			languages(doc, p.surface(), s),
			hobbies(doc, p.surface(), s),
		),
	)

	return page.add(header, body)
}
