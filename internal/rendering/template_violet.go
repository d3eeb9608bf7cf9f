package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutViolet: a bordered frame around a centered header with a circular
// photo, then experience beside education and the detail sections.
func layoutViolet(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := violetScheme.pick(mode)
	c := p.page()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "serif"

	frame := region("", p.panel(), LayoutStack, 0)
	frame.Style.Border = p.Border
	frame.Style.Shape = "rounded"

	header := region(RoleHeader, p.panel(), LayoutStack, 0)
	header.Style.Align = "center"
	header.add(
		identity(doc, p.panel(), identityOptions{
			avatar:      true,
			avatarShape: "circle",
			align:       "center",
			font:        "serif",
			title:       p.Muted,
		}),
		contact(doc, p.panel(), p.Accent, LayoutRow),
		summary(doc, p.panel(), baseStyle(p), false),
	)

	s := baseStyle(p)
	s.rule = p.Border
	s.subtitle = p.Muted
	s.badge = p.surface()

	detail := s
	detail.card = true
	detail.chips = true

	body := region("", p.panel(), LayoutGrid, 0)
	body.Style.Columns = 2
	body.add(
		region(RoleColumn, p.panel(), LayoutStack, 6).add(
			experience(doc, p.panel(), s),
		),
		region(RoleColumn, p.panel(), LayoutStack, 6).add(
			education(doc, p.panel(), s),
			skills(doc, p.panel(), s),
			languages(doc, p.panel(), detail),
			hobbies(doc, p.panel(), detail),
		),
	)

	return page.add(frame.add(header, body))
}
