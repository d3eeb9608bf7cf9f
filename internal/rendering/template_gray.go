package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutGray: quiet stone palette, a narrow left aside with contact and
// skills, and a divider under the header.
func layoutGray(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := stoneScheme.pick(mode)
	c := p.page()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, c, LayoutRow, 0)
	header.Style.Border = p.Track
	photo := avatar(doc, p.surface(), "square")
	if photo != nil {
		photo.Style.Border = p.Border
	}
	header.add(photo, identity(doc, c, identityOptions{
		font:  "sans",
		title: p.Muted,
	}))

	s := baseStyle(p)
	s.upper = true
	s.subtitle = p.Muted
	s.shape = "square"
	s.rule = p.Border

	aside := region(RoleSidebar, c, LayoutStack, 3)
	aside.add(
		contact(doc, c, p.Accent, LayoutStack),
		skills(doc, c, s),
		languages(doc, c, s),
		hobbies(doc, c, s),
	)

	main := region(RoleMain, c, LayoutStack, 9)
	main.Style.Border = p.Border
	main.add(
		summary(doc, c, s, true),
		experience(doc, c, s),
		education(doc, c, s),
	)

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 12
	body.add(aside, main)

	return page.add(header, body)
}
