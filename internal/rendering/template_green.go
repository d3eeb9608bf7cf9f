package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutGreen: emerald page with a header band that stays dark in both modes,
// a card column for skills and languages, and the main column on the right.
func layoutGreen(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := emeraldScheme.pick(mode)
	c := p.page()
	band := p.panel()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, band, LayoutRow, 0)
	header.Style.Shape = "rounded"
	header.add(
		identity(doc, band, identityOptions{
			avatar:      true,
			avatarShape: "circle",
			font:        "display",
			title:       p.Accent,
		}),
		contact(doc, band, p.Accent, LayoutStack),
	)

	cardStyle := baseStyle(p)
	cardStyle.card = true
	cardStyle.chips = true
	cardStyle.rule = p.Border
	cardStyle.badge = p.accent()

	mainStyle := baseStyle(p)
	mainStyle.font = "display"
	mainStyle.rule = p.Border
	mainStyle.subtitle = p.Muted
	mainStyle.badge = p.surface()

	eduStyle := mainStyle
	eduStyle.card = true
	eduStyle.columns = 2

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 3
	body.add(
		region(RoleSidebar, c, LayoutStack, 4).add(
			skills(doc, p.surface(), cardStyle),
			languages(doc, p.surface(), cardStyle),
			hobbies(doc, p.surface(), cardStyle),
		),
		region(RoleMain, c, LayoutStack, 8).add(
			summary(doc, c, mainStyle, true),
			experience(doc, c, mainStyle),
			education(doc, c, eduStyle),
		),
	)

	return page.add(header, body)
}
