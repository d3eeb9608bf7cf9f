package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutOriginal: earthy header with photo and summary, a contact bar, then
// an 8/4 split with experience and education on the wide side.
func layoutOriginal(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := forestScheme.pick(mode)
	c := p.page()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, c, LayoutRow, 0)
	header.add(identity(doc, c, identityOptions{
		avatar:      true,
		avatarShape: "rounded",
		upperName:   true,
		splitName:   true,
		font:        "display",
		title:       p.Accent,
		accent:      p.Accent,
	}))
	header.add(summary(doc, c.with(p.Muted), baseStyle(p), false))

	bar := contact(doc, p.surface(), p.Accent, LayoutWrap)
	bar.Style.Border = p.Border
	bar.Style.Shape = "rounded"

	wide := baseStyle(p)
	wide.heading = p.Accent
	wide.upper = true
	wide.font = "display"
	wide.rule = p.Border
	wide.badge = p.panel()

	cards := wide
	cards.card = true
	cards.columns = 2

	narrow := baseStyle(p)
	narrow.heading = p.Muted
	narrow.upper = true
	narrow.font = "display"
	narrow.chips = true
	narrow.card = true
	narrow.rule = p.Border

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 12
	body.add(
		region(RoleMain, c, LayoutStack, 8).add(
			experience(doc, c, wide),
			education(doc, c, cards),
		),
		region(RoleSidebar, c, LayoutStack, 4).add(
			skills(doc, c, narrow),
			languages(doc, c, narrow),
			hobbies(doc, c, narrow),
		),
	)

	return page.add(header, bar, body)
}
