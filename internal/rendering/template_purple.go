package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutPurple: indigo header bar with name and role, a boxed aside with the
// photo and contact details, and card entries in the main column.
func layoutPurple(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := indigoScheme.pick(mode)
	c := p.page()
	bar := p.panel()
	card := p.surface()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, bar, LayoutRow, 0)
	header.add(identity(doc, bar, identityOptions{
		font:  "display",
		title: bar.fg,
	}))

	asideStyle := baseStyle(p)
	asideStyle.heading = p.Muted
	asideStyle.upper = true
	asideStyle.chips = true
	asideStyle.badge = p.accent()

	aside := region(RoleSidebar, card, LayoutStack, 4)
	aside.Style.Border = p.Border
	aside.Style.Shape = "rounded"
	aside.add(
		avatar(doc, card, "rounded"),
		contact(doc, card, p.Accent, LayoutStack),
		skills(doc, card, asideStyle),
		languages(doc, card, asideStyle),
		hobbies(doc, card, asideStyle),
	)

	mainStyle := baseStyle(p)
	mainStyle.rule = p.Accent
	mainStyle.card = true
	mainStyle.cards = card
	mainStyle.badge = ink{bg: p.Border, fg: p.Heading}

	main := region(RoleMain, c, LayoutStack, 8)
	main.add(
		summary(doc, c, mainStyle, true),
		experience(doc, c, mainStyle),
		education(doc, c, mainStyle),
	)

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 12
	body.add(aside, main)

	return page.add(header, body)
}
