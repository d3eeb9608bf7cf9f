package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutBlue: corporate two-column page with a solid sidebar holding the
// photo, contact details, skills and languages.
func layoutBlue(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := corporateBlueScheme.pick(mode)
	c := p.page()
	side := p.panel()

	page := region("", c, LayoutRow, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	sideStyle := baseStyle(p)
	sideStyle.heading = side.fg
	sideStyle.subtitle = p.Accent
	sideStyle.upper = true
	sideStyle.rule = p.Accent
	sideStyle.badge = side
	sideStyle.cards = side
	sideStyle.meterBar = p.Accent
	sideStyle.meterBack = p.Track
	sideStyle.shape = "square"

	sidebar := region(RoleSidebar, side, LayoutStack, 4)
	sidebar.add(
		identity(doc, side, identityOptions{
			avatar:      true,
			avatarShape: "square",
			align:       "center",
			title:       p.Accent,
		}),
		contact(doc, side, p.Accent, LayoutStack),
		skills(doc, side, sideStyle),
		languages(doc, side, sideStyle),
		hobbies(doc, side, sideStyle),
	)

	mainStyle := baseStyle(p)
	mainStyle.upper = true
	mainStyle.card = true
	mainStyle.cards = p.surface()
	mainStyle.badge = p.accent()
	mainStyle.rule = p.Border

	main := region(RoleMain, c, LayoutStack, 8)
	main.add(
		summary(doc, c, mainStyle, true),
		experience(doc, c, mainStyle),
		education(doc, c, mainStyle),
	)

	return page.add(sidebar, main)
}
