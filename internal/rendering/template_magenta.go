package rendering

import "github.com/jonathan/resume-studio/internal/types"

// layoutMagenta: rounded header card, then three columns with a solid
// summary tile and a dark skills tile in the middle.
func layoutMagenta(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	p := magentaScheme.pick(mode)
	c := p.page()
	head := p.panel()

	page := region("", c, LayoutStack, 0)
	page.Kind = KindPage
	page.Style.Font = "sans"

	header := region(RoleHeader, head, LayoutRow, 0)
	header.Style.Shape = "rounded"
	header.add(
		avatar(doc, head, "rounded"),
		identity(doc, head, identityOptions{
			upperName: true,
			font:      "display",
			title:     p.Accent,
		}),
		contact(doc, head, p.Accent, LayoutStack),
	)

	s := baseStyle(p)
	s.upper = true
	s.card = true
	s.badge = p.accent()

	// The summary tile sits on the accent color, the skills tile on a dark
	// surface in both modes.
	tile := p.accent()
	tileStyle := s
	tileStyle.heading = tile.fg
	tileStyle.card = false

	dark := ink{bg: p.Track, fg: "#ffffff"}
	darkStyle := s
	darkStyle.heading = p.Accent
	darkStyle.subtitle = p.Accent
	darkStyle.card = false
	darkStyle.meterBack = p.Muted

	chips := s
	chips.chips = true

	var summaryTile *Node
	if doc.Summary != "" {
		summaryTile = summary(doc, tile, tileStyle, true)
		summaryTile.Style.Shape = "rounded"
	}

	body := region("", c, LayoutGrid, 0)
	body.Style.Columns = 3
	body.add(
		region(RoleColumn, c, LayoutStack, 4).add(
			experience(doc, c, s),
		),
		region(RoleColumn, c, LayoutStack, 4).add(
			summaryTile,
			skills(doc, dark, darkStyle),
		),
		region(RoleColumn, c, LayoutStack, 4).add(
			languages(doc, p.surface(), chips),
			hobbies(doc, p.surface(), chips),
			education(doc, c, s),
		),
	)

	return page.add(header, body)
}
