package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/resume-studio/internal/rendering"
)

const baseCSS = `*{box-sizing:border-box}
body{margin:0}
ul{list-style:none;margin:0;padding:0}
h1,h2,p{margin:0}
.page{padding:32px;gap:32px;min-height:100vh}
.meter{height:6px;width:100%;overflow:hidden}
.meter>div{height:100%}
@page{size:A4;margin:0}`

var fontFamilies = map[string]string{
	"sans":    `ui-sans-serif, system-ui, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
	"serif":   `Georgia, Cambria, "Times New Roman", serif`,
	"mono":    `ui-monospace, SFMono-Regular, Menlo, Consolas, monospace`,
	"display": `"Space Grotesk", ui-sans-serif, system-ui, sans-serif`,
}

// HTML renders tree as a standalone HTML5 document
func HTML(tree *rendering.Node, title string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, tree, title); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML writes tree to w as a standalone HTML5 document
func WriteHTML(w io.Writer, tree *rendering.Node, title string) error {
	if tree == nil {
		return &ExportError{Format: "html", Message: "nothing to export"}
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, "lang", "en")
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	head.AppendChild(element(atom.Meta, "name", "viewport", "content", "width=device-width, initial-scale=1"))
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), baseCSS))

	body := element(atom.Body, "style", "background-color:"+tree.Style.Background)
	body.AppendChild(convert(tree, nil))

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return &ExportError{Format: "html", Message: "failed to write document", Cause: err}
	}
	return nil
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
	return n
}

func convert(n, parent *rendering.Node) *html.Node {
	el := element(tagFor(n))
	if n.Role != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-role", Val: string(n.Role)})
	}
	if n.Kind == rendering.KindPage {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: "page"})
		for _, key := range []string{"template", "mode"} {
			if v, ok := n.Attrs[key]; ok {
				el.Attr = append(el.Attr, html.Attribute{Key: "data-" + key, Val: v})
			}
		}
	}

	switch n.Kind {
	case rendering.KindLink:
		el.Attr = append(el.Attr, html.Attribute{Key: "href", Val: n.Attrs["href"]})
	case rendering.KindImage:
		el.Attr = append(el.Attr,
			html.Attribute{Key: "src", Val: n.Attrs["src"]},
			html.Attribute{Key: "alt", Val: n.Attrs["alt"]},
		)
	case rendering.KindMeter:
		fill := 0
		width := rendering.MeterWidth
		if n.Meter != nil {
			fill, width = n.Meter.Fill, n.Meter.Width
		}
		el.Attr = append(el.Attr,
			html.Attribute{Key: "class", Val: "meter"},
			html.Attribute{Key: "role", Val: "meter"},
			html.Attribute{Key: "aria-valuemin", Val: "0"},
			html.Attribute{Key: "aria-valuemax", Val: strconv.Itoa(width)},
			html.Attribute{Key: "aria-valuenow", Val: strconv.Itoa(fill)},
		)
		bar := element(atom.Div, "style", fmt.Sprintf("width:%s%%;background-color:%s", percent(fill, width), n.Style.Foreground))
		el.AppendChild(bar)
	}

	el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: inlineStyle(n, parent)})
	withText(el, n.Text)
	for i, child := range n.Children {
		if i > 0 && n.Kind == rendering.KindHeading {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: " "})
		}
		el.AppendChild(convert(child, n))
	}
	return el
}

func tagFor(n *rendering.Node) atom.Atom {
	switch n.Kind {
	case rendering.KindPage:
		return atom.Div
	case rendering.KindRegion:
		switch n.Role {
		case rendering.RoleHeader:
			return atom.Header
		case rendering.RoleSidebar:
			return atom.Aside
		}
		return atom.Div
	case rendering.KindSection:
		return atom.Section
	case rendering.KindHeading:
		if n.Role == rendering.RoleName {
			return atom.H1
		}
		return atom.H2
	case rendering.KindText:
		if n.Role == rendering.RoleDescription {
			return atom.P
		}
		return atom.Span
	case rendering.KindLink:
		return atom.A
	case rendering.KindImage:
		return atom.Img
	case rendering.KindList:
		return atom.Ul
	case rendering.KindItem, rendering.KindChip:
		return atom.Li
	}
	return atom.Div
}

func inlineStyle(n, parent *rendering.Node) string {
	s := n.Style
	decl := []string{
		"background-color:" + s.Background,
		"color:" + s.Foreground,
	}
	add := func(format string, args ...any) {
		decl = append(decl, fmt.Sprintf(format, args...))
	}

	switch s.Layout {
	case rendering.LayoutStack:
		add("display:flex;flex-direction:column;gap:16px")
	case rendering.LayoutRow:
		add("display:flex;flex-direction:row;gap:24px")
	case rendering.LayoutWrap:
		add("display:flex;flex-wrap:wrap;gap:8px")
	case rendering.LayoutGrid:
		add("display:grid;grid-template-columns:repeat(%d,minmax(0,1fr));gap:24px", max(s.Columns, 1))
	}

	if s.Span > 0 && parent != nil {
		switch parent.Style.Layout {
		case rendering.LayoutGrid:
			add("grid-column:span %d", max(1, s.Span*max(parent.Style.Columns, 1)/12))
		case rendering.LayoutRow:
			add("flex:0 0 %s%%", percent(s.Span, 12))
		}
	}

	if s.Border != "" {
		switch n.Kind {
		case rendering.KindHeading:
			add("border-bottom:2px solid %s;padding-bottom:4px", s.Border)
		case rendering.KindPage:
			add("border-left:8px solid %s", s.Border)
		default:
			add("border:1px solid %s", s.Border)
		}
	}
	switch s.Shape {
	case "rounded":
		add("border-radius:12px")
	case "circle":
		add("border-radius:50%%;aspect-ratio:1/1;object-fit:cover")
	case "square":
		add("border-radius:0")
	}
	if n.Kind == rendering.KindImage {
		add("width:128px;max-width:100%%;object-fit:cover")
	}
	if n.Kind == rendering.KindItem || n.Kind == rendering.KindChip || n.Role == rendering.RoleBadge || n.Role == rendering.RolePeriod {
		add("padding:4px 8px")
	}
	if family, ok := fontFamilies[s.Font]; ok {
		add("font-family:%s", family)
	}
	if s.Align == "center" {
		add("text-align:center;align-items:center")
	}
	if s.Uppercase {
		add("text-transform:uppercase;letter-spacing:0.08em")
	}
	if s.Bold {
		add("font-weight:700")
	}
	return strings.Join(decl, ";")
}

func percent(part, whole int) string {
	if whole <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(part)*100/float64(whole), 'f', -1, 64)
}
