package rendering

import "strings"

// Kind is the structural type of a layout node
type Kind string

const (
	KindPage    Kind = "page"
	KindRegion  Kind = "region"
	KindSection Kind = "section"
	KindHeading Kind = "heading"
	KindText    Kind = "text"
	KindLink    Kind = "link"
	KindImage   Kind = "image"
	KindList    Kind = "list"
	KindItem    Kind = "item"
	KindChip    Kind = "chip"
	KindMeter   Kind = "meter"
)

// Role tags a node with the document content it presents
type Role string

const (
	RoleHeader  Role = "header"
	RoleSidebar Role = "sidebar"
	RoleMain    Role = "main"
	RoleColumn  Role = "column"

	RoleIdentity   Role = "identity"
	RoleContact    Role = "contact"
	RoleSummary    Role = "summary"
	RoleExperience Role = "experience"
	RoleEducation  Role = "education"
	RoleSkills     Role = "skills"
	RoleLanguages  Role = "languages"
	RoleHobbies    Role = "hobbies"

	RoleName      Role = "name"
	RoleJobTitle  Role = "job-title"
	RoleAvatar    Role = "avatar"
	RoleEmail     Role = "email"
	RolePhone     Role = "phone"
	RoleLinkedIn  Role = "linkedin"
	RolePortfolio Role = "portfolio"

	RoleEntryTitle    Role = "entry-title"
	RoleEntrySubtitle Role = "entry-subtitle"
	RolePeriod        Role = "period"
	RoleDescription   Role = "description"
	RoleBadge         Role = "badge"
	RoleLevel         Role = "level"
)

// Layout is how a container arranges its children
type Layout string

const (
	LayoutStack Layout = "stack"
	LayoutRow   Layout = "row"
	LayoutGrid  Layout = "grid"
	LayoutWrap  Layout = "wrap"
)

// Style carries the resolved presentation of a node. Colors are CSS hex
// values and are always set; nothing is inherited implicitly.
type Style struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Accent     string `json:"accent,omitempty"`
	Border     string `json:"border,omitempty"`
	Layout     Layout `json:"layout,omitempty"`
	// Columns is the grid column count for LayoutGrid containers
	Columns int `json:"columns,omitempty"`
	// Span is the width of a region in twelfths of its parent
	Span      int    `json:"span,omitempty"`
	Align     string `json:"align,omitempty"`
	Font      string `json:"font,omitempty"`
	Shape     string `json:"shape,omitempty"`
	Uppercase bool   `json:"uppercase,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
}

// MeterWidth is the fixed width every skill meter is drawn against
const MeterWidth = 100

// Meter is a fixed-width level indicator; Fill is in [0, Width]
type Meter struct {
	Width int `json:"width"`
	Fill  int `json:"fill"`
}

// Fraction returns Fill as a fraction of Width
func (m Meter) Fraction() float64 {
	if m.Width == 0 {
		return 0
	}
	return float64(m.Fill) / float64(m.Width)
}

// Node is one element of a rendered layout tree
type Node struct {
	Kind     Kind              `json:"kind"`
	Role     Role              `json:"role,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    Style             `json:"style"`
	Meter    *Meter            `json:"meter,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// FindAll returns every node in the tree with the given role, in document order
func (n *Node) FindAll(role Role) []*Node {
	var found []*Node
	n.Walk(func(node *Node) bool {
		if node.Role == role {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Find returns the first node with the given role, or nil
func (n *Node) Find(role Role) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.Role == role {
			found = node
			return false
		}
		return true
	})
	return found
}

// Texts returns the text of every node in the tree, in document order
func (n *Node) Texts() []string {
	var out []string
	n.Walk(func(node *Node) bool {
		if node.Text != "" {
			out = append(out, node.Text)
		}
		return true
	})
	return out
}

// TextContent joins the texts of the subtree with single spaces
func (n *Node) TextContent() string {
	return strings.Join(n.Texts(), " ")
}

func (n *Node) add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}
