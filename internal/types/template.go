//nolint:revive // types is a standard Go package name pattern
package types

// Template identifiers, one per registered layout strategy
const (
	TemplateOriginal = "original"
	TemplateBlue     = "blue"
	TemplateRed      = "red"
	TemplateGreen    = "green"
	TemplatePurple   = "purple"
	TemplateBlack    = "black"
	TemplateMagenta  = "magenta"
	TemplateViolet   = "violet"
	TemplateGray     = "gray"
	TemplateLilac    = "lilac"
)

// CanonicalTemplate is used for documents with a missing or unrecognized template id
const CanonicalTemplate = TemplateOriginal

// TemplateOption describes a template for pickers and listings
type TemplateOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Templates is the template catalog in display order
var Templates = []TemplateOption{
	{ID: TemplateOriginal, Name: "Original Forest", Color: "#d97706", Description: "Default style with earthy tones."},
	{ID: TemplateBlue, Name: "Corporate Blue", Color: "#2563eb", Description: "Professional and trustworthy."},
	{ID: TemplateRed, Name: "Bold Red", Color: "#dc2626", Description: "For those who want to stand out immediately."},
	{ID: TemplateGreen, Name: "Eco Green", Color: "#059669", Description: "Fresh and balanced."},
	{ID: TemplatePurple, Name: "Royal Purple", Color: "#7c3aed", Description: "Elegant and creative."},
	{ID: TemplateBlack, Name: "Mono Black", Color: "#171717", Description: "High contrast and serious."},
	{ID: TemplateMagenta, Name: "Vivid Magenta", Color: "#db2777", Description: "Modern and artistic."},
	{ID: TemplateViolet, Name: "Deep Violet", Color: "#5b21b6", Description: "Sophisticated and mysterious."},
	{ID: TemplateGray, Name: "Minimal Gray", Color: "#57534e", Description: "Clean and minimalist."},
	{ID: TemplateLilac, Name: "Soft Lilac", Color: "#c084fc", Description: "Soft and modern."},
}

// LookupTemplate returns the catalog entry for id
func LookupTemplate(id string) (TemplateOption, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return TemplateOption{}, false
}

// IsKnownTemplate reports whether id is in the catalog
func IsKnownTemplate(id string) bool {
	_, ok := LookupTemplate(id)
	return ok
}

// TemplateName returns the display name for id, or "Custom" for unknown ids
func TemplateName(id string) string {
	if t, ok := LookupTemplate(id); ok {
		return t.Name
	}
	return "Custom"
}
