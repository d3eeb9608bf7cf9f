package rendering

import (
	"slices"

	"github.com/jonathan/resume-studio/internal/types"
)

// Strategy lays out a document for one template. Implementations only read
// the document and pick every color from their own palette for mode.
type Strategy interface {
	Layout(doc *types.ResumeDocument, mode types.ThemeMode) *Node
}

type layoutFunc func(doc *types.ResumeDocument, mode types.ThemeMode) *Node

func (f layoutFunc) Layout(doc *types.ResumeDocument, mode types.ThemeMode) *Node {
	return f(doc, mode)
}

// registry is closed: the set of templates is fixed at compile time
var registry = map[string]Strategy{
	types.TemplateOriginal: layoutFunc(layoutOriginal),
	types.TemplateBlue:     layoutFunc(layoutBlue),
	types.TemplateRed:      layoutFunc(layoutRed),
	types.TemplateGreen:    layoutFunc(layoutGreen),
	types.TemplatePurple:   layoutFunc(layoutPurple),
	types.TemplateBlack:    layoutFunc(layoutBlack),
	types.TemplateMagenta:  layoutFunc(layoutMagenta),
	types.TemplateViolet:   layoutFunc(layoutViolet),
	types.TemplateGray:     layoutFunc(layoutGray),
	types.TemplateLilac:    layoutFunc(layoutLilac),
}

// Render lays out doc with the template templateID in the given theme mode.
// An unregistered template yields *UnknownTemplateError; there is no
// implicit fallback. A mode other than light or dark is drawn as dark.
// doc is never modified.
func Render(doc types.ResumeDocument, templateID string, mode types.ThemeMode) (*Node, error) {
	strategy, ok := registry[templateID]
	if !ok {
		return nil, &UnknownTemplateError{TemplateID: templateID}
	}
	if !mode.Valid() {
		mode = types.DefaultThemeMode
	}

	view := doc.Clone()
	tree := strategy.Layout(&view, mode)
	if tree == nil {
		return nil, &RenderError{Message: "template " + templateID + " produced no layout"}
	}
	if tree.Attrs == nil {
		tree.Attrs = map[string]string{}
	}
	tree.Attrs["template"] = templateID
	tree.Attrs["mode"] = string(mode)
	return tree, nil
}

// RenderDocument renders doc with its own template and theme mode
func RenderDocument(doc types.ResumeDocument) (*Node, error) {
	return Render(doc, doc.TemplateID, doc.ThemeMode)
}

// RenderWithFallback renders with templateID, substituting the canonical
// template when templateID is not registered. It returns the template used.
func RenderWithFallback(doc types.ResumeDocument, templateID string, mode types.ThemeMode) (*Node, string, error) {
	if !IsRegistered(templateID) {
		templateID = types.CanonicalTemplate
	}
	tree, err := Render(doc, templateID, mode)
	return tree, templateID, err
}

// IsRegistered reports whether a strategy exists for templateID
func IsRegistered(templateID string) bool {
	_, ok := registry[templateID]
	return ok
}

// Templates returns the template catalog in display order
func Templates() []types.TemplateOption {
	return slices.Clone(types.Templates)
}
