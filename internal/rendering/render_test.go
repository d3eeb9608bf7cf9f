package rendering

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/types"
)

var modes = []types.ThemeMode{types.ThemeLight, types.ThemeDark}

func sampleDocument() types.ResumeDocument {
	profile := types.UserProfile{Avatar: "https://example.com/me.jpg"}
	return document.Sample(types.TemplateOriginal, profile, ids.Sequence("s"))
}

func TestRender_EveryTemplateIsRegistered(t *testing.T) {
	require.Len(t, Templates(), 10)
	for _, option := range Templates() {
		assert.True(t, IsRegistered(option.ID), option.ID)
	}
	assert.Len(t, registry, len(types.Templates))
}

func TestRender_EmptyDocumentInEveryTemplate(t *testing.T) {
	doc := document.New(types.TemplateOriginal, types.UserProfile{}, ids.Sequence("e"))
	doc.FullName = "Ana"

	for _, option := range Templates() {
		for _, mode := range modes {
			t.Run(fmt.Sprintf("%s/%s", option.ID, mode), func(t *testing.T) {
				tree, err := Render(doc, option.ID, mode)
				require.NoError(t, err)
				require.NotNil(t, tree)
				assert.Equal(t, KindPage, tree.Kind)

				identityBlock := tree.Find(RoleIdentity)
				require.NotNil(t, identityBlock)
				assert.True(t, strings.EqualFold("Ana", identityBlock.Find(RoleName).TextContent()))
				assert.NotNil(t, tree.Find(RoleContact))

				for _, role := range []Role{RoleExperience, RoleEducation, RoleSkills, RoleLanguages, RoleHobbies} {
					sections := sectionsWithRole(tree, role)
					require.Len(t, sections, 1, "section %s", role)
					assert.Len(t, sections[0].FindAll(role), 1, "empty section %s has no entries", role)
				}
			})
		}
	}
}

func TestRender_EveryPopulatedFieldAppears(t *testing.T) {
	doc := sampleDocument()

	for _, option := range Templates() {
		for _, mode := range modes {
			t.Run(fmt.Sprintf("%s/%s", option.ID, mode), func(t *testing.T) {
				tree, err := Render(doc, option.ID, mode)
				require.NoError(t, err)
				text := strings.Join(tree.Texts(), "\n")

				name := tree.Find(RoleName).TextContent()
				assert.True(t, strings.EqualFold(name, doc.FullName), "name %q", name)
				assert.Contains(t, text, doc.Role)
				assert.Contains(t, text, doc.Summary)
				for _, v := range []string{doc.Email, doc.Phone, doc.LinkedIn, doc.Portfolio} {
					assert.Contains(t, text, v)
				}
				require.NotNil(t, tree.Find(RoleAvatar))
				assert.Equal(t, doc.AvatarURL, tree.Find(RoleAvatar).Attrs["src"])

				for _, e := range doc.Experiences {
					assert.Contains(t, text, e.Role)
					assert.Contains(t, text, e.Company)
					assert.Contains(t, text, e.Period)
					assert.Contains(t, text, e.Description)
				}
				for _, e := range doc.Education {
					assert.Contains(t, text, e.Degree)
					assert.Contains(t, text, e.Institution)
					assert.Contains(t, text, e.Year)
					assert.Contains(t, text, string(e.Type))
				}
				for _, l := range doc.Languages {
					assert.Contains(t, text, l.Name)
					assert.Contains(t, text, l.Level)
				}
				for _, h := range doc.Hobbies {
					assert.Contains(t, text, h)
				}

				meters := tree.FindAll(RoleLevel)
				require.Len(t, meters, len(doc.Skills))
				for i, m := range meters {
					require.NotNil(t, m.Meter)
					assert.Equal(t, MeterWidth, m.Meter.Width)
					assert.Equal(t, doc.Skills[i].Level, m.Meter.Fill)
					assert.Contains(t, text, doc.Skills[i].Name)
				}
			})
		}
	}
}

func TestRender_EveryNodeCarriesColors(t *testing.T) {
	doc := sampleDocument()
	for _, option := range Templates() {
		for _, mode := range modes {
			tree, err := Render(doc, option.ID, mode)
			require.NoError(t, err)
			tree.Walk(func(n *Node) bool {
				assert.NotEmpty(t, n.Style.Background, "%s/%s: %s %s", option.ID, mode, n.Kind, n.Role)
				assert.NotEmpty(t, n.Style.Foreground, "%s/%s: %s %s", option.ID, mode, n.Kind, n.Role)
				return true
			})
		}
	}
}

func TestRender_LightAndDarkAreTunedSeparately(t *testing.T) {
	doc := sampleDocument()
	for _, option := range Templates() {
		light, err := Render(doc, option.ID, types.ThemeLight)
		require.NoError(t, err)
		dark, err := Render(doc, option.ID, types.ThemeDark)
		require.NoError(t, err)

		assert.NotEqual(t, light.Style.Background, dark.Style.Background, option.ID)
		assert.Equal(t, "light", light.Attrs["mode"])
		assert.Equal(t, "dark", dark.Attrs["mode"])
		assert.Equal(t, option.ID, light.Attrs["template"])
	}
}

func TestRender_TemplatesAreStructurallyDistinct(t *testing.T) {
	doc := sampleDocument()
	seen := map[string]string{}
	for _, option := range Templates() {
		tree, err := Render(doc, option.ID, types.ThemeDark)
		require.NoError(t, err)
		s := skeleton(tree)
		if other, dup := seen[s]; dup {
			t.Errorf("%s has the same structure as %s", option.ID, other)
		}
		seen[s] = option.ID
	}
}

func TestRender_Deterministic(t *testing.T) {
	doc := sampleDocument()
	for _, option := range Templates() {
		first, err := Render(doc, option.ID, types.ThemeLight)
		require.NoError(t, err)
		second, err := Render(doc, option.ID, types.ThemeLight)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	doc := sampleDocument()
	before, err := json.Marshal(doc)
	require.NoError(t, err)

	for _, option := range Templates() {
		tree, err := Render(doc, option.ID, types.ThemeDark)
		require.NoError(t, err)
		// Mutating the output must not reach back into the document either
		tree.Walk(func(n *Node) bool {
			n.Text = "changed"
			return true
		})
	}

	after, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestRender_UnknownTemplate(t *testing.T) {
	tree, err := Render(sampleDocument(), "neon", types.ThemeDark)
	assert.Nil(t, tree)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTemplate))

	var unknown *UnknownTemplateError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "neon", unknown.TemplateID)
}

func TestRenderWithFallback(t *testing.T) {
	tree, used, err := RenderWithFallback(sampleDocument(), "neon", types.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, types.CanonicalTemplate, used)
	assert.Equal(t, types.CanonicalTemplate, tree.Attrs["template"])

	_, used, err = RenderWithFallback(sampleDocument(), types.TemplateLilac, types.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, types.TemplateLilac, used)
}

func TestRender_InvalidModeDrawsDark(t *testing.T) {
	doc := sampleDocument()
	odd, err := Render(doc, types.TemplateBlue, types.ThemeMode("sepia"))
	require.NoError(t, err)
	dark, err := Render(doc, types.TemplateBlue, types.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, dark, odd)
}

func TestRender_ImportedLevelIsClampedBeforeDrawing(t *testing.T) {
	var raw types.RawDocument
	require.NoError(t, json.Unmarshal([]byte(`{"fullName": "Ana", "skills": [{"name": "Go", "level": 140}]}`), &raw))
	doc := document.Normalize(raw, nil)

	tree, err := RenderDocument(doc)
	require.NoError(t, err)
	meter := tree.Find(RoleLevel)
	require.NotNil(t, meter)
	assert.Equal(t, 100, meter.Meter.Fill)
	assert.InDelta(t, 1.0, meter.Meter.Fraction(), 0.0001)
}

func TestRender_UppercaseNames(t *testing.T) {
	doc := sampleDocument()
	doc.FullName = "joão da silva"
	tree, err := Render(doc, types.TemplateRed, types.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, "JOÃO DA SILVA", tree.Find(RoleName).TextContent())
}

func TestRender_SplitNameInOriginal(t *testing.T) {
	doc := sampleDocument()
	tree, err := Render(doc, types.TemplateOriginal, types.ThemeDark)
	require.NoError(t, err)

	name := tree.Find(RoleName)
	require.Len(t, name.Children, 2)
	assert.Equal(t, "MARIA", name.Children[0].Text)
	assert.Equal(t, "FERNANDES", name.Children[1].Text)
	assert.NotEqual(t, name.Children[0].Style.Foreground, name.Children[1].Style.Foreground)
}

// sectionsWithRole returns the section nodes (not their entries) for role
func sectionsWithRole(tree *Node, role Role) []*Node {
	var out []*Node
	for _, n := range tree.FindAll(role) {
		if n.Kind == KindSection {
			out = append(out, n)
		}
	}
	return out
}

// skeleton describes the tree's structure without text or colors
func skeleton(n *Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%s:%s:%d:%d(", n.Kind, n.Role, n.Style.Layout, n.Style.Span, n.Style.Columns)
	for _, c := range n.Children {
		b.WriteString(skeleton(c))
	}
	b.WriteString(")")
	return b.String()
}
