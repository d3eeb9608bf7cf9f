package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/types"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit the content of a résumé",
	Long: `Edit header fields, entries and presentation of a stored résumé.

Entries are added with pipe-separated values; missing parts keep their placeholder:
  --add-experience "Role|Company|Period|Description"
  --add-education  "Degree|Institution|Year|Type"
  --add-skill      "Name|Level"
  --add-language   "Name|Level"

Entries are removed by id (see show --json); hobbies by position, starting at 0.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

// headerFlags maps flag names to the header field they set
var headerFlags = []struct {
	name  string
	usage string
	field func(*types.ResumeDocument) *string
}{
	{"name", "Full name", func(d *types.ResumeDocument) *string { return &d.FullName }},
	{"role", "Role or headline", func(d *types.ResumeDocument) *string { return &d.Role }},
	{"email", "Contact email", func(d *types.ResumeDocument) *string { return &d.Email }},
	{"phone", "Contact phone", func(d *types.ResumeDocument) *string { return &d.Phone }},
	{"linkedin", "LinkedIn URL", func(d *types.ResumeDocument) *string { return &d.LinkedIn }},
	{"portfolio", "Portfolio URL", func(d *types.ResumeDocument) *string { return &d.Portfolio }},
	{"summary", "Professional summary", func(d *types.ResumeDocument) *string { return &d.Summary }},
	{"avatar", "Avatar image URL", func(d *types.ResumeDocument) *string { return &d.AvatarURL }},
}

var (
	editTemplate         string
	editToggleTheme      bool
	editAddExperience    []string
	editRemoveExperience []string
	editAddEducation     []string
	editRemoveEducation  []string
	editAddSkill         []string
	editRemoveSkill      []string
	editAddLanguage      []string
	editRemoveLanguage   []string
	editAddHobby         []string
	editRemoveHobby      []int
)

func init() {
	for _, h := range headerFlags {
		editCmd.Flags().String(h.name, "", h.usage)
	}
	editCmd.Flags().StringVarP(&editTemplate, "template", "t", "", "Switch to another template")
	editCmd.Flags().BoolVar(&editToggleTheme, "toggle-theme", false, "Flip between light and dark")
	editCmd.Flags().StringArrayVar(&editAddExperience, "add-experience", nil, "Add an experience")
	editCmd.Flags().StringArrayVar(&editRemoveExperience, "remove-experience", nil, "Remove the experience with this id")
	editCmd.Flags().StringArrayVar(&editAddEducation, "add-education", nil, "Add an education entry")
	editCmd.Flags().StringArrayVar(&editRemoveEducation, "remove-education", nil, "Remove the education entry with this id")
	editCmd.Flags().StringArrayVar(&editAddSkill, "add-skill", nil, "Add a skill")
	editCmd.Flags().StringArrayVar(&editRemoveSkill, "remove-skill", nil, "Remove the skill with this id")
	editCmd.Flags().StringArrayVar(&editAddLanguage, "add-language", nil, "Add a language")
	editCmd.Flags().StringArrayVar(&editRemoveLanguage, "remove-language", nil, "Remove the language with this id")
	editCmd.Flags().StringArrayVar(&editAddHobby, "add-hobby", nil, "Add a hobby")
	editCmd.Flags().IntSliceVar(&editRemoveHobby, "remove-hobby", nil, "Remove the hobby at this position")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	changed := false
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		changed = changed || f.Changed
	})
	if !changed {
		return errors.New("nothing to edit; see edit --help")
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	headers := make(map[string]string)
	for _, h := range headerFlags {
		if cmd.Flags().Changed(h.name) {
			headers[h.name], _ = cmd.Flags().GetString(h.name)
		}
	}

	if _, err := a.reconciler.Edit(cmd.Context(), args[0], func(doc *types.ResumeDocument) error {
		for _, h := range headerFlags {
			if v, ok := headers[h.name]; ok {
				*h.field(doc) = v
			}
		}
		return applyEdits(doc)
	}); err != nil {
		return fmt.Errorf("failed to edit résumé: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated résumé %s\n", args[0])
	return nil
}

// applyEdits runs removals before additions so new entries are never removed
func applyEdits(doc *types.ResumeDocument) error {
	if editTemplate != "" {
		if err := document.SetTemplate(doc, editTemplate); err != nil {
			return err
		}
	}
	if editToggleTheme {
		document.ToggleTheme(doc)
	}

	for _, id := range editRemoveExperience {
		if !document.RemoveExperience(doc, id) {
			return fmt.Errorf("no experience %q", id)
		}
	}
	for _, id := range editRemoveEducation {
		if !document.RemoveEducation(doc, id) {
			return fmt.Errorf("no education entry %q", id)
		}
	}
	for _, id := range editRemoveSkill {
		if !document.RemoveSkill(doc, id) {
			return fmt.Errorf("no skill %q", id)
		}
	}
	for _, id := range editRemoveLanguage {
		if !document.RemoveLanguage(doc, id) {
			return fmt.Errorf("no language %q", id)
		}
	}
	// Highest position first so earlier removals do not shift later ones
	positions := slices.Clone(editRemoveHobby)
	slices.Sort(positions)
	for _, i := range slices.Backward(positions) {
		if !document.RemoveHobby(doc, i) {
			return fmt.Errorf("no hobby at position %d", i)
		}
	}

	for _, v := range editAddExperience {
		parts := splitParts(v, 4)
		e := document.AddExperience(doc, nil)
		document.UpdateExperience(doc, e.ID, func(e *types.Experience) {
			setIf(&e.Role, parts[0])
			setIf(&e.Company, parts[1])
			setIf(&e.Period, parts[2])
			setIf(&e.Description, parts[3])
		})
	}
	for _, v := range editAddEducation {
		parts := splitParts(v, 4)
		kind := types.EducationType(parts[3])
		if parts[3] != "" && !kind.Valid() {
			return fmt.Errorf("unknown education type %q", parts[3])
		}
		e := document.AddEducation(doc, nil)
		document.UpdateEducation(doc, e.ID, func(e *types.Education) {
			setIf(&e.Degree, parts[0])
			setIf(&e.Institution, parts[1])
			setIf(&e.Year, parts[2])
			if parts[3] != "" {
				e.Type = kind
			}
		})
	}
	for _, v := range editAddSkill {
		parts := splitParts(v, 2)
		level := document.NewSkillLevel
		if parts[1] != "" {
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				return fmt.Errorf("invalid skill level %q: %w", parts[1], err)
			}
			level = n
		}
		s := document.AddSkill(doc, nil)
		document.UpdateSkill(doc, s.ID, func(s *types.Skill) {
			s.Name = parts[0]
			s.Level = level
		})
	}
	for _, v := range editAddLanguage {
		parts := splitParts(v, 2)
		l := document.AddLanguage(doc, nil)
		document.UpdateLanguage(doc, l.ID, func(l *types.Language) {
			l.Name = parts[0]
			l.Level = parts[1]
		})
	}
	for _, v := range editAddHobby {
		document.AddHobby(doc)
		document.UpdateHobby(doc, len(doc.Hobbies)-1, v)
	}
	return nil
}

// splitParts splits a pipe-separated value into exactly n trimmed parts
func splitParts(v string, n int) []string {
	parts := strings.SplitN(v, "|", n)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
