package collection

import (
	"cmp"
	"slices"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// Sort returns docs in display order: pinned documents first, then by
// LastUpdated, newest first. Documents without a parseable timestamp count
// as the oldest. Equal keys keep their relative order; docs is not modified.
func Sort(docs []types.ResumeDocument) []types.ResumeDocument {
	out := slices.Clone(docs)
	slices.SortStableFunc(out, func(a, b types.ResumeDocument) int {
		if a.IsPinned != b.IsPinned {
			if a.IsPinned {
				return -1
			}
			return 1
		}
		return cmp.Compare(timestamp(b.LastUpdated), timestamp(a.LastUpdated))
	})
	return out
}

// timestamp returns unix milliseconds, 0 when s is empty or unparseable
func timestamp(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}
