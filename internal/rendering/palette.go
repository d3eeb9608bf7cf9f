package rendering

import "github.com/jonathan/resume-studio/internal/types"

// palette is the full color set of one template in one theme mode
type palette struct {
	Page       string // page background
	Ink        string // body text
	Heading    string // names and section titles
	Muted      string // secondary text
	Surface    string // cards
	SurfaceInk string
	Panel      string // sidebars and header bands
	PanelInk   string
	Accent     string
	AccentInk  string // text drawn on Accent
	Border     string
	Track      string // empty part of a skill meter
}

// scheme pairs the two palettes of a template. The dark palette is tuned on
// its own, not derived from the light one.
type scheme struct {
	light palette
	dark  palette
}

func (s scheme) pick(mode types.ThemeMode) palette {
	if mode == types.ThemeLight {
		return s.light
	}
	return s.dark
}

var (
	forestScheme = scheme{
		light: palette{
			Page: "#fffbeb", Ink: "#292524", Heading: "#1c1917", Muted: "#57534e",
			Surface: "#ffffff", SurfaceInk: "#57534e", Panel: "#fef3c7", PanelInk: "#57534e",
			Accent: "#c2410c", AccentInk: "#ffffff", Border: "#fde68a", Track: "#fde68a",
		},
		dark: palette{
			Page: "#0f1f17", Ink: "#e7e5e4", Heading: "#ffffff", Muted: "#a8a29e",
			Surface: "#173a2b", SurfaceInk: "#a8a29e", Panel: "#0b1711", PanelInk: "#a8a29e",
			Accent: "#e07a45", AccentInk: "#0f1f17", Border: "#24513d", Track: "#173a2b",
		},
	}

	corporateBlueScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#1e293b", Heading: "#1e3a8a", Muted: "#475569",
			Surface: "#f8fafc", SurfaceInk: "#475569", Panel: "#1e3a8a", PanelInk: "#ffffff",
			Accent: "#2563eb", AccentInk: "#ffffff", Border: "#2563eb", Track: "#1e40af",
		},
		dark: palette{
			Page: "#0f172a", Ink: "#e2e8f0", Heading: "#60a5fa", Muted: "#94a3b8",
			Surface: "#1e293b", SurfaceInk: "#94a3b8", Panel: "#172554", PanelInk: "#ffffff",
			Accent: "#93c5fd", AccentInk: "#0f172a", Border: "#1e3a8a", Track: "#1e3a8a",
		},
	}

	boldRedScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#404040", Heading: "#000000", Muted: "#737373",
			Surface: "#fafafa", SurfaceInk: "#404040", Panel: "#f5f5f5", PanelInk: "#171717",
			Accent: "#ef4444", AccentInk: "#ffffff", Border: "#e5e5e5", Track: "#e5e5e5",
		},
		dark: palette{
			Page: "#171717", Ink: "#d4d4d4", Heading: "#ffffff", Muted: "#a3a3a3",
			Surface: "#262626", SurfaceInk: "#d4d4d4", Panel: "#262626", PanelInk: "#ffffff",
			Accent: "#f87171", AccentInk: "#171717", Border: "#404040", Track: "#404040",
		},
	}

	emeraldScheme = scheme{
		light: palette{
			Page: "#ecfdf5", Ink: "#064e3b", Heading: "#064e3b", Muted: "#047857",
			Surface: "#ffffff", SurfaceInk: "#047857", Panel: "#064e3b", PanelInk: "#d1fae5",
			Accent: "#10b981", AccentInk: "#ffffff", Border: "#a7f3d0", Track: "#d1fae5",
		},
		dark: palette{
			Page: "#022c22", Ink: "#d1fae5", Heading: "#6ee7b7", Muted: "#34d399",
			Surface: "#064e3b", SurfaceInk: "#a7f3d0", Panel: "#064e3b", PanelInk: "#d1fae5",
			Accent: "#34d399", AccentInk: "#022c22", Border: "#065f46", Track: "#065f46",
		},
	}

	indigoScheme = scheme{
		light: palette{
			Page: "#eef2ff", Ink: "#312e81", Heading: "#4338ca", Muted: "#6366f1",
			Surface: "#ffffff", SurfaceInk: "#312e81", Panel: "#4f46e5", PanelInk: "#ffffff",
			Accent: "#6366f1", AccentInk: "#ffffff", Border: "#e0e7ff", Track: "#e0e7ff",
		},
		dark: palette{
			Page: "#1e1b4b", Ink: "#e0e7ff", Heading: "#818cf8", Muted: "#a5b4fc",
			Surface: "#2e2a66", SurfaceInk: "#e0e7ff", Panel: "#312e81", PanelInk: "#ffffff",
			Accent: "#818cf8", AccentInk: "#1e1b4b", Border: "#312e81", Track: "#312e81",
		},
	}

	monoScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#000000", Heading: "#000000", Muted: "#525252",
			Surface: "#f5f5f5", SurfaceInk: "#000000", Panel: "#000000", PanelInk: "#ffffff",
			Accent: "#000000", AccentInk: "#ffffff", Border: "#000000", Track: "#d4d4d4",
		},
		dark: palette{
			Page: "#000000", Ink: "#ffffff", Heading: "#ffffff", Muted: "#a3a3a3",
			Surface: "#171717", SurfaceInk: "#ffffff", Panel: "#ffffff", PanelInk: "#000000",
			Accent: "#ffffff", AccentInk: "#000000", Border: "#ffffff", Track: "#404040",
		},
	}

	magentaScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#111827", Heading: "#db2777", Muted: "#374151",
			Surface: "#f9fafb", SurfaceInk: "#111827", Panel: "#fdf2f8", PanelInk: "#111827",
			Accent: "#db2777", AccentInk: "#ffffff", Border: "#fce7f3", Track: "#374151",
		},
		dark: palette{
			Page: "#030712", Ink: "#e5e7eb", Heading: "#ec4899", Muted: "#d1d5db",
			Surface: "#111827", SurfaceInk: "#e5e7eb", Panel: "#111827", PanelInk: "#fce7f3",
			Accent: "#ec4899", AccentInk: "#030712", Border: "#1f2937", Track: "#1f2937",
		},
	}

	violetScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#2e1065", Heading: "#2e1065", Muted: "#5b21b6",
			Surface: "#f5f3ff", SurfaceInk: "#4c1d95", Panel: "#ffffff", PanelInk: "#2e1065",
			Accent: "#7c3aed", AccentInk: "#ffffff", Border: "#ddd6fe", Track: "#ede9fe",
		},
		dark: palette{
			Page: "#2e1065", Ink: "#ede9fe", Heading: "#ffffff", Muted: "#c4b5fd",
			Surface: "#4c1d95", SurfaceInk: "#ddd6fe", Panel: "#2e1065", PanelInk: "#ede9fe",
			Accent: "#a78bfa", AccentInk: "#2e1065", Border: "#6d28d9", Track: "#5b21b6",
		},
	}

	stoneScheme = scheme{
		light: palette{
			Page: "#f5f5f4", Ink: "#44403c", Heading: "#1c1917", Muted: "#57534e",
			Surface: "#ffffff", SurfaceInk: "#44403c", Panel: "#f5f5f4", PanelInk: "#44403c",
			Accent: "#78716c", AccentInk: "#ffffff", Border: "#e7e5e4", Track: "#d6d3d1",
		},
		dark: palette{
			Page: "#1c1917", Ink: "#d6d3d1", Heading: "#f5f5f4", Muted: "#a8a29e",
			Surface: "#292524", SurfaceInk: "#d6d3d1", Panel: "#1c1917", PanelInk: "#d6d3d1",
			Accent: "#a8a29e", AccentInk: "#1c1917", Border: "#44403c", Track: "#44403c",
		},
	}

	lilacScheme = scheme{
		light: palette{
			Page: "#ffffff", Ink: "#334155", Heading: "#581c87", Muted: "#9333ea",
			Surface: "#f3e8ff", SurfaceInk: "#581c87", Panel: "#9333ea", PanelInk: "#ffffff",
			Accent: "#9333ea", AccentInk: "#ffffff", Border: "#f3e8ff", Track: "#e9d5ff",
		},
		dark: palette{
			Page: "#0f172a", Ink: "#e2e8f0", Heading: "#e9d5ff", Muted: "#c084fc",
			Surface: "#2e1065", SurfaceInk: "#e9d5ff", Panel: "#581c87", PanelInk: "#f3e8ff",
			Accent: "#c084fc", AccentInk: "#2e1065", Border: "#581c87", Track: "#581c87",
		},
	}
)
