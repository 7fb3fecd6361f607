// Package render builds document trees from CV records. Each visual template
// is a Renderer function; the shared style, date, and sort helpers keep the
// templates free of duplicated data-shaping logic.
package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// HeaderVariant selects how a template presents the name/contact header
type HeaderVariant string

// Header variants
const (
	HeaderInline   HeaderVariant = "inline"   // name left, contact row beneath
	HeaderCentered HeaderVariant = "centered" // name and contact centered
	HeaderBanner   HeaderVariant = "banner"   // colored block with light text
	HeaderSidebar  HeaderVariant = "sidebar"  // contact in a colored side column
)

// TitleRule selects the decoration under section titles
type TitleRule string

// Title rules
const (
	RuleUnderline TitleRule = "underline"
	RuleFill      TitleRule = "fill"
	RuleNone      TitleRule = "none"
)

// StyleSheet is the resolved set of visual rules shared by every layout.
// All sizes are in points and derive from the base size so a tier change
// rescales the whole document proportionally.
type StyleSheet struct {
	Base         float64
	Name         float64
	Subtitle     float64
	SectionTitle float64
	EntryTitle   float64
	Date         float64
	Chip         float64

	Primary        string
	Text           string
	Muted          string
	Light          string
	Body           string
	ChipBackground string
	ChipText       string

	PagePadding document.Insets
	Margin      float64

	Header HeaderVariant
	Rule   TitleRule
}

// baseFontSize maps a font tier to its base size in points.
// Unknown tiers fall back to medium.
func baseFontSize(tier types.FontSize) float64 {
	switch tier {
	case types.FontSmall:
		return 8
	case types.FontLarge:
		return 11
	default:
		return 9.5
	}
}

// ResolveStyle computes the style sheet for a template from the render
// options. Color strings are accepted as-is; an unknown templateID gets the
// base rules with no template-specific override.
func ResolveStyle(opts types.Options, templateID string) StyleSheet {
	size := baseFontSize(opts.FontSize)

	ss := StyleSheet{
		Base:         size,
		Name:         size * 2.2,
		Subtitle:     size + 1,
		SectionTitle: size + 2.5,
		EntryTitle:   size + 0.5,
		Date:         size - 0.5,
		Chip:         size - 0.5,

		Primary:        opts.PrimaryColor,
		Text:           "#1a1a1a",
		Muted:          "#555555",
		Light:          "#666666",
		Body:           "#444444",
		ChipBackground: "#f3f4f6",
		ChipText:       "#374151",

		PagePadding: document.Uniform(opts.Padding),
		Margin:      opts.Margin,

		Header: HeaderInline,
		Rule:   RuleUnderline,
	}

	switch templateID {
	case TemplateHarvard:
		ss.Name = size * 2.5
		ss.PagePadding = document.Insets{
			Top:    opts.Padding * 2,
			Right:  opts.Padding * 2,
			Bottom: opts.Padding,
			Left:   opts.Padding * 2,
		}
	case TemplateModern:
		ss.Header = HeaderBanner
		ss.Rule = RuleFill
		ss.PagePadding = document.Insets{}
	case TemplateClassic:
		ss.Header = HeaderCentered
		ss.Name = size * 2.8
	case TemplateCreative:
		ss.Header = HeaderBanner
	case TemplateMinimal:
		ss.Rule = RuleNone
		ss.SectionTitle = size + 1
		ss.PagePadding = document.Uniform(opts.Padding * 3)
	case TemplateProfessional:
		// base rules with a ruled header; handled by the layout itself
	case TemplateSidebar:
		ss.Header = HeaderSidebar
	case TemplateCompact:
		ss.Rule = RuleNone
		ss.PagePadding = document.Uniform(30)
	}

	return ss
}
