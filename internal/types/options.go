package types

// FontSize is the user-selectable font size tier
type FontSize string

// Font size tiers
const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// LayoutOrder controls how dated entries are ordered within a section
type LayoutOrder string

// Layout orders
const (
	OrderAscending  LayoutOrder = "ascending"
	OrderDescending LayoutOrder = "descending"
)

// TemplateSettings holds the persisted, user-configurable visual parameters
// of a CV. All fields are optional on input; zero values are filled from
// DefaultOptions by Options().
type TemplateSettings struct {
	PrimaryColor string      `json:"primaryColor,omitempty"`
	FontSize     FontSize    `json:"fontSize,omitempty"`
	Layout       LayoutOrder `json:"layout,omitempty"`
	Padding      float64     `json:"padding,omitempty"`
	Margin       float64     `json:"margin,omitempty"`

	ShowPhoto          *bool `json:"showPhoto,omitempty"`
	ShowSummary        *bool `json:"showSummary,omitempty"`
	ShowSkills         *bool `json:"showSkills,omitempty"`
	ShowLanguages      *bool `json:"showLanguages,omitempty"`
	ShowProjects       *bool `json:"showProjects,omitempty"`
	ShowCertifications *bool `json:"showCertifications,omitempty"`
}

// Options is a fully-resolved set of render options with every field populated.
type Options struct {
	PrimaryColor string
	FontSize     FontSize
	Layout       LayoutOrder
	Padding      float64
	Margin       float64

	ShowPhoto          bool
	ShowSummary        bool
	ShowSkills         bool
	ShowLanguages      bool
	ShowProjects       bool
	ShowCertifications bool
}

// DefaultOptions returns the documented render defaults.
func DefaultOptions() Options {
	return Options{
		PrimaryColor:       "#1e3a5f",
		FontSize:           FontMedium,
		Layout:             OrderDescending,
		Padding:            40,
		Margin:             20,
		ShowPhoto:          true,
		ShowSummary:        true,
		ShowSkills:         true,
		ShowLanguages:      true,
		ShowProjects:       false,
		ShowCertifications: false,
	}
}

// Options resolves the settings into a complete Options value, applying
// defaults for any field left unset. Missing fields never fail a render.
func (s TemplateSettings) Options() Options {
	opts := DefaultOptions()

	if s.PrimaryColor != "" {
		opts.PrimaryColor = s.PrimaryColor
	}
	switch s.FontSize {
	case FontSmall, FontMedium, FontLarge:
		opts.FontSize = s.FontSize
	}
	switch s.Layout {
	case OrderAscending, OrderDescending:
		opts.Layout = s.Layout
	}
	if s.Padding > 0 {
		opts.Padding = s.Padding
	}
	if s.Margin > 0 {
		opts.Margin = s.Margin
	}

	if s.ShowPhoto != nil {
		opts.ShowPhoto = *s.ShowPhoto
	}
	if s.ShowSummary != nil {
		opts.ShowSummary = *s.ShowSummary
	}
	if s.ShowSkills != nil {
		opts.ShowSkills = *s.ShowSkills
	}
	if s.ShowLanguages != nil {
		opts.ShowLanguages = *s.ShowLanguages
	}
	if s.ShowProjects != nil {
		opts.ShowProjects = *s.ShowProjects
	}
	if s.ShowCertifications != nil {
		opts.ShowCertifications = *s.ShowCertifications
	}

	return opts
}
