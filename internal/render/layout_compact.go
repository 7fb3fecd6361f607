package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderCompact uses light gray cards for the header and each experience
// entry, with outlined skill chips.
func renderCompact(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateCompact)
	const present = "Actual"
	const cardBackground = "#f9fafb"

	headerChildren := add(nil,
		document.Text(cv.FullName, document.Style{
			FontSize: ss.Name,
			Bold:     true,
			Color:    ss.Primary,
		}),
		document.Text(joinDotted(cv.Email, cv.Phone, cv.Location), document.Style{
			FontSize: ss.Base - 0.5,
			Color:    ss.Light,
			Margin:   document.Insets{Top: 3},
		}),
	)
	headerChildren = add(headerChildren, photoNode(cv, opts, document.Style{
		Width:        50,
		Height:       50,
		BorderRadius: 25,
		Absolute:     true,
		Top:          15,
		Right:        15,
	}))

	header := document.Box(document.Style{
		Background:   cardBackground,
		Padding:      document.Uniform(15),
		Margin:       document.Insets{Bottom: 15},
		BorderRadius: 8,
	}, headerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true, Color: ss.Primary}),
			document.Text(exp.Company, document.Style{FontSize: ss.Base, Color: ss.Muted}),
			dateText(ss, dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDate)),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return document.Box(document.Style{
			Background:   cardBackground,
			Padding:      document.Uniform(8),
			Margin:       document.Insets{Bottom: 5},
			BorderRadius: 4,
		}, children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		return document.Box(document.Style{
			Background:   cardBackground,
			Padding:      document.Uniform(8),
			Margin:       document.Insets{Bottom: 5},
			BorderRadius: 4,
		},
			document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(institutionLine(edu), document.Style{FontSize: ss.Base, Color: ss.Muted}),
			dateText(ss, dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDate)),
		)
	}

	// Outlined chips: primary border and text, no fill
	chip := document.Style{
		FontSize:     ss.Chip,
		Color:        ss.Primary,
		Border:       document.Border{Width: 1, Color: ss.Primary},
		Padding:      document.Insets{Top: 4, Right: 10, Bottom: 4, Left: 10},
		BorderRadius: 4,
	}

	children := add(nil,
		header,
		summarySection(cv, opts, ss, "Acerca de Mí"),
		experienceSection(cv, opts, ss, "Experiencia Laboral", expEntry),
		educationSection(cv, opts, ss, "Formación", eduEntry),
		skillsSection(cv, opts, ss, "Aptitudes", chip),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	return newTree(cv, ss, document.Box(document.Style{Direction: document.Column}, children...))
}

// joinDotted joins contact fragments with a bullet separator, skipping empties.
func joinDotted(values ...string) string {
	out := ""
	for _, v := range nonEmpty(values...) {
		if out != "" {
			out += " • "
		}
		out += v
	}
	return out
}
