package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderProfessional puts a thin-ruled header with a square photo on the
// right and colors entry titles with the primary color.
func renderProfessional(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateProfessional)
	const present = "Ahora"

	identity := document.Box(document.Style{Grow: true},
		document.Text(cv.FullName, document.Style{
			FontSize: ss.Name,
			Bold:     true,
			Color:    ss.Primary,
		}),
		document.Text(joinContact(cv.Email, cv.Phone), document.Style{
			FontSize: ss.Subtitle,
			Color:    ss.Light,
			Margin:   document.Insets{Top: 3},
		}),
	)

	headerChildren := add(nil, identity)
	headerChildren = add(headerChildren, photoNode(cv, opts, document.Style{Width: 60, Height: 60, BorderRadius: 8}))

	header := document.Box(document.Style{
		Direction:    document.Row,
		Justify:      "space-between",
		Align:        "flex-start",
		Padding:      document.Insets{Bottom: 15},
		Margin:       document.Insets{Bottom: 15},
		BorderBottom: document.Border{Width: 2, Color: ss.Primary},
	}, headerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			entryHeader(
				document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true, Color: ss.Primary}),
				dateText(ss, dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDate)),
			),
			document.Text(exp.Company, document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return entryContainer(children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		return entryContainer(
			entryHeader(
				document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
				dateText(ss, dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDate)),
			),
			document.Text(institutionLine(edu), document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
	}

	// Chips tinted with the primary color
	chip := defaultChipStyle(ss)
	chip.Color = ss.Primary

	children := add(nil,
		header,
		summarySection(cv, opts, ss, "Resumen"),
		experienceSection(cv, opts, ss, "Experiencia Profesional", expEntry),
		educationSection(cv, opts, ss, "Formación", eduEntry),
		skillsSection(cv, opts, ss, "Competencias", chip),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	return newTree(cv, ss, document.Box(document.Style{Direction: document.Column}, children...))
}

// joinContact joins contact fragments with a separator, skipping empties.
func joinContact(values ...string) string {
	out := ""
	for _, v := range nonEmpty(values...) {
		if out != "" {
			out += " | "
		}
		out += v
	}
	return out
}
