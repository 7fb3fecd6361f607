package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderMinimal uses generous whitespace, undecorated section titles, and
// stacked entries with no description emphasis.
func renderMinimal(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateMinimal)
	const present = "Actual"

	identity := document.Box(document.Style{Grow: true},
		document.Text(cv.FullName, document.Style{
			FontSize: ss.Name,
			Bold:     true,
			Color:    ss.Primary,
			Margin:   document.Insets{Bottom: 4},
		}),
		contactRow(ss, nonEmpty(cv.Email, cv.Phone, cv.Location), ""),
	)

	headerChildren := add(nil, identity)
	headerChildren = add(headerChildren, photoNode(cv, opts, document.Style{
		Width:        55,
		Height:       55,
		BorderRadius: 27,
	}))

	header := document.Box(document.Style{
		Direction: document.Row,
		Justify:   "space-between",
		Align:     "flex-start",
		Margin:    document.Insets{Bottom: 15},
	}, headerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(exp.Company, document.Style{FontSize: ss.Base, Color: ss.Muted}),
			dateText(ss, dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDate)),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return entryContainer(children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		return entryContainer(
			document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(institutionLine(edu), document.Style{FontSize: ss.Base, Color: ss.Muted}),
			dateText(ss, dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDate)),
		)
	}

	// Plain text chips: no fill, muted color
	chip := document.Style{FontSize: ss.Chip, Color: ss.Muted}

	children := add(nil,
		header,
		summarySection(cv, opts, ss, "Resumen Profesional"),
		experienceSection(cv, opts, ss, "Experiencia", expEntry),
		educationSection(cv, opts, ss, "Formación", eduEntry),
		skillsSection(cv, opts, ss, "Habilidades", chip),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	return newTree(cv, ss, document.Box(document.Style{Direction: document.Column}, children...))
}
