package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderClassic centers the name and contact line and keeps every section
// title centered over its rule. Dates use the long Spanish month form.
func renderClassic(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateClassic)
	const present = "Actualidad"

	headerChildren := add(nil,
		photoNode(cv, opts, document.Style{Width: 70, Height: 70, BorderRadius: 35, Margin: document.Insets{Bottom: 8}}),
		document.Text(cv.FullName, document.Style{
			FontSize:  ss.Name,
			Bold:      true,
			Color:     ss.Primary,
			TextAlign: "center",
			Margin:    document.Insets{Bottom: 4},
		}),
		contactRow(ss, nonEmpty(cv.Email, cv.Phone, cv.Location, cv.LinkedIn), "center"),
	)

	header := document.Box(document.Style{
		Direction: document.Column,
		Align:     "center",
		Margin:    document.Insets{Bottom: 20},
	}, headerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			entryHeader(
				document.Box(document.Style{},
					document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true}),
					document.Text(exp.Company, document.Style{FontSize: ss.Base, Color: ss.Muted}),
				),
				dateText(ss, dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDateLong)),
			),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return entryContainer(children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		return entryContainer(
			entryHeader(
				document.Box(document.Style{},
					document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
					document.Text(institutionLine(edu), document.Style{FontSize: ss.Base, Color: ss.Muted}),
				),
				dateText(ss, dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDateLong)),
			),
		)
	}

	children := add(nil,
		header,
		summarySection(cv, opts, ss, "Perfil Profesional"),
		experienceSection(cv, opts, ss, "Experiencia Laboral", expEntry),
		educationSection(cv, opts, ss, "Educación", eduEntry),
		skillsSection(cv, opts, ss, "Habilidades", defaultChipStyle(ss)),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	return newTree(cv, ss, document.Box(document.Style{Direction: document.Column}, children...))
}
