package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderHarvard is the default layout: a ruled header with the contact line
// under the name, photo floated at the right edge, and classic underlined
// section titles. Dates use the long Spanish month form.
func renderHarvard(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateHarvard)
	const present = "Actualidad"

	name := document.Text(cv.FullName, document.Style{
		FontSize: ss.Name,
		Bold:     true,
		Color:    ss.Primary,
		Margin:   document.Insets{Bottom: 4},
	})

	identity := document.Box(document.Style{Grow: true},
		name,
		contactRow(ss, nonEmpty(cv.Email, cv.Phone, cv.Location, cv.LinkedIn, cv.GitHub), ""),
	)

	headerChildren := add(nil, identity)
	headerChildren = add(headerChildren, photoNode(cv, opts, document.Style{
		Width:        65,
		Height:       65,
		BorderRadius: 32,
	}))

	header := document.Box(document.Style{
		Direction:    document.Row,
		Justify:      "space-between",
		Align:        "flex-start",
		Margin:       document.Insets{Bottom: 20},
		Padding:      document.Insets{Bottom: 10},
		BorderBottom: document.Border{Width: 2, Color: ss.Primary},
	}, headerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		left := document.Box(document.Style{},
			document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(exp.Company, document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
		children := add(nil,
			entryHeader(left, dateText(ss, dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDateLong))),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return entryContainer(children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		left := document.Box(document.Style{},
			document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(institutionLine(edu), document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
		return entryContainer(
			entryHeader(left, dateText(ss, dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDateLong))),
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
