package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderCreative opens with a rounded colored block holding the name and
// contact line, and renders experience as "company | dates" single lines.
func renderCreative(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateCreative)
	const present = "Actual"

	contactItems := nonEmpty(cv.Email, cv.Phone, cv.Location)
	contactChildren := make([]*document.Node, 0, len(contactItems))
	for _, item := range contactItems {
		contactChildren = append(contactChildren, document.Text(item, document.Style{
			FontSize: ss.Date,
			Color:    "#ffffff",
		}))
	}

	bannerChildren := add(nil,
		document.Text(cv.FullName, document.Style{
			FontSize: ss.Name,
			Bold:     true,
			Color:    "#ffffff",
		}),
		document.Box(document.Style{
			Direction: document.Row,
			Gap:       15,
			Margin:    document.Insets{Top: 5},
		}, contactChildren...),
	)
	bannerChildren = add(bannerChildren, photoNode(cv, opts, document.Style{
		Width:        60,
		Height:       60,
		BorderRadius: 30,
		Absolute:     true,
		Top:          15,
		Right:        20,
	}))

	header := document.Box(document.Style{
		Background:   ss.Primary,
		Padding:      document.Uniform(20),
		Margin:       document.Insets{Bottom: 15},
		BorderRadius: 4,
	}, bannerChildren...).Tagged(document.SectionHeader)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true, Color: ss.Primary}),
			document.Text(exp.Company+" | "+dateRange(exp.StartDate, exp.EndDate, exp.Current, present, FormatDate),
				document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
		if exp.Description != "" {
			children = add(children, descriptionText(ss, exp.Description))
		}
		return entryContainer(children...)
	}

	eduEntry := func(edu types.Education) *document.Node {
		return entryContainer(
			document.Text(edu.Degree, document.Style{FontSize: ss.EntryTitle, Bold: true}),
			document.Text(institutionLine(edu)+" | "+dateRange(edu.StartDate, edu.EndDate, edu.Current, present, FormatDate),
				document.Style{FontSize: ss.Base, Color: ss.Muted}),
		)
	}

	children := add(nil,
		header,
		summarySection(cv, opts, ss, "Sobre Mí"),
		experienceSection(cv, opts, ss, "Experiencia", expEntry),
		educationSection(cv, opts, ss, "Estudios", eduEntry),
		skillsSection(cv, opts, ss, "Skills", defaultChipStyle(ss)),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	return newTree(cv, ss, document.Box(document.Style{Direction: document.Column}, children...))
}
