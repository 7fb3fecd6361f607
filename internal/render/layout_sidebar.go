package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// sidebarWidth is the fixed width of the colored side column in points.
const sidebarWidth = 180

// renderSidebar places contact, skills, and languages in a colored side
// column and keeps the narrative sections in the main column.
func renderSidebar(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateSidebar)
	const present = "Actualidad"

	white := "#ffffff"

	sideTitle := func(text string) *document.Node {
		return document.Text(text, document.Style{
			FontSize:  ss.Base + 0.5,
			Bold:      true,
			Color:     white,
			Uppercase: true,
			Margin:    document.Insets{Top: 15, Bottom: 5},
		})
	}
	sideItem := func(text string) *document.Node {
		return document.Text(text, document.Style{
			FontSize: ss.Base - 1.5,
			Color:    white,
			Margin:   document.Insets{Bottom: 3},
		})
	}

	var sideChildren []*document.Node
	if photo := photoNode(cv, opts, document.Style{
		Width:        80,
		Height:       80,
		BorderRadius: 40,
		Margin:       document.Insets{Bottom: 15},
	}); photo != nil {
		sideChildren = add(sideChildren, document.Box(document.Style{Align: "center"}, photo))
	}

	contactChildren := add(nil, sideTitle("Contacto"))
	for _, item := range nonEmpty(cv.Phone, cv.Email, cv.Location, cv.LinkedIn, cv.GitHub) {
		contactChildren = add(contactChildren, sideItem(item))
	}
	sideChildren = add(sideChildren, document.Box(document.Style{}, contactChildren...).Tagged(document.SectionHeader))

	if opts.ShowSkills && len(cv.Skills) > 0 {
		skillChildren := add(nil, sideTitle("Habilidades"))
		for _, skill := range cv.Skills {
			skillChildren = add(skillChildren, sideItem("• "+skill))
		}
		sideChildren = add(sideChildren, document.Box(document.Style{}, skillChildren...).Tagged(document.SectionSkills))
	}

	if opts.ShowLanguages && len(cv.Languages) > 0 {
		langChildren := add(nil, sideTitle("Idiomas"))
		for _, lang := range cv.Languages {
			langChildren = add(langChildren, sideItem(lang.Language+": "+lang.Level))
		}
		sideChildren = add(sideChildren, document.Box(document.Style{}, langChildren...).Tagged(document.SectionLanguages))
	}

	side := document.Box(document.Style{
		Width:      sidebarWidth,
		Background: ss.Primary,
		Padding:    document.Uniform(15),
		Margin:     document.Insets{Right: 15},
	}, sideChildren...)

	expEntry := func(exp types.Experience) *document.Node {
		children := add(nil,
			document.Text(exp.Position, document.Style{FontSize: ss.EntryTitle, Bold: true, Color: ss.Primary}),
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

	mainChildren := add(nil,
		document.Text(cv.FullName, document.Style{
			FontSize: ss.Name,
			Bold:     true,
			Color:    ss.Primary,
			Margin:   document.Insets{Bottom: 3},
		}),
		summarySection(cv, opts, ss, "Perfil"),
		experienceSection(cv, opts, ss, "Experiencia", expEntry),
		educationSection(cv, opts, ss, "Educación", eduEntry),
	)

	main := document.Box(document.Style{Grow: true, Padding: document.Insets{Left: 10}}, mainChildren...)

	root := document.Box(document.Style{Direction: document.Row, Align: "flex-start"}, side, main)
	return newTree(cv, ss, root)
}
