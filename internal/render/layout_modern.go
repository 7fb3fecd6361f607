package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// renderModern places the header in a full-width colored banner and uses
// filled section titles instead of rules. The page itself has no padding;
// the banner and body carry their own.
func renderModern(cv *types.CV, opts types.Options) *document.Tree {
	ss := ResolveStyle(opts, TemplateModern)
	const present = "Actual"

	light := "rgba(255,255,255,0.9)"

	bannerItems := nonEmpty(cv.Email, cv.Phone, cv.LinkedIn)
	contactChildren := make([]*document.Node, 0, len(bannerItems))
	for _, item := range bannerItems {
		contactChildren = append(contactChildren, document.Text(item, document.Style{
			FontSize: ss.Date,
			Color:    light,
		}))
	}

	bannerChildren := add(nil, document.Text(cv.FullName, document.Style{
		FontSize: ss.Name,
		Bold:     true,
		Color:    "#ffffff",
		Margin:   document.Insets{Bottom: 4},
	}))
	if cv.Location != "" {
		bannerChildren = add(bannerChildren, document.Text(cv.Location, document.Style{
			FontSize: ss.Subtitle,
			Color:    light,
		}))
	}
	bannerChildren = add(bannerChildren, document.Box(document.Style{
		Direction: document.Row,
		Wrap:      true,
		Gap:       12,
		Margin:    document.Insets{Top: 6},
	}, contactChildren...))

	headerContent := bannerChildren
	if photo := photoNode(cv, opts, document.Style{Width: 65, Height: 65, BorderRadius: 32}); photo != nil {
		headerContent = []*document.Node{
			document.Box(document.Style{Direction: document.Row, Justify: "space-between", Align: "flex-start"},
				document.Box(document.Style{Grow: true}, bannerChildren...),
				photo,
			),
		}
	}

	header := document.Box(document.Style{
		Background: ss.Primary,
		Padding:    document.Uniform(opts.Padding),
	}, headerContent...).Tagged(document.SectionHeader)

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

	body := add(nil,
		summarySection(cv, opts, ss, "Perfil Profesional"),
		experienceSection(cv, opts, ss, "Experiencia Laboral", expEntry),
		educationSection(cv, opts, ss, "Educación", eduEntry),
		skillsSection(cv, opts, ss, "Habilidades", defaultChipStyle(ss)),
		languagesSection(cv, opts, ss, "Idiomas"),
	)

	root := document.Box(document.Style{Direction: document.Column},
		header,
		document.Box(document.Style{Padding: document.Uniform(opts.Padding)}, body...),
	)

	return newTree(cv, ss, root)
}
