package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// docTitle derives the document title from the candidate's name.
func docTitle(cv *types.CV) string {
	return "CV - " + cv.FullName
}

// pageStyle builds the page-level style from the resolved sheet.
func pageStyle(ss StyleSheet) document.Style {
	return document.Style{
		FontSize:   ss.Base,
		Color:      ss.Text,
		Background: "#ffffff",
		Padding:    ss.PagePadding,
		Margin:     document.Uniform(ss.Margin),
	}
}

// newTree wraps a root node into a titled tree.
func newTree(cv *types.CV, ss StyleSheet, root *document.Node) *document.Tree {
	return &document.Tree{
		Title: docTitle(cv),
		Page:  pageStyle(ss),
		Root:  root,
	}
}

// sectionTitleNode renders a section heading decorated per the sheet's rule.
func sectionTitleNode(ss StyleSheet, text string) *document.Node {
	style := document.Style{
		FontSize:      ss.SectionTitle,
		Bold:          true,
		Color:         ss.Primary,
		Uppercase:     true,
		LetterSpacing: 1,
		Margin:        document.Insets{Bottom: 8},
	}

	switch ss.Rule {
	case RuleUnderline:
		style.Padding = document.Insets{Bottom: 4}
		style.BorderBottom = document.Border{Width: 1.5, Color: ss.Primary}
	case RuleFill:
		style.Background = "rgba(0,0,0,0.03)"
		style.Padding = document.Uniform(8)
		style.Margin = document.Insets{Bottom: 10}
	case RuleNone:
		style.Margin = document.Insets{Bottom: 12}
	}

	return document.Text(text, style)
}

// section builds a titled section box. Callers are expected to skip empty
// sections entirely; see sectionIfNonEmpty.
func section(ss StyleSheet, tag document.Section, title string, children ...*document.Node) *document.Node {
	content := document.Box(document.Style{Direction: document.Column, Gap: 10}, children...)
	return document.Box(
		document.Style{Margin: document.Insets{Top: 12}},
		sectionTitleNode(ss, title),
		content,
	).Tagged(tag)
}

// sectionIfNonEmpty builds a titled section, or returns nil when there is no
// content. Empty sections are omitted from the tree, never rendered as bare
// headers.
func sectionIfNonEmpty(ss StyleSheet, tag document.Section, title string, children []*document.Node) *document.Node {
	if len(children) == 0 {
		return nil
	}
	return section(ss, tag, title, children...)
}

// add appends non-nil nodes to a child list.
func add(children []*document.Node, nodes ...*document.Node) []*document.Node {
	for _, n := range nodes {
		if n != nil {
			children = append(children, n)
		}
	}
	return children
}

// nonEmpty filters out empty strings, preserving order.
func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// contactRow renders a wrapping row of short contact items.
func contactRow(ss StyleSheet, items []string, justify string) *document.Node {
	if len(items) == 0 {
		return nil
	}
	children := make([]*document.Node, 0, len(items))
	for _, item := range items {
		children = append(children, document.Text(item, document.Style{
			FontSize: ss.Date,
			Color:    ss.Muted,
		}))
	}
	return document.Box(document.Style{
		Direction: document.Row,
		Wrap:      true,
		Gap:       10,
		Justify:   justify,
		Margin:    document.Insets{Top: 6},
	}, children...)
}

// entryContainer wraps one experience/education entry.
func entryContainer(children ...*document.Node) *document.Node {
	return document.Box(document.Style{Margin: document.Insets{Bottom: 8}}, children...)
}

// entryHeader places a left-hand block and a right-aligned date on one row.
func entryHeader(left, right *document.Node) *document.Node {
	return document.Box(document.Style{
		Direction: document.Row,
		Justify:   "space-between",
		Align:     "flex-start",
		Margin:    document.Insets{Bottom: 2},
	}, left, right)
}

// dateText renders a date range in the sheet's small italic date style.
func dateText(ss StyleSheet, text string) *document.Node {
	return document.Text(text, document.Style{
		FontSize: ss.Date,
		Italic:   true,
		Color:    ss.Light,
	})
}

// descriptionText renders an entry description paragraph.
func descriptionText(ss StyleSheet, text string) *document.Node {
	return document.Text(text, document.Style{
		Color:      ss.Body,
		LineHeight: 1.4,
		TextAlign:  "justify",
		Margin:     document.Insets{Top: 4},
	})
}

// summaryText renders the profile summary paragraph.
func summaryText(ss StyleSheet, text string) *document.Node {
	return document.Text(text, document.Style{
		Color:      ss.Body,
		LineHeight: 1.5,
		TextAlign:  "justify",
	})
}

// defaultChipStyle is the shared skill-chip look; layouts override colors
// for tinted or outlined variants.
func defaultChipStyle(ss StyleSheet) document.Style {
	return document.Style{
		FontSize:     ss.Chip,
		Color:        ss.ChipText,
		Background:   ss.ChipBackground,
		Padding:      document.Insets{Top: 4, Right: 10, Bottom: 4, Left: 10},
		BorderRadius: 4,
	}
}

// skillChipRow renders the skills list as a wrapping row of chips.
func skillChipRow(skills []string, chip document.Style) *document.Node {
	children := make([]*document.Node, 0, len(skills))
	for _, skill := range skills {
		children = append(children, document.Text(skill, chip))
	}
	return document.Box(document.Style{
		Direction: document.Row,
		Wrap:      true,
		Gap:       6,
	}, children...)
}

// languageRows renders one name/level row per language.
func languageRows(ss StyleSheet, languages []types.Language) []*document.Node {
	rows := make([]*document.Node, 0, len(languages))
	for _, lang := range languages {
		rows = append(rows, document.Box(
			document.Style{Direction: document.Row, Justify: "space-between"},
			document.Text(lang.Language, document.Style{}),
			document.Text(lang.Level, document.Style{FontSize: ss.Date, Color: ss.Light}),
		))
	}
	return rows
}

// photoNode returns an image node for the candidate photo, or nil when the
// photo is hidden or absent. Layouts position the result themselves; a nil
// photo must not shift anything.
func photoNode(cv *types.CV, opts types.Options, style document.Style) *document.Node {
	if !opts.ShowPhoto || cv.Photo == "" {
		return nil
	}
	return document.Image(cv.Photo, style).Tagged(document.SectionPhoto)
}

// summarySection builds the summary section when enabled and non-empty.
func summarySection(cv *types.CV, opts types.Options, ss StyleSheet, title string) *document.Node {
	if !opts.ShowSummary || cv.Summary == "" {
		return nil
	}
	return section(ss, document.SectionSummary, title, summaryText(ss, cv.Summary))
}

// skillsSection builds the skills section when enabled and non-empty.
func skillsSection(cv *types.CV, opts types.Options, ss StyleSheet, title string, chip document.Style) *document.Node {
	if !opts.ShowSkills || len(cv.Skills) == 0 {
		return nil
	}
	return section(ss, document.SectionSkills, title, skillChipRow(cv.Skills, chip))
}

// languagesSection builds the languages section when enabled and non-empty.
func languagesSection(cv *types.CV, opts types.Options, ss StyleSheet, title string) *document.Node {
	if !opts.ShowLanguages || len(cv.Languages) == 0 {
		return nil
	}
	return sectionIfNonEmpty(ss, document.SectionLanguages, title, languageRows(ss, cv.Languages))
}

// experienceSection orders and renders work history with a per-layout entry
// builder. Returns nil when the list is empty.
func experienceSection(cv *types.CV, opts types.Options, ss StyleSheet, title string, build func(types.Experience) *document.Node) *document.Node {
	if len(cv.Experience) == 0 {
		return nil
	}
	entries := SortExperience(cv.Experience, opts.Layout)
	children := make([]*document.Node, 0, len(entries))
	for _, exp := range entries {
		children = append(children, build(exp))
	}
	return section(ss, document.SectionExperience, title, children...)
}

// educationSection orders and renders education with a per-layout entry
// builder. Returns nil when the list is empty.
func educationSection(cv *types.CV, opts types.Options, ss StyleSheet, title string, build func(types.Education) *document.Node) *document.Node {
	if len(cv.Education) == 0 {
		return nil
	}
	entries := SortEducation(cv.Education, opts.Layout)
	children := make([]*document.Node, 0, len(entries))
	for _, edu := range entries {
		children = append(children, build(edu))
	}
	return section(ss, document.SectionEducation, title, children...)
}

// institutionLine joins an institution with an optional field of study.
func institutionLine(edu types.Education) string {
	if edu.Field != "" {
		return edu.Institution + " - " + edu.Field
	}
	return edu.Institution
}
