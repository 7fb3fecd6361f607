package assemble

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/jonathan/cv-builder/internal/document"
)

// SerializeHTML renders a document tree as a standalone HTML page with all
// styles inlined. Text content is escaped here; the tree carries it raw.
func SerializeHTML(tree *document.Tree) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(tree.Title) + "</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("* { box-sizing: border-box; margin: 0; padding: 0; }\n")
	b.WriteString("body { font-family: Helvetica, Arial, sans-serif; -webkit-print-color-adjust: exact; print-color-adjust: exact; }\n")
	b.WriteString("@page { size: A4; margin: 0; }\n")
	b.WriteString("img { object-fit: cover; }\n")
	b.WriteString("</style>\n</head>\n")

	b.WriteString(`<body style="` + styleAttr(pageCSS(tree.Page)) + `">` + "\n")
	writeNode(&b, tree.Root)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeNode emits one node and its children.
func writeNode(b *strings.Builder, n *document.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case document.KindText:
		b.WriteString(`<div style="` + styleAttr(nodeCSS(n.Style)) + `">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</div>\n")
	case document.KindImage:
		b.WriteString(`<img src="` + html.EscapeString(n.Src) + `" style="` + styleAttr(nodeCSS(n.Style)) + `">` + "\n")
	default:
		decls := nodeCSS(n.Style)
		// Anchor absolutely-positioned children (photo overlays) to this box
		for _, child := range n.Children {
			if child != nil && child.Style.Absolute {
				decls = append(decls, "position: relative")
				break
			}
		}
		b.WriteString(`<div style="` + styleAttr(decls) + `">` + "\n")
		for _, child := range n.Children {
			writeNode(b, child)
		}
		b.WriteString("</div>\n")
	}
}

// styleAttr joins CSS declarations into an attribute value.
func styleAttr(decls []string) string {
	return html.EscapeString(strings.Join(decls, "; "))
}

// pageCSS builds the body-level declarations. The page margin becomes body
// margin so content keeps clear of the sheet edge.
func pageCSS(s document.Style) []string {
	decls := []string{
		"font-size: " + pt(s.FontSize),
	}
	if s.Color != "" {
		decls = append(decls, "color: "+s.Color)
	}
	if s.Background != "" {
		decls = append(decls, "background-color: "+s.Background)
	}
	if !s.Padding.IsZero() {
		decls = append(decls, "padding: "+insetsPt(s.Padding))
	}
	if !s.Margin.IsZero() {
		decls = append(decls, "margin: "+insetsPt(s.Margin))
	}
	return decls
}

// nodeCSS converts a node style to CSS declarations, emitting only what is
// set. Boxes are flex containers; text nodes get the typography rules.
func nodeCSS(s document.Style) []string {
	var decls []string

	if s.FontSize > 0 {
		decls = append(decls, "font-size: "+pt(s.FontSize))
	}
	if s.Bold {
		decls = append(decls, "font-weight: bold")
	}
	if s.Italic {
		decls = append(decls, "font-style: italic")
	}
	if s.Color != "" {
		decls = append(decls, "color: "+s.Color)
	}
	if s.Background != "" {
		decls = append(decls, "background-color: "+s.Background)
	}
	if s.LineHeight > 0 {
		decls = append(decls, "line-height: "+num(s.LineHeight))
	}
	if s.LetterSpacing > 0 {
		decls = append(decls, "letter-spacing: "+pt(s.LetterSpacing))
	}
	if s.Uppercase {
		decls = append(decls, "text-transform: uppercase")
	}
	if s.TextAlign != "" {
		decls = append(decls, "text-align: "+s.TextAlign)
	}

	if s.Direction != "" || s.Wrap || s.Justify != "" || s.Align != "" || s.Gap > 0 {
		decls = append(decls, "display: flex")
		dir := s.Direction
		if dir == "" {
			dir = document.Column
		}
		decls = append(decls, "flex-direction: "+string(dir))
		if s.Wrap {
			decls = append(decls, "flex-wrap: wrap")
		}
		if s.Justify != "" {
			decls = append(decls, "justify-content: "+s.Justify)
		}
		if s.Align != "" {
			decls = append(decls, "align-items: "+s.Align)
		}
		if s.Gap > 0 {
			decls = append(decls, "gap: "+pt(s.Gap))
		}
	}
	if s.Grow {
		decls = append(decls, "flex-grow: 1")
	}

	if !s.Padding.IsZero() {
		decls = append(decls, "padding: "+insetsPt(s.Padding))
	}
	if !s.Margin.IsZero() {
		decls = append(decls, "margin: "+insetsPt(s.Margin))
	}
	if s.Border.Width > 0 {
		decls = append(decls, "border: "+borderCSS(s.Border))
	}
	if s.BorderBottom.Width > 0 {
		decls = append(decls, "border-bottom: "+borderCSS(s.BorderBottom))
	}
	if s.BorderLeft.Width > 0 {
		decls = append(decls, "border-left: "+borderCSS(s.BorderLeft))
	}
	if s.BorderRadius > 0 {
		decls = append(decls, "border-radius: "+pt(s.BorderRadius))
	}

	if s.Width > 0 {
		decls = append(decls, "width: "+pt(s.Width), "flex-shrink: 0")
	}
	if s.Height > 0 {
		decls = append(decls, "height: "+pt(s.Height))
	}

	if s.Absolute {
		decls = append(decls, "position: absolute", "top: "+pt(s.Top), "right: "+pt(s.Right))
	}

	return decls
}

func borderCSS(b document.Border) string {
	return fmt.Sprintf("%s solid %s", pt(b.Width), b.Color)
}

// insetsPt emits a four-value shorthand (top right bottom left).
func insetsPt(i document.Insets) string {
	return fmt.Sprintf("%s %s %s %s", pt(i.Top), pt(i.Right), pt(i.Bottom), pt(i.Left))
}

// pt formats a point value, dropping trailing zeros.
func pt(v float64) string {
	return num(v) + "pt"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
