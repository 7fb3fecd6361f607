package assemble

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func testCV() *types.CV {
	return &types.CV{
		FullName: "Ana Gómez",
		Email:    "ana@example.com",
		Phone:    "+34 600 000 000",
		Summary:  "Backend engineer.",
		Experience: []types.Experience{
			{ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2019-02-01", Current: true},
		},
		Skills: []string{"Go"},
	}
}

func TestSerializeHTML_Title(t *testing.T) {
	tree := render.Render(testCV(), render.TemplateHarvard, types.DefaultOptions())
	doc := parseHTML(t, SerializeHTML(tree))
	assert.Equal(t, "CV - Ana Gómez", doc.Find("title").Text())
}

func TestSerializeHTML_EscapesTextContent(t *testing.T) {
	cv := testCV()
	cv.Summary = `<script>alert("x")</script> & more`

	tree := render.Render(cv, render.TemplateHarvard, types.DefaultOptions())
	page := SerializeHTML(tree)

	assert.NotContains(t, page, `<script>alert`)
	assert.Contains(t, page, "&lt;script&gt;")

	doc := parseHTML(t, page)
	assert.Equal(t, 0, doc.Find("script").Length())
	assert.Contains(t, doc.Text(), `<script>alert("x")</script> & more`)
}

func TestSerializeHTML_EscapesTitle(t *testing.T) {
	cv := testCV()
	cv.FullName = `Ana <b>Gómez</b>`

	tree := render.Render(cv, render.TemplateHarvard, types.DefaultOptions())
	doc := parseHTML(t, SerializeHTML(tree))
	assert.Equal(t, 0, doc.Find("title b").Length())
}

func TestSerializeHTML_BodyCarriesPageStyle(t *testing.T) {
	tree := render.Render(testCV(), render.TemplateHarvard, types.DefaultOptions())
	doc := parseHTML(t, SerializeHTML(tree))

	style, ok := doc.Find("body").Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "font-size: 9.5pt")
	assert.Contains(t, style, "background-color: #ffffff")
	// Harvard doubles the top padding
	assert.Contains(t, style, "padding: 80pt 80pt 40pt 80pt")
}

func TestSerializeHTML_ImageNode(t *testing.T) {
	tree := &document.Tree{
		Title: "CV - x",
		Root: document.Box(document.Style{},
			document.Image("data:image/png;base64,AAAA", document.Style{Width: 65, Height: 65, BorderRadius: 32}),
		),
	}

	doc := parseHTML(t, SerializeHTML(tree))
	img := doc.Find("img")
	require.Equal(t, 1, img.Length())

	src, _ := img.Attr("src")
	assert.Equal(t, "data:image/png;base64,AAAA", src)

	style, _ := img.Attr("style")
	assert.Contains(t, style, "width: 65pt")
	assert.Contains(t, style, "border-radius: 32pt")
}

func TestSerializeHTML_FlexBox(t *testing.T) {
	tree := &document.Tree{
		Title: "CV - x",
		Root: document.Box(document.Style{
			Direction: document.Row,
			Wrap:      true,
			Justify:   "space-between",
			Gap:       10,
		}),
	}

	doc := parseHTML(t, SerializeHTML(tree))
	style, ok := doc.Find("body > div").Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "display: flex")
	assert.Contains(t, style, "flex-direction: row")
	assert.Contains(t, style, "flex-wrap: wrap")
	assert.Contains(t, style, "justify-content: space-between")
	assert.Contains(t, style, "gap: 10pt")
}

func TestSerializeHTML_AbsoluteChildAnchorsParent(t *testing.T) {
	tree := &document.Tree{
		Title: "CV - x",
		Root: document.Box(document.Style{},
			document.Image("data:image/png;base64,AAAA", document.Style{Absolute: true, Top: 15, Right: 20}),
		),
	}

	doc := parseHTML(t, SerializeHTML(tree))

	parentStyle, _ := doc.Find("body > div").Attr("style")
	assert.Contains(t, parentStyle, "position: relative")

	imgStyle, _ := doc.Find("img").Attr("style")
	assert.Contains(t, imgStyle, "position: absolute")
	assert.Contains(t, imgStyle, "top: 15pt")
	assert.Contains(t, imgStyle, "right: 20pt")
}

func TestSerializeHTML_OmitsUnsetProperties(t *testing.T) {
	tree := &document.Tree{
		Title: "CV - x",
		Root:  document.Box(document.Style{}, document.Text("hello", document.Style{})),
	}

	page := SerializeHTML(tree)
	assert.NotContains(t, page, "font-weight")
	assert.NotContains(t, page, "border:")
	assert.NotContains(t, page, "width:")
}

func TestSerializeHTML_BorderShorthand(t *testing.T) {
	tree := &document.Tree{
		Title: "CV - x",
		Root: document.Box(document.Style{},
			document.Text("Título", document.Style{
				BorderBottom: document.Border{Width: 1.5, Color: "#1e3a5f"},
			}),
		),
	}

	doc := parseHTML(t, SerializeHTML(tree))
	style, _ := doc.Find("body > div > div").Attr("style")
	assert.Contains(t, style, "border-bottom: 1.5pt solid #1e3a5f")
}

func TestSerializeHTML_A4PageRule(t *testing.T) {
	tree := render.Render(testCV(), render.TemplateHarvard, types.DefaultOptions())
	page := SerializeHTML(tree)
	assert.Contains(t, page, "@page { size: A4; margin: 0; }")
}
