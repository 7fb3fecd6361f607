package render

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCV returns a CV exercising every rendered section.
func sampleCV() *types.CV {
	return &types.CV{
		ID:       "cv-1",
		FullName: "Ana Gómez",
		Phone:    "+34 600 000 000",
		Email:    "ana@example.com",
		Location: "Madrid",
		LinkedIn: "linkedin.com/in/anagomez",
		GitHub:   "github.com/anagomez",
		Photo:    "https://example.com/photo.jpg",
		Summary:  "Backend engineer with a focus on data platforms.",
		Experience: []types.Experience{
			{ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2019-02-01", EndDate: "2021-06-01"},
			{ID: "e2", Company: "Globex", Position: "Senior Engineer", StartDate: "2021-07-01", Current: true},
		},
		Education: []types.Education{
			{ID: "ed1", Institution: "UCM", Degree: "BSc", Field: "Computer Science", StartDate: "2014-09-01", EndDate: "2018-06-01"},
		},
		Skills:    []string{"Go", "PostgreSQL", "Docker"},
		Languages: []types.Language{{ID: "l1", Language: "Español", Level: "Nativo"}},
	}
}

func collectText(tree *document.Tree) string {
	var b strings.Builder
	document.Walk(tree.Root, func(n *document.Node) bool {
		if n.Kind == document.KindText {
			b.WriteString(n.Text)
			b.WriteString("\n")
		}
		return true
	})
	return b.String()
}

func TestRender_Deterministic(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	for _, name := range Templates() {
		first := Render(cv, name, opts)
		second := Render(cv, name, opts)
		assert.Equal(t, first, second, "template %s", name)
	}
}

func TestRender_DoesNotMutateCV(t *testing.T) {
	cv := sampleCV()
	want := *sampleCV()

	for _, name := range Templates() {
		Render(cv, name, types.DefaultOptions())
	}
	assert.Equal(t, want, *cv)
}

func TestRender_AllSectionsPresentForFullCV(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	tags := []document.Section{
		document.SectionHeader,
		document.SectionPhoto,
		document.SectionSummary,
		document.SectionExperience,
		document.SectionEducation,
		document.SectionSkills,
		document.SectionLanguages,
	}

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		for _, tag := range tags {
			assert.NotNil(t, tree.FindSection(tag), "template %s missing %s", name, tag)
		}
	}
}

func TestRenderMinimal_HeaderCarriesPhoto(t *testing.T) {
	cv := sampleCV()
	tree := Render(cv, TemplateMinimal, types.DefaultOptions())

	photo := tree.FindSection(document.SectionPhoto)
	require.NotNil(t, photo)
	assert.Equal(t, document.KindImage, photo.Kind)
	assert.Equal(t, cv.Photo, photo.Src)

	// The photo sits inside the header row, not as a standalone section
	header := tree.FindSection(document.SectionHeader)
	require.NotNil(t, header)
	found := false
	document.Walk(header, func(n *document.Node) bool {
		if n.Tag == document.SectionPhoto {
			found = true
		}
		return true
	})
	assert.True(t, found)
}

func TestRender_HiddenPhotoProducesNoImageNode(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()
	opts.ShowPhoto = false

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		assert.Empty(t, tree.Images(), "template %s", name)
	}
}

func TestRender_EmptyPhotoProducesNoImageNode(t *testing.T) {
	cv := sampleCV()
	cv.Photo = ""

	for _, name := range Templates() {
		tree := Render(cv, name, types.DefaultOptions())
		assert.Empty(t, tree.Images(), "template %s", name)
	}
}

func TestRender_DisabledSummaryOmitted(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()
	opts.ShowSummary = false

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		assert.Nil(t, tree.FindSection(document.SectionSummary), "template %s", name)
	}
}

func TestRender_DisabledSkillsOmitted(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()
	opts.ShowSkills = false

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		assert.Nil(t, tree.FindSection(document.SectionSkills), "template %s", name)
	}
}

func TestRender_DisabledLanguagesOmitted(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()
	opts.ShowLanguages = false

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		assert.Nil(t, tree.FindSection(document.SectionLanguages), "template %s", name)
	}
}

func TestRender_EmptyListsOmitSections(t *testing.T) {
	cv := sampleCV()
	cv.Summary = ""
	cv.Experience = nil
	cv.Education = nil
	cv.Skills = nil
	cv.Languages = nil

	for _, name := range Templates() {
		tree := Render(cv, name, types.DefaultOptions())
		assert.Nil(t, tree.FindSection(document.SectionSummary), "template %s", name)
		assert.Nil(t, tree.FindSection(document.SectionExperience), "template %s", name)
		assert.Nil(t, tree.FindSection(document.SectionEducation), "template %s", name)
		assert.Nil(t, tree.FindSection(document.SectionSkills), "template %s", name)
		assert.Nil(t, tree.FindSection(document.SectionLanguages), "template %s", name)
		assert.NotNil(t, tree.FindSection(document.SectionHeader), "template %s", name)
	}
}

func TestRender_ModernBannerContent(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	tree := Render(cv, TemplateModern, opts)

	header := tree.FindSection(document.SectionHeader)
	require.NotNil(t, header)
	assert.Equal(t, opts.PrimaryColor, header.Style.Background)

	var headerText []string
	document.Walk(header, func(n *document.Node) bool {
		if n.Kind == document.KindText {
			headerText = append(headerText, n.Text)
		}
		return true
	})
	assert.Contains(t, headerText, "Ana Gómez")
	assert.Contains(t, headerText, "ana@example.com")
}

func TestRender_ModernUsesNumericDatesAndActual(t *testing.T) {
	text := collectText(Render(sampleCV(), TemplateModern, types.DefaultOptions()))

	assert.Contains(t, text, "7/2021 - Actual")
	assert.Contains(t, text, "2/2019 - 6/2021")
}

func TestRender_HarvardUsesLongDatesAndActualidad(t *testing.T) {
	text := collectText(Render(sampleCV(), TemplateHarvard, types.DefaultOptions()))

	assert.Contains(t, text, "jul 2021 - Actualidad")
	assert.Contains(t, text, "feb 2019 - jun 2021")
}

func TestRender_ProfessionalUsesAhora(t *testing.T) {
	text := collectText(Render(sampleCV(), TemplateProfessional, types.DefaultOptions()))
	assert.Contains(t, text, "7/2021 - Ahora")
}

func TestRender_DescendingPutsCurrentRoleFirst(t *testing.T) {
	tree := Render(sampleCV(), TemplateMinimal, types.DefaultOptions())
	text := collectText(tree)

	globex := strings.Index(text, "Globex")
	acme := strings.Index(text, "Acme")
	require.GreaterOrEqual(t, globex, 0)
	require.GreaterOrEqual(t, acme, 0)
	assert.Less(t, globex, acme)
}

func TestRender_AscendingReversesEntryOrder(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Layout = types.OrderAscending

	text := collectText(Render(sampleCV(), TemplateMinimal, opts))

	acme := strings.Index(text, "Acme")
	globex := strings.Index(text, "Globex")
	require.GreaterOrEqual(t, acme, 0)
	require.GreaterOrEqual(t, globex, 0)
	assert.Less(t, acme, globex)
}

func TestRender_TitleFromFullName(t *testing.T) {
	cv := sampleCV()
	cv.FullName = "José Luis García"

	tree := Render(cv, TemplateClassic, types.DefaultOptions())
	assert.Equal(t, "CV - José Luis García", tree.Title)
}

func TestRender_InstitutionLineIncludesField(t *testing.T) {
	text := collectText(Render(sampleCV(), TemplateClassic, types.DefaultOptions()))
	assert.Contains(t, text, "UCM - Computer Science")
}

func TestRender_SidebarSkillsLiveInSideColumn(t *testing.T) {
	tree := Render(sampleCV(), TemplateSidebar, types.DefaultOptions())

	skills := tree.FindSection(document.SectionSkills)
	require.NotNil(t, skills)

	var items []string
	document.Walk(skills, func(n *document.Node) bool {
		if n.Kind == document.KindText {
			items = append(items, n.Text)
		}
		return true
	})
	assert.Contains(t, items, "• Go")
}

func TestRender_RawTextCarriedUnescaped(t *testing.T) {
	cv := sampleCV()
	cv.Summary = `Shipped <b>fast</b> & "reliable" systems`

	tree := Render(cv, TemplateHarvard, types.DefaultOptions())
	text := collectText(tree)
	assert.Contains(t, text, `Shipped <b>fast</b> & "reliable" systems`)
}
