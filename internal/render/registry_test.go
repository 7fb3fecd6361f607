package render

import (
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownTemplate(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	got := Resolve(TemplateModern)(cv, opts)
	want := renderModern(cv, opts)
	assert.Equal(t, want, got)
}

func TestResolve_UnknownFallsBackToDefault(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	got := Resolve("no-such-template")(cv, opts)
	want := Resolve(DefaultTemplate)(cv, opts)
	assert.Equal(t, want, got)
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, TemplateSidebar, Canonical(TemplateSidebar))
	assert.Equal(t, DefaultTemplate, Canonical(""))
	assert.Equal(t, DefaultTemplate, Canonical("no-such-template"))
}

func TestTemplates_CoversRegistry(t *testing.T) {
	names := Templates()
	require.Len(t, names, len(layouts))
	for _, name := range names {
		assert.Contains(t, layouts, name)
	}
}

func TestRender_AllTemplatesProduceATree(t *testing.T) {
	cv := sampleCV()
	opts := types.DefaultOptions()

	for _, name := range Templates() {
		tree := Render(cv, name, opts)
		require.NotNil(t, tree, "template %s", name)
		require.NotNil(t, tree.Root, "template %s", name)
		assert.Equal(t, "CV - Ana Gómez", tree.Title, "template %s", name)
	}
}
