package render

import (
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// Renderer builds a document tree for one visual template. Renderers are
// pure: deterministic for identical inputs, no I/O, no mutation of the CV.
type Renderer func(cv *types.CV, opts types.Options) *document.Tree

// Template identifiers
const (
	TemplateHarvard      = "harvard"
	TemplateModern       = "modern"
	TemplateClassic      = "classic"
	TemplateCreative     = "creative"
	TemplateMinimal      = "minimal"
	TemplateProfessional = "professional"
	TemplateSidebar      = "sidebar"
	TemplateCompact      = "compact"
)

// DefaultTemplate is the fallback for unrecognized template identifiers.
const DefaultTemplate = TemplateHarvard

// layouts is the fixed dispatch table from template ID to renderer.
var layouts = map[string]Renderer{
	TemplateHarvard:      renderHarvard,
	TemplateModern:       renderModern,
	TemplateClassic:      renderClassic,
	TemplateCreative:     renderCreative,
	TemplateMinimal:      renderMinimal,
	TemplateProfessional: renderProfessional,
	TemplateSidebar:      renderSidebar,
	TemplateCompact:      renderCompact,
}

// Resolve returns the renderer for a template ID. Unknown identifiers
// resolve to the default template rather than erroring.
func Resolve(templateID string) Renderer {
	if r, ok := layouts[templateID]; ok {
		return r
	}
	return layouts[DefaultTemplate]
}

// Canonical returns the template ID that Resolve will actually use.
func Canonical(templateID string) string {
	if _, ok := layouts[templateID]; ok {
		return templateID
	}
	return DefaultTemplate
}

// Templates lists the known template identifiers.
func Templates() []string {
	return []string{
		TemplateHarvard,
		TemplateModern,
		TemplateClassic,
		TemplateCreative,
		TemplateMinimal,
		TemplateProfessional,
		TemplateSidebar,
		TemplateCompact,
	}
}

// Render resolves the CV's selected template (or the explicit override) and
// produces its document tree using fully-resolved options.
func Render(cv *types.CV, templateID string, opts types.Options) *document.Tree {
	return Resolve(templateID)(cv, opts)
}
