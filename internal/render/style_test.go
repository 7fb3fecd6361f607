package render

import (
	"testing"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBaseFontSize_Tiers(t *testing.T) {
	assert.Equal(t, 8.0, baseFontSize(types.FontSmall))
	assert.Equal(t, 9.5, baseFontSize(types.FontMedium))
	assert.Equal(t, 11.0, baseFontSize(types.FontLarge))
}

func TestBaseFontSize_UnknownFallsBackToMedium(t *testing.T) {
	assert.Equal(t, 9.5, baseFontSize(types.FontSize("enormous")))
}

func TestResolveStyle_DerivedSizes(t *testing.T) {
	opts := types.DefaultOptions()
	opts.FontSize = types.FontMedium

	ss := ResolveStyle(opts, TemplateProfessional)

	assert.Equal(t, 9.5, ss.Base)
	assert.InDelta(t, 9.5*2.2, ss.Name, 0.001)
	assert.Equal(t, 12.0, ss.SectionTitle)
	assert.Equal(t, 9.0, ss.Date)
}

func TestResolveStyle_SizesScaleWithTier(t *testing.T) {
	opts := types.DefaultOptions()
	opts.FontSize = types.FontLarge

	ss := ResolveStyle(opts, TemplateProfessional)

	assert.Equal(t, 11.0, ss.Base)
	assert.InDelta(t, 11.0*2.2, ss.Name, 0.001)
	assert.Equal(t, 13.5, ss.SectionTitle)
}

func TestResolveStyle_CarriesOptionColors(t *testing.T) {
	opts := types.DefaultOptions()
	opts.PrimaryColor = "#ff0000"

	ss := ResolveStyle(opts, TemplateHarvard)
	assert.Equal(t, "#ff0000", ss.Primary)
}

func TestResolveStyle_HarvardOverrides(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Padding = 40

	ss := ResolveStyle(opts, TemplateHarvard)

	assert.InDelta(t, 9.5*2.5, ss.Name, 0.001)
	assert.Equal(t, 80.0, ss.PagePadding.Top)
	assert.Equal(t, 40.0, ss.PagePadding.Bottom)
}

func TestResolveStyle_ModernIsBannerWithZeroPagePadding(t *testing.T) {
	ss := ResolveStyle(types.DefaultOptions(), TemplateModern)

	assert.Equal(t, HeaderBanner, ss.Header)
	assert.Equal(t, RuleFill, ss.Rule)
	assert.True(t, ss.PagePadding.IsZero())
}

func TestResolveStyle_MinimalDropsRuleAndTriplesPadding(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Padding = 40

	ss := ResolveStyle(opts, TemplateMinimal)

	assert.Equal(t, RuleNone, ss.Rule)
	assert.Equal(t, document.Uniform(120), ss.PagePadding)
	assert.Equal(t, 10.5, ss.SectionTitle)
}

func TestResolveStyle_UnknownTemplateGetsBaseRules(t *testing.T) {
	ss := ResolveStyle(types.DefaultOptions(), "nonexistent")

	assert.Equal(t, HeaderInline, ss.Header)
	assert.Equal(t, RuleUnderline, ss.Rule)
}
