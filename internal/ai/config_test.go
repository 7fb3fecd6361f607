package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.Models[TierLite])
	assert.NotEmpty(t, cfg.Models[TierStandard])
}

func TestGetModel_ConfiguredTier(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "model-a", TierStandard: "model-b"}}
	assert.Equal(t, "model-a", cfg.GetModel(TierLite))
	assert.Equal(t, "model-b", cfg.GetModel(TierStandard))
}

func TestGetModel_FallbackChain(t *testing.T) {
	standardOnly := &Config{Models: map[ModelTier]string{TierStandard: "model-b"}}
	assert.Equal(t, "model-b", standardOnly.GetModel(TierLite))

	liteOnly := &Config{Models: map[ModelTier]string{TierLite: "model-a"}}
	assert.Equal(t, "model-a", liteOnly.GetModel(TierStandard))

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}
