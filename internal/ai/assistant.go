package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

// Assistant exposes the CV writing operations on top of a Client.
type Assistant struct {
	client Client
}

// NewAssistant wraps an LLM client.
func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// ImproveText rewrites a piece of CV prose (summary or experience
// description) into tighter professional Spanish, preserving all facts.
func (a *Assistant) ImproveText(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("text to improve is empty")
	}

	prompt := fmt.Sprintf(`Eres un asesor profesional de currículums.
Mejora el siguiente texto de un CV: corrige gramática y ortografía, usa un tono profesional
y hazlo más conciso sin inventar datos nuevos. Responde únicamente con el texto mejorado,
sin comillas ni explicaciones. Mantén el idioma original del texto.

Texto:
%s`, text)

	improved, err := a.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to improve text: %w", err)
	}
	return strings.TrimSpace(improved), nil
}

// GenerateSummary drafts a professional profile paragraph from the CV's
// experience, education, and skills.
func (a *Assistant) GenerateSummary(ctx context.Context, cv *types.CV) (string, error) {
	var sb strings.Builder
	for _, exp := range cv.Experience {
		fmt.Fprintf(&sb, "- %s en %s (desde %s", exp.Position, exp.Company, exp.StartDate)
		if exp.Current {
			sb.WriteString(", actual")
		} else if exp.EndDate != "" {
			fmt.Fprintf(&sb, " hasta %s", exp.EndDate)
		}
		sb.WriteString(")\n")
	}
	for _, edu := range cv.Education {
		fmt.Fprintf(&sb, "- %s, %s\n", edu.Degree, edu.Institution)
	}
	if len(cv.Skills) > 0 {
		fmt.Fprintf(&sb, "Habilidades: %s\n", strings.Join(cv.Skills, ", "))
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("cv has no experience, education, or skills to summarize")
	}

	prompt := fmt.Sprintf(`Eres un asesor profesional de currículums.
Redacta un perfil profesional breve (3-4 frases, primera persona implícita, sin el nombre
del candidato) para un CV en español, basado solo en estos datos. No inventes logros.
Responde únicamente con el párrafo.

Datos del candidato:
%s`, sb.String())

	summary, err := a.client.GenerateContent(ctx, prompt, TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return strings.TrimSpace(summary), nil
}
