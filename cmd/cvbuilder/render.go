package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/assemble"
	"github.com/jonathan/cv-builder/internal/db"
	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
	"github.com/spf13/cobra"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a single CV to PDF",
	Long: `Renders one CV to a PDF file, either from a JSON document on disk
(--file) or from the database by ID (--id, requires DATABASE_URL).`,
	RunE: renderCmd,
}

var (
	renderFile        string
	renderID          string
	renderTemplate    string
	renderOut         string
	renderDatabaseURL string
	renderHTML        bool
)

func init() {
	renderCommand.Flags().StringVarP(&renderFile, "file", "f", "", "Path to a CV JSON document (mutually exclusive with --id)")
	renderCommand.Flags().StringVar(&renderID, "id", "", "CV ID to load from the database (mutually exclusive with --file)")
	renderCommand.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template override (harvard, modern, classic, creative, minimal, professional, sidebar, compact)")
	renderCommand.Flags().StringVarP(&renderOut, "out", "o", "", "Output path (defaults to CV-<name>.pdf)")
	renderCommand.Flags().StringVar(&renderDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	renderCommand.Flags().BoolVar(&renderHTML, "html", false, "Write the intermediate HTML page instead of printing to PDF")

	rootCmd.AddCommand(renderCommand)
}

func renderCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cv, err := loadRenderInput(ctx)
	if err != nil {
		return err
	}

	templateID := cv.SelectedTemplate
	if renderTemplate != "" {
		templateID = renderTemplate
	}

	validation.NormalizeSettings(&cv.TemplateSettings)
	tree := render.Render(cv, templateID, cv.TemplateSettings.Options())
	assembler := assemble.New(nil)

	out := renderOut
	if out == "" {
		out = defaultOutputName(cv.FullName, renderHTML)
	}

	if renderHTML {
		html, err := assembler.AssembleHTML(ctx, tree)
		if err != nil {
			return fmt.Errorf("failed to assemble html: %w", err)
		}
		if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
	} else {
		pdf, err := assembler.Assemble(ctx, tree)
		if err != nil {
			return fmt.Errorf("failed to render pdf: %w", err)
		}
		if err := os.WriteFile(out, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
	}

	fmt.Printf("Rendered %s (%s) to %s\n", cv.FullName, render.Canonical(templateID), out)
	return nil
}

// loadRenderInput resolves the CV from --file or --id.
func loadRenderInput(ctx context.Context) (*types.CV, error) {
	switch {
	case renderFile != "" && renderID != "":
		return nil, fmt.Errorf("--file and --id are mutually exclusive")

	case renderFile != "":
		data, err := os.ReadFile(renderFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", renderFile, err)
		}
		var cv types.CV
		if err := json.Unmarshal(data, &cv); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", renderFile, err)
		}
		if err := validation.ValidateCV(&cv); err != nil {
			return nil, err
		}
		return &cv, nil

	case renderID != "":
		id, err := uuid.Parse(renderID)
		if err != nil {
			return nil, fmt.Errorf("invalid cv id %q", renderID)
		}

		databaseURL := renderDatabaseURL
		if databaseURL == "" {
			databaseURL = os.Getenv("DATABASE_URL")
		}
		if databaseURL == "" {
			return nil, fmt.Errorf("--id requires --db-url or DATABASE_URL")
		}

		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		rec, err := database.GetCV(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("cv not found: %s", id)
		}
		return &rec.CV, nil

	default:
		return nil, fmt.Errorf("either --file or --id is required")
	}
}

// defaultOutputName builds CV-<name>.pdf (or .html) from the candidate name.
func defaultOutputName(fullName string, html bool) string {
	ext := ".pdf"
	if html {
		ext = ".html"
	}
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "CV" + ext
	}
	return "CV-" + strings.Join(parts, "-") + ext
}
