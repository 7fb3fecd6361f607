package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-builder/internal/assemble"
	"github.com/jonathan/cv-builder/internal/db"
	"github.com/jonathan/cv-builder/internal/render"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Batch-render stored CVs to PDF files",
	Long: `Renders every stored CV matching the filters to a PDF file in the
output directory. Rendering runs concurrently; each Chrome print is
independent.`,
	RunE: exportCmd,
}

var (
	exportOutDir      string
	exportStatus      string
	exportLimit       int
	exportConcurrency int
	exportDatabaseURL string
)

func init() {
	exportCommand.Flags().StringVarP(&exportOutDir, "out-dir", "o", "export", "Directory to write PDFs into")
	exportCommand.Flags().StringVar(&exportStatus, "status", "", "Only export CVs with this status (pending, reviewed, completed)")
	exportCommand.Flags().IntVar(&exportLimit, "limit", 200, "Maximum number of CVs to export")
	exportCommand.Flags().IntVar(&exportConcurrency, "concurrency", 2, "Concurrent renders (each starts a Chrome process)")
	exportCommand.Flags().StringVar(&exportDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(exportCommand)
}

func exportCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := exportDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("export requires --db-url or DATABASE_URL")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutDir, err)
	}

	summaries, err := database.ListCVs(ctx, db.CVFilters{
		Status: types.CVStatus(exportStatus),
		Limit:  exportLimit,
	})
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No CVs match the filters, nothing to export")
		return nil
	}

	assembler := assemble.New(nil)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for _, summary := range summaries {
		g.Go(func() error {
			rec, err := database.GetCV(gctx, summary.ID)
			if err != nil {
				return err
			}
			if rec == nil {
				return nil // deleted since listing
			}

			cv := rec.CV
			tree := render.Render(&cv, cv.SelectedTemplate, cv.TemplateSettings.Options())
			pdf, err := assembler.Assemble(gctx, tree)
			if err != nil {
				return fmt.Errorf("failed to render cv %s: %w", rec.ID, err)
			}

			out := filepath.Join(exportOutDir, exportFilename(cv.FullName, rec.ID.String()))
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			log.Printf("Exported %s -> %s", rec.ID, out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Exported %d CVs to %s\n", len(summaries), exportOutDir)
	return nil
}

// exportFilename appends the record ID so two candidates with the same name
// never overwrite each other.
func exportFilename(fullName, id string) string {
	parts := strings.Fields(fullName)
	short := id
	if len(id) > 8 {
		short = id[:8]
	}
	if len(parts) == 0 {
		return "CV-" + short + ".pdf"
	}
	return "CV-" + strings.Join(parts, "-") + "-" + short + ".pdf"
}
