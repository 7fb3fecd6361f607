package assemble

import (
	"context"
	"net/http"

	"github.com/jonathan/cv-builder/internal/document"
)

// Assembler produces PDF documents from rendered trees.
type Assembler struct {
	client *http.Client
}

// New creates an Assembler. A nil client uses http.DefaultClient.
func New(client *http.Client) *Assembler {
	if client == nil {
		client = http.DefaultClient
	}
	return &Assembler{client: client}
}

// Assemble embeds the tree's remote assets, serializes it to HTML, and prints
// the result to PDF. The tree is modified in place (image sources become data
// URIs); callers rendering fresh trees per request are unaffected.
func (a *Assembler) Assemble(ctx context.Context, tree *document.Tree) ([]byte, error) {
	if err := a.embedImages(ctx, tree); err != nil {
		return nil, err
	}
	return printHTMLToPDF(ctx, SerializeHTML(tree))
}

// AssembleHTML embeds assets and returns the standalone HTML page without
// printing. Used by the preview endpoint.
func (a *Assembler) AssembleHTML(ctx context.Context, tree *document.Tree) (string, error) {
	if err := a.embedImages(ctx, tree); err != nil {
		return "", err
	}
	return SerializeHTML(tree), nil
}
