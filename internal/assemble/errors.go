// Package assemble turns document trees into finished PDF bytes. It embeds
// remote assets, serializes the tree to styled HTML, and prints the result
// through a headless browser.
package assemble

import "fmt"

// AssetFetchError represents a failure to fetch or decode a remote asset
// referenced by the document, such as the candidate photo.
type AssetFetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *AssetFetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("asset fetch error: %s (%s): %v", e.Message, e.URL, e.Cause)
	}
	return fmt.Sprintf("asset fetch error: %s (%s)", e.Message, e.URL)
}

func (e *AssetFetchError) Unwrap() error {
	return e.Cause
}

// PrintError represents a failure in the headless browser print step.
type PrintError struct {
	Message string
	Cause   error
}

func (e *PrintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print error: %s", e.Message)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}
