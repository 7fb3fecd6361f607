package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-builder/internal/types"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New()

// hexColorPattern accepts #rgb and #rrggbb.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateCV checks an incoming CV document against the intake rules.
// Returns a *Error naming the first offending field.
func ValidateCV(cv *types.CV) error {
	if err := validate.Struct(cv); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &Error{
				Field:   fe.Namespace(),
				Message: "failed rule '" + fe.Tag() + "'",
				Cause:   err,
			}
		}
		return &Error{Message: "invalid cv document", Cause: err}
	}
	return nil
}

// SanitizeHexColor returns the color lowercased when it is a valid #rgb or
// #rrggbb value, or "" otherwise. Invalid colors are dropped rather than
// rejected so a bad picker value never blocks an intake.
func SanitizeHexColor(color string) string {
	color = strings.TrimSpace(color)
	if !hexColorPattern.MatchString(color) {
		return ""
	}
	return strings.ToLower(color)
}

// Spacing bounds for user-supplied padding and margin, in points.
const (
	maxPadding = 100
	maxMargin  = 100
)

// NormalizeSettings sanitizes user-controlled template settings in place:
// the primary color must be a hex color and spacing values must be within
// bounds. Out-of-range values reset to zero so the render defaults apply.
func NormalizeSettings(s *types.TemplateSettings) {
	s.PrimaryColor = SanitizeHexColor(s.PrimaryColor)

	if s.Padding < 0 || s.Padding > maxPadding {
		s.Padding = 0
	}
	if s.Margin < 0 || s.Margin > maxMargin {
		s.Margin = 0
	}
}
