package validation

import (
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCV() *types.CV {
	return &types.CV{
		FullName: "Ana Gómez",
		Phone:    "+34 600 000 000",
		Email:    "ana@example.com",
		Experience: []types.Experience{
			{ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2019-02-01"},
		},
		Education: []types.Education{
			{ID: "ed1", Institution: "UCM", Degree: "BSc", StartDate: "2014-09-01"},
		},
		Skills:    []string{"Go"},
		Languages: []types.Language{{ID: "l1", Language: "Español", Level: "Nativo"}},
	}
}

func TestValidateCV_Valid(t *testing.T) {
	assert.NoError(t, ValidateCV(validCV()))
}

func TestValidateCV_MissingFullName(t *testing.T) {
	cv := validCV()
	cv.FullName = ""

	err := ValidateCV(cv)
	require.Error(t, err)

	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Field, "FullName")
}

func TestValidateCV_MissingPhone(t *testing.T) {
	cv := validCV()
	cv.Phone = ""
	assert.Error(t, ValidateCV(cv))
}

func TestValidateCV_BadEmail(t *testing.T) {
	cv := validCV()
	cv.Email = "not-an-email"
	assert.Error(t, ValidateCV(cv))
}

func TestValidateCV_EmptyEmailAllowed(t *testing.T) {
	cv := validCV()
	cv.Email = ""
	assert.NoError(t, ValidateCV(cv))
}

func TestValidateCV_ExperienceMissingCompany(t *testing.T) {
	cv := validCV()
	cv.Experience[0].Company = ""
	assert.Error(t, ValidateCV(cv))
}

func TestValidateCV_OversizedSummary(t *testing.T) {
	cv := validCV()
	cv.Summary = strings.Repeat("a", 5001)
	assert.Error(t, ValidateCV(cv))
}

func TestValidateCV_BadPhotoURL(t *testing.T) {
	cv := validCV()
	cv.Photo = "not a url"
	assert.Error(t, ValidateCV(cv))
}

func TestValidateCV_EmptySectionsAllowed(t *testing.T) {
	cv := validCV()
	cv.Experience = nil
	cv.Education = nil
	cv.Skills = nil
	cv.Languages = nil
	assert.NoError(t, ValidateCV(cv))
}

func TestSanitizeHexColor(t *testing.T) {
	assert.Equal(t, "#1e3a5f", SanitizeHexColor("#1E3A5F"))
	assert.Equal(t, "#abc", SanitizeHexColor("#abc"))
	assert.Equal(t, "#abc", SanitizeHexColor("  #abc  "))
}

func TestSanitizeHexColor_Invalid(t *testing.T) {
	for _, bad := range []string{
		"",
		"1e3a5f",
		"#12",
		"#12345",
		"#1234567",
		"#ggg",
		"red",
		"#abc; background: url(x)",
	} {
		assert.Equal(t, "", SanitizeHexColor(bad), "input %q", bad)
	}
}

func TestNormalizeSettings(t *testing.T) {
	s := types.TemplateSettings{
		PrimaryColor: "#FF0000",
		Padding:      40,
		Margin:       20,
	}

	NormalizeSettings(&s)
	assert.Equal(t, "#ff0000", s.PrimaryColor)
	assert.Equal(t, 40.0, s.Padding)
	assert.Equal(t, 20.0, s.Margin)
}

func TestNormalizeSettings_DropsBadValues(t *testing.T) {
	s := types.TemplateSettings{
		PrimaryColor: "javascript:alert(1)",
		Padding:      500,
		Margin:       -5,
	}

	NormalizeSettings(&s)
	assert.Equal(t, "", s.PrimaryColor)
	assert.Equal(t, 0.0, s.Padding)
	assert.Equal(t, 0.0, s.Margin)
}
