// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVStatus represents the review state of a stored CV.
type CVStatus string

// CV status values
const (
	StatusPending   CVStatus = "pending"
	StatusReviewed  CVStatus = "reviewed"
	StatusCompleted CVStatus = "completed"
)

// Experience represents a single work history entry
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required,max=200"`
	Position    string `json:"position" validate:"required,max=200"`
	StartDate   string `json:"startDate" validate:"required,max=40"`
	EndDate     string `json:"endDate,omitempty" validate:"max=40"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty" validate:"max=3000"`
}

// Education represents a single education history entry
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution" validate:"required,max=200"`
	Degree      string `json:"degree" validate:"required,max=200"`
	Field       string `json:"field,omitempty" validate:"max=200"`
	StartDate   string `json:"startDate" validate:"required,max=40"`
	EndDate     string `json:"endDate,omitempty" validate:"max=40"`
	Current     bool   `json:"current"`
}

// Language represents a spoken language with a proficiency level.
// Level is usually one of basic/intermediate/advanced/native but free text is accepted.
type Language struct {
	ID       string `json:"id"`
	Language string `json:"language" validate:"required,max=100"`
	Level    string `json:"level" validate:"required,max=100"`
}

// Project represents a personal or professional project.
// Stored but not rendered by any current layout.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}

// Certification represents a professional certification.
// Stored but not rendered by any current layout.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required,max=200"`
	Issuer string `json:"issuer,omitempty" validate:"max=200"`
	Date   string `json:"date,omitempty" validate:"max=40"`
}

// CV represents a stored candidate record. The rendering pipeline treats it
// as read-only input; only the intake and admin-edit flows mutate it.
type CV struct {
	ID               string           `json:"id"`
	FullName         string           `json:"fullName" validate:"required,max=200"`
	Phone            string           `json:"phone" validate:"required,max=50"`
	Email            string           `json:"email,omitempty" validate:"omitempty,email"`
	Location         string           `json:"location,omitempty" validate:"max=200"`
	LinkedIn         string           `json:"linkedin,omitempty" validate:"max=300"`
	GitHub           string           `json:"github,omitempty" validate:"max=300"`
	OtherLinks       string           `json:"otherLinks,omitempty" validate:"max=1000"`
	Photo            string           `json:"photo,omitempty" validate:"omitempty,url"` // URL to an already-cropped image
	Summary          string           `json:"summary,omitempty" validate:"max=5000"`
	Experience       []Experience     `json:"experience" validate:"max=50,dive"`
	Education        []Education      `json:"education" validate:"max=50,dive"`
	Skills           []string         `json:"skills" validate:"max=100,dive,required,max=100"`
	Languages        []Language       `json:"languages" validate:"max=30,dive"`
	Projects         []Project        `json:"projects,omitempty" validate:"max=50,dive"`
	Certifications   []Certification  `json:"certifications,omitempty" validate:"max=50,dive"`
	SelectedTemplate string           `json:"selectedTemplate"`
	TemplateSettings TemplateSettings `json:"templateSettings"`
	Status           CVStatus         `json:"status"`
	Viewed           bool             `json:"viewed"`
}
