// Package model defines core data structures for iCV Lite.
package model

import "encoding/json"

// Document is the structured résumé content, following the JSON Resume shape.
// Every array field is an ordered sequence; order is display order.
type Document struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work,omitempty" validate:"omitempty,dive"`
	Education    []Education   `json:"education,omitempty" validate:"omitempty,dive"`
	Skills       []Skill       `json:"skills,omitempty" validate:"omitempty,dive"`
	Languages    []Language    `json:"languages,omitempty" validate:"omitempty,dive"`
	Certificates []Certificate `json:"certificates,omitempty" validate:"omitempty,dive"`
	Interests    []Interest    `json:"interests,omitempty" validate:"omitempty,dive"`
}

// Basics holds the contact header of the résumé. Name is the only
// required scalar in the whole document.
type Basics struct {
	Name     string          `json:"name" validate:"required"`
	Label    string          `json:"label,omitempty"`
	Image    string          `json:"image,omitempty"`
	Email    string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string          `json:"phone,omitempty"`
	URL      string          `json:"url,omitempty" validate:"omitempty,url"`
	Summary  string          `json:"summary,omitempty"`
	Location Location        `json:"location"`
	Profiles []SocialProfile `json:"profiles,omitempty" validate:"omitempty,dive"`
}

// Location is a free-form postal location. All fields are optional.
type Location struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

// SocialProfile is one entry of basics.profiles.
type SocialProfile struct {
	Network  string `json:"network" validate:"required"`
	Username string `json:"username" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
}

// Work is one work-history entry.
type Work struct {
	Name       string   `json:"name" validate:"required"`
	Position   string   `json:"position" validate:"required"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate" validate:"required"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is one education entry.
type Education struct {
	Institution string   `json:"institution" validate:"required"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area" validate:"required"`
	StudyType   string   `json:"studyType" validate:"required"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// Skill is one skill entry with optional keywords.
type Skill struct {
	Name     string   `json:"name" validate:"required"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Language is one spoken-language entry.
type Language struct {
	Language string `json:"language" validate:"required"`
	Fluency  string `json:"fluency" validate:"required"`
}

// Certificate is one certification entry.
type Certificate struct {
	Name   string `json:"name" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	URL    string `json:"url,omitempty"`
}

// Interest is one interest entry with optional keywords.
type Interest struct {
	Name     string   `json:"name" validate:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

// PrettyJSON serializes the document as indented JSON for the
// export-to-file action. The serialization is lossless.
func (d Document) PrettyJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
