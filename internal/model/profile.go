package model

import (
	"time"

	"github.com/google/uuid"
)

// Placeholder values used for freshly created profiles.
const (
	DefaultProfileName = "Nuevo Perfil"
	DefaultBasicsName  = "Tu Nombre"
	DefaultBasicsLabel = "Tu Profesión"
	// ImportedProfileName is the last-resort name for imported documents.
	ImportedProfileName = "Imported Profile"
)

// Profile pairs a résumé document with a template choice under a stable id.
type Profile struct {
	// ID is generated once at creation and never changes.
	ID string `json:"id"`
	// Name is the display name of the profile.
	Name string `json:"name"`
	// Template is the full catalog entry, persisted verbatim.
	Template Template `json:"template"`
	// Data is the résumé document.
	Data Document `json:"data"`
	// CreatedAt is fixed at creation.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is refreshed on every mutation of Name, Template or Data.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProfile creates a profile with placeholder content, the default
// template and a fresh id.
func NewProfile() *Profile {
	now := time.Now()
	return &Profile{
		ID:       uuid.New().String(),
		Name:     DefaultProfileName,
		Template: DefaultTemplate(),
		Data: Document{
			Basics: Basics{
				Name:  DefaultBasicsName,
				Label: DefaultBasicsLabel,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewImportedProfile wraps an already-parsed document in a new profile.
// The document is not re-validated here; that is the editor's concern.
func NewImportedProfile(doc Document, suggestedName string) *Profile {
	name := suggestedName
	if name == "" {
		name = doc.Basics.Name
	}
	if name == "" {
		name = ImportedProfileName
	}
	now := time.Now()
	return &Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Template:  DefaultTemplate(),
		Data:      doc.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone creates a deep copy of the profile with a fresh id, derived name
// and new timestamps. The original is left untouched.
func (p *Profile) Clone() *Profile {
	now := time.Now()
	return &Profile{
		ID:        uuid.New().String(),
		Name:      "Copy of " + p.Name,
		Template:  p.Template,
		Data:      p.Data.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the UpdatedAt timestamp.
func (p *Profile) Touch() {
	p.UpdatedAt = time.Now()
}
