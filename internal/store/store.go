// Package store provides data persistence for iCV Lite profiles.
package store

import (
	"errors"

	"github.com/rcalaglez/icv-lite/internal/model"
)

// ErrNotFound is returned when a profile id does not resolve.
var ErrNotFound = errors.New("not found")

// ProfileStore owns the canonical profile collection. All operations are
// synchronous; persistence failures are logged, never surfaced to callers.
type ProfileStore interface {
	// ListProfiles returns all profiles in creation order.
	ListProfiles() []model.Profile
	// GetProfileByID retrieves a profile by id, or ErrNotFound.
	GetProfileByID(id string) (*model.Profile, error)
	// CreateProfile adds a profile with placeholder content and returns
	// its id.
	CreateProfile() string
	// ImportProfile adds a profile wrapping an already-parsed document.
	// The document is not re-validated. Returns the new id.
	ImportProfile(doc model.Document, suggestedName string) string
	// DuplicateProfile deep-copies an existing profile under a fresh id.
	// Returns "" when the id is unknown.
	DuplicateProfile(id string) string
	// DeleteProfile removes a profile; unknown ids are a no-op.
	DeleteProfile(id string)
	// UpdateProfileData replaces the document of the matching profile.
	UpdateProfileData(id string, doc model.Document)
	// UpdateProfileName replaces the display name of the matching profile.
	UpdateProfileName(id string, name string)
	// UpdateProfileTemplate replaces the template of the matching profile.
	UpdateProfileTemplate(id string, tpl model.Template)
}
