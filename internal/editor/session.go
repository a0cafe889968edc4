package editor

import (
	"strings"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/store"
)

// Session is the editing state of one open profile: a private draft of
// the stored document plus dirty tracking. It never writes persistence
// directly; all durability goes through the profile store.
type Session struct {
	store     store.ProfileStore
	profileID string
	found     bool
	draft     model.Document
	dirty     bool
	preview   bool
}

// OpenSession resolves a profile and checks out its document as a draft.
// When the id does not resolve, the session reports Found() == false and
// every mutating call is a no-op.
func OpenSession(s store.ProfileStore, profileID string) *Session {
	sess := &Session{store: s, profileID: profileID}
	p, err := s.GetProfileByID(profileID)
	if err != nil {
		return sess
	}
	sess.found = true
	sess.draft = p.Data.Clone()
	return sess
}

// Found reports whether the profile resolved at open time and has not
// been observed missing since.
func (s *Session) Found() bool {
	return s.found
}

// ProfileID returns the id this session was opened for.
func (s *Session) ProfileID() string {
	return s.profileID
}

// Profile returns the current stored profile, for name/template display.
func (s *Session) Profile() (*model.Profile, bool) {
	p, err := s.store.GetProfileByID(s.profileID)
	if err != nil {
		return nil, false
	}
	return p, true
}

// Draft returns a copy of the current draft document.
func (s *Session) Draft() model.Document {
	return s.draft.Clone()
}

// Dirty reports whether the draft diverges from the stored document.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Update replaces the draft. Called by the form engine's outbound
// propagation. The dirty flag tracks actual divergence from the store.
func (s *Session) Update(doc model.Document) {
	if !s.found {
		return
	}
	s.draft = doc.Clone()
	if p, err := s.store.GetProfileByID(s.profileID); err == nil {
		s.dirty = !s.draft.Equal(p.Data)
	} else {
		s.found = false
		s.dirty = false
	}
}

// Save commits the draft into the store. A clean session, or one whose
// profile was deleted underneath it, is a no-op. Reports whether a commit
// happened.
func (s *Session) Save() bool {
	if !s.found || !s.dirty {
		return false
	}
	if _, err := s.store.GetProfileByID(s.profileID); err != nil {
		s.found = false
		return false
	}
	s.store.UpdateProfileData(s.profileID, s.draft)
	s.dirty = false
	return true
}

// Reset discards the draft and reloads the stored document.
func (s *Session) Reset() {
	p, err := s.store.GetProfileByID(s.profileID)
	if err != nil {
		s.found = false
		return
	}
	s.draft = p.Data.Clone()
	s.dirty = false
}

// Rename trims and commits a new profile name immediately; name changes
// are independent of the draft/dirty model. Empty or unchanged names are
// ignored. Reports whether a rename happened.
func (s *Session) Rename(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	p, err := s.store.GetProfileByID(s.profileID)
	if err != nil {
		s.found = false
		return false
	}
	if p.Name == trimmed {
		return false
	}
	s.store.UpdateProfileName(s.profileID, trimmed)
	return true
}

// SetPreview toggles the preview-only UI mode. Orthogonal to dirty
// tracking.
func (s *Session) SetPreview(on bool) {
	s.preview = on
}

// Preview reports the preview-only UI mode.
func (s *Session) Preview() bool {
	return s.preview
}
