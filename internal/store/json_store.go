package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rcalaglez/icv-lite/internal/model"
)

const storageFile = "profiles.json"

// envelope is the JSON file structure.
type envelope struct {
	Profiles []model.Profile `json:"profiles"`
}

// JSONStore implements ProfileStore using JSON file persistence. The
// in-memory collection is authoritative; every mutation rewrites the file
// best-effort.
type JSONStore struct {
	mu       sync.RWMutex
	path     string
	logger   *slog.Logger
	profiles []model.Profile
}

// NewJSONStore creates a store backed by <dir>/profiles.json. A missing,
// empty or corrupt file seeds the built-in sample profiles; load problems
// are logged and never fatal.
func NewJSONStore(dir string, logger *slog.Logger) *JSONStore {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error("creating storage directory", "dir", dir, "error", err)
	}

	s := &JSONStore{
		path:   filepath.Join(dir, storageFile),
		logger: logger,
	}
	s.load()
	return s
}

// load reads the profile collection, seeding samples when unreadable.
func (s *JSONStore) load() {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("reading profile storage", "path", s.path, "error", err)
		}
		s.seed()
		return
	}

	var env envelope
	if err := json.Unmarshal(content, &env); err != nil {
		s.logger.Warn("profile storage is corrupt, seeding samples", "path", s.path, "error", err)
		s.seed()
		return
	}
	if len(env.Profiles) == 0 {
		s.seed()
		return
	}
	s.profiles = env.Profiles
}

func (s *JSONStore) seed() {
	s.profiles = model.SampleProfiles()
	s.save()
}

// save writes the whole collection. Failures are logged, not returned;
// the in-memory state stays authoritative and the next mutation retries.
func (s *JSONStore) save() {
	content, err := json.MarshalIndent(envelope{Profiles: s.profiles}, "", "  ")
	if err != nil {
		s.logger.Error("serializing profiles", "error", err)
		return
	}
	if err := os.WriteFile(s.path, content, 0644); err != nil {
		s.logger.Error("writing profile storage", "path", s.path, "error", err)
	}
}

// ListProfiles returns a copy of all profiles in creation order.
func (s *JSONStore) ListProfiles() []model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Profile, len(s.profiles))
	copy(result, s.profiles)
	return result
}

// GetProfileByID retrieves a profile by id.
func (s *JSONStore) GetProfileByID(id string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			p.Data = s.profiles[i].Data.Clone()
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProfile appends a placeholder profile and returns its id.
func (s *JSONStore) CreateProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NewProfile()
	s.profiles = append(s.profiles, *p)
	s.save()
	return p.ID
}

// ImportProfile appends a profile around the supplied document.
func (s *JSONStore) ImportProfile(doc model.Document, suggestedName string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NewImportedProfile(doc, suggestedName)
	s.profiles = append(s.profiles, *p)
	s.save()
	return p.ID
}

// DuplicateProfile deep-copies an existing profile under a fresh id.
func (s *JSONStore) DuplicateProfile(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			dup := s.profiles[i].Clone()
			s.profiles = append(s.profiles, *dup)
			s.save()
			return dup.ID
		}
	}
	return ""
}

// DeleteProfile removes the profile with the given id, if present.
func (s *JSONStore) DeleteProfile(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			s.save()
			return
		}
	}
}

// UpdateProfileData replaces the document of the matching profile.
func (s *JSONStore) UpdateProfileData(id string, doc model.Document) {
	s.mutate(id, func(p *model.Profile) {
		p.Data = doc.Clone()
	})
}

// UpdateProfileName replaces the display name of the matching profile.
func (s *JSONStore) UpdateProfileName(id string, name string) {
	s.mutate(id, func(p *model.Profile) {
		p.Name = name
	})
}

// UpdateProfileTemplate replaces the template of the matching profile.
func (s *JSONStore) UpdateProfileTemplate(id string, tpl model.Template) {
	s.mutate(id, func(p *model.Profile) {
		p.Template = tpl
	})
}

// mutate applies fn to the matching profile, refreshes UpdatedAt and
// persists. Unknown ids are a no-op.
func (s *JSONStore) mutate(id string, fn func(*model.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.profiles {
		if s.profiles[i].ID == id {
			fn(&s.profiles[i])
			s.profiles[i].Touch()
			s.save()
			return
		}
	}
}
