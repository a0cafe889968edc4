package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcalaglez/icv-lite/internal/model"
)

func newTestStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewJSONStore(dir, discardLogger()), dir
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedsSamplesWhenFileMissing(t *testing.T) {
	s, dir := newTestStore(t)

	profiles := s.ListProfiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "1", profiles[0].ID)
	assert.Equal(t, "2", profiles[1].ID)

	// Seeding also writes the file so the next start is a normal load.
	_, err := os.Stat(filepath.Join(dir, storageFile))
	assert.NoError(t, err)
}

func TestSeedsSamplesWhenFileCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storageFile), []byte("{not json"), 0644))

	s := NewJSONStore(dir, discardLogger())

	assert.Len(t, s.ListProfiles(), 2)
}

func TestSeedsSamplesWhenFileEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, storageFile), []byte(`{"profiles":[]}`), 0644))

	s := NewJSONStore(dir, discardLogger())

	assert.Len(t, s.ListProfiles(), 2)
}

func TestCreateProfilePlaceholder(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateProfile()
	require.NotEmpty(t, id)

	p, err := s.GetProfileByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultProfileName, p.Name)
	assert.Equal(t, model.DefaultBasicsName, p.Data.Basics.Name)
	assert.Equal(t, model.DefaultBasicsLabel, p.Data.Basics.Label)
	assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStore(dir, discardLogger())

	id := s.CreateProfile()
	doc := model.Document{
		Basics: model.Basics{Name: "Ana", Label: "Ingeniera"},
		Work: []model.Work{
			{Name: "Acme", Position: "Dev", StartDate: "2020-01-01", Highlights: []string{"uno", "dos"}},
		},
	}
	s.UpdateProfileData(id, doc)

	reopened := NewJSONStore(dir, discardLogger())
	p, err := reopened.GetProfileByID(id)
	require.NoError(t, err)
	assert.True(t, doc.Equal(p.Data))
	assert.Equal(t, "Ana", p.Data.Basics.Name)
}

func TestGetProfileReturnsIsolatedCopy(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.GetProfileByID("1")
	require.NoError(t, err)
	p.Data.Basics.Name = "mutado"

	again, err := s.GetProfileByID("1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutado", again.Data.Basics.Name)
}

func TestDuplicateProfileIsIsolated(t *testing.T) {
	s, _ := newTestStore(t)

	dupID := s.DuplicateProfile("1")
	require.NotEmpty(t, dupID)
	require.NotEqual(t, "1", dupID)

	dup, err := s.GetProfileByID(dupID)
	require.NoError(t, err)
	assert.Equal(t, "Copy of Perfil de María García", dup.Name)

	s.UpdateProfileData(dupID, model.Document{Basics: model.Basics{Name: "Otra"}})

	orig, err := s.GetProfileByID("1")
	require.NoError(t, err)
	assert.Equal(t, "María García López", orig.Data.Basics.Name)
}

func TestDuplicateMissingProfile(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, "", s.DuplicateProfile("no-such-id"))
	assert.Len(t, s.ListProfiles(), 2)
}

func TestDeleteProfileIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)

	s.DeleteProfile("1")
	_, err := s.GetProfileByID("1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again must not disturb the rest.
	s.DeleteProfile("1")
	assert.Len(t, s.ListProfiles(), 1)
}

func TestImportProfileUsesNameFallbacks(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.ImportProfile(model.Document{Basics: model.Basics{Name: "Carlos"}}, "")
	p, err := s.GetProfileByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", p.Name)

	id = s.ImportProfile(model.Document{}, "")
	p, err = s.GetProfileByID(id)
	require.NoError(t, err)
	assert.Equal(t, model.ImportedProfileName, p.Name)
}

func TestUpdateProfileNameAndTemplateTouch(t *testing.T) {
	s, _ := newTestStore(t)

	before, err := s.GetProfileByID("1")
	require.NoError(t, err)

	s.UpdateProfileName("1", "Nuevo nombre")
	tpl, ok := model.TemplateByID(model.TemplateHarvardMinimal)
	require.True(t, ok)
	s.UpdateProfileTemplate("1", tpl)

	after, err := s.GetProfileByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo nombre", after.Name)
	assert.Equal(t, tpl.ID, after.Template.ID)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestCreateThenEditKeepsIDAndBumpsUpdatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.CreateProfile()
	created, err := s.GetProfileByID(id)
	require.NoError(t, err)

	s.UpdateProfileData(id, model.Document{Basics: model.Basics{Name: "Jane Doe"}})

	p, err := s.GetProfileByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Jane Doe", p.Data.Basics.Name)
	assert.True(t, p.UpdatedAt.After(created.CreatedAt))
}

func TestMutationsOnMissingIDAreNoops(t *testing.T) {
	s, _ := newTestStore(t)

	s.UpdateProfileData("ghost", model.Document{Basics: model.Basics{Name: "X"}})
	s.UpdateProfileName("ghost", "X")

	assert.Len(t, s.ListProfiles(), 2)
}
