package editor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcalaglez/icv-lite/internal/store"
)

func newSessionStore(t *testing.T) *store.JSONStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return store.NewJSONStore(t.TempDir(), logger)
}

func TestOpenSessionMissingProfile(t *testing.T) {
	s := newSessionStore(t)

	sess := OpenSession(s, "no-such-id")

	assert.False(t, sess.Found())
	assert.False(t, sess.Save())
	assert.False(t, sess.Dirty())
}

func TestSessionSaveFlow(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")
	require.True(t, sess.Found())

	draft := sess.Draft()
	draft.Basics.Label = "Arquitecta de Software"
	sess.Update(draft)
	assert.True(t, sess.Dirty())

	require.True(t, sess.Save())
	assert.False(t, sess.Dirty())

	stored, err := s.GetProfileByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Arquitecta de Software", stored.Data.Basics.Label)

	// Nothing new to commit.
	assert.False(t, sess.Save())
}

func TestSessionUpdateEqualContentStaysClean(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")

	sess.Update(sess.Draft())

	assert.False(t, sess.Dirty())
}

func TestSessionReset(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")
	original := sess.Draft()

	draft := sess.Draft()
	draft.Basics.Name = "Otro Nombre"
	sess.Update(draft)
	require.True(t, sess.Dirty())

	sess.Reset()

	assert.False(t, sess.Dirty())
	assert.True(t, sess.Draft().Equal(original))
}

func TestSessionRename(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")

	assert.False(t, sess.Rename("   "))
	assert.False(t, sess.Rename("Perfil de María García"))

	require.True(t, sess.Rename("  CV Principal  "))
	stored, err := s.GetProfileByID("1")
	require.NoError(t, err)
	assert.Equal(t, "CV Principal", stored.Name)
}

func TestSessionRenameDoesNotTouchDraft(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")

	draft := sess.Draft()
	draft.Basics.Name = "Borrador"
	sess.Update(draft)

	require.True(t, sess.Rename("Renombrado"))

	assert.True(t, sess.Dirty())
	assert.Equal(t, "Borrador", sess.Draft().Basics.Name)
}

func TestSessionProfileDeletedUnderneath(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")

	draft := sess.Draft()
	draft.Basics.Label = "cambio"
	sess.Update(draft)
	require.True(t, sess.Dirty())

	s.DeleteProfile("1")

	assert.False(t, sess.Save())
	assert.False(t, sess.Found())
}

func TestSessionPreviewToggle(t *testing.T) {
	s := newSessionStore(t)
	sess := OpenSession(s, "1")

	assert.False(t, sess.Preview())
	sess.SetPreview(true)
	assert.True(t, sess.Preview())
}
