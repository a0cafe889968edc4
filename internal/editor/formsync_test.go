package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/schema"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestEngine returns an engine seeded with a valid document and a
// pointer to the list of propagated snapshots.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *[]model.Document) {
	t.Helper()
	var sent []model.Document
	e := NewEngine(schema.New(), func(doc model.Document) {
		sent = append(sent, doc)
	}, opts...)
	e.SetDocument(model.Document{Basics: model.Basics{Name: "Ana"}}, t0)
	return e, &sent
}

func setName(name string) func(*model.Document) {
	return func(d *model.Document) { d.Basics.Name = name }
}

func TestDebounceCoalescesEdits(t *testing.T) {
	e, sent := newTestEngine(t)

	e.Apply(t0, setName("A"))
	e.Apply(t0.Add(100*time.Millisecond), setName("An"))
	e.Apply(t0.Add(200*time.Millisecond), setName("Ann"))

	// The deadline restarts with each edit: 200ms + 500ms debounce.
	assert.False(t, e.Tick(t0.Add(600*time.Millisecond)))
	assert.Empty(t, *sent)

	require.True(t, e.Tick(t0.Add(700*time.Millisecond)))
	require.Len(t, *sent, 1)
	assert.Equal(t, "Ann", (*sent)[0].Basics.Name)
	assert.Equal(t, StateIdle, e.State())
}

func TestTickBeforeDeadlineDoesNothing(t *testing.T) {
	e, sent := newTestEngine(t)

	e.Apply(t0, setName("Eva"))
	assert.Equal(t, StatePending, e.State())

	assert.False(t, e.Tick(t0.Add(499*time.Millisecond)))
	assert.Empty(t, *sent)
	assert.Equal(t, StatePending, e.State())
}

func TestPropagationEchoDoesNotLoop(t *testing.T) {
	e, sent := newTestEngine(t)

	e.Apply(t0, setName("Eva"))
	require.True(t, e.Tick(t0.Add(500*time.Millisecond)))
	require.Len(t, *sent, 1)

	// The owner echoes the propagated content back within the guard
	// window. The engine must not reset or schedule anything.
	echo := (*sent)[0].Clone()
	e.SetDocument(echo, t0.Add(550*time.Millisecond))
	assert.Equal(t, StateIdle, e.State())

	// A late echo of identical content is equally ignored.
	e.SetDocument(echo, t0.Add(2*time.Second))
	assert.Equal(t, StateIdle, e.State())

	assert.False(t, e.Tick(t0.Add(3*time.Second)))
	assert.Len(t, *sent, 1)
}

func TestUnchangedContentIsNotPropagated(t *testing.T) {
	e, sent := newTestEngine(t)

	// Rewrite the same value: pending, but content equals last seen.
	e.Apply(t0, setName("Ana"))
	assert.False(t, e.Tick(t0.Add(time.Second)))
	assert.Empty(t, *sent)
}

func TestInvalidContentBlocksPropagation(t *testing.T) {
	e, sent := newTestEngine(t)

	e.Apply(t0, setName(""))
	assert.False(t, e.Valid())
	assert.Equal(t, "Campo requerido", e.FieldErrors()["basics.name"])

	assert.False(t, e.Tick(t0.Add(time.Second)))
	assert.Empty(t, *sent)

	// Fixing the field re-arms propagation.
	fix := t0.Add(2 * time.Second)
	e.Apply(fix, setName("Eva"))
	require.True(t, e.Tick(fix.Add(500*time.Millisecond)))
	assert.Equal(t, "Eva", (*sent)[0].Basics.Name)
}

func TestExternalChangeCancelsPendingEdit(t *testing.T) {
	e, sent := newTestEngine(t)

	e.Apply(t0, setName("Eva"))
	e.SetDocument(model.Document{Basics: model.Basics{Name: "Luz"}}, t0.Add(100*time.Millisecond))

	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, "Luz", e.Document().Basics.Name)

	assert.False(t, e.Tick(t0.Add(time.Second)))
	assert.Empty(t, *sent)
}

func TestCustomDebounceAndGuard(t *testing.T) {
	e, sent := newTestEngine(t, WithDebounce(50*time.Millisecond), WithGuardWindow(10*time.Millisecond))

	e.Apply(t0, setName("Eva"))
	require.True(t, e.Tick(t0.Add(50*time.Millisecond)))

	// Outside the shortened guard window an identical echo is still
	// ignored because it matches what the form already mirrors.
	e.SetDocument((*sent)[0], t0.Add(100*time.Millisecond))
	assert.Equal(t, StateIdle, e.State())
}

func TestAppendCreatesDefaultRecords(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Append(List(SectionWork), t0)
	doc := e.Document()
	require.Len(t, doc.Work, 1)
	assert.Equal(t, "", doc.Work[0].Position)
	assert.NotNil(t, doc.Work[0].Highlights)

	e.Append(List(SectionLanguages), t0)
	assert.Len(t, e.Document().Languages, 1)

	e.Append(NestedList(SectionWork, 0, SectionHighlights), t0)
	assert.Equal(t, []string{""}, e.Document().Work[0].Highlights)
}

func TestRemoveAtShiftsLaterElements(t *testing.T) {
	e, _ := newTestEngine(t)
	ref := NestedList(SectionWork, 0, SectionHighlights)

	e.Apply(t0, func(d *model.Document) {
		d.Work = []model.Work{{
			Name: "Acme", Position: "Dev", StartDate: "2020-01-01",
			Highlights: []string{"A", "B", "C"},
		}}
	})

	e.RemoveAt(ref, 1, t0)

	assert.Equal(t, []string{"A", "C"}, e.Document().Work[0].Highlights)
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Apply(t0, func(d *model.Document) {
		d.Languages = []model.Language{{Language: "Español", Fluency: "Nativo"}}
	})

	e.RemoveAt(List(SectionLanguages), 5, t0)
	e.RemoveAt(List(SectionLanguages), -1, t0)

	assert.Len(t, e.Document().Languages, 1)
}

func TestKeysAreStableAcrossRemovals(t *testing.T) {
	e, _ := newTestEngine(t)
	ref := NestedList(SectionWork, 0, SectionHighlights)

	e.Apply(t0, func(d *model.Document) {
		d.Work = []model.Work{{
			Name: "Acme", Position: "Dev", StartDate: "2020-01-01",
			Highlights: []string{"A", "B", "C"},
		}}
	})

	before := e.Keys(ref)
	require.Len(t, before, 3)

	e.RemoveAt(ref, 1, t0)

	after := e.Keys(ref)
	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[1])
}

func TestKeysSurviveValueEdits(t *testing.T) {
	e, _ := newTestEngine(t)
	ref := List(SectionLanguages)

	e.Append(ref, t0)
	before := e.Keys(ref)
	require.Len(t, before, 1)

	e.Apply(t0, func(d *model.Document) {
		d.Languages[0].Language = "Francés"
	})

	assert.Equal(t, before, e.Keys(ref))
}

func TestNestedKeysFollowParentRemoval(t *testing.T) {
	e, _ := newTestEngine(t)

	e.Apply(t0, func(d *model.Document) {
		d.Work = []model.Work{
			{Name: "Acme", Position: "Dev", StartDate: "2020-01-01", Highlights: []string{"a1"}},
			{Name: "Beta", Position: "Lead", StartDate: "2021-01-01", Highlights: []string{"b1", "b2"}},
		}
	})

	second := e.Keys(NestedList(SectionWork, 1, SectionHighlights))
	require.Len(t, second, 2)

	e.RemoveAt(List(SectionWork), 0, t0)

	// The surviving entry is now item 0 and keeps its highlight keys.
	assert.Equal(t, second, e.Keys(NestedList(SectionWork, 0, SectionHighlights)))
}

func TestKeysNeverSerialized(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Append(List(SectionWork), t0)
	_ = e.Keys(List(SectionWork))

	data, err := e.Document().PrettyJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "keys")
}

func TestSetDocumentNormalizesLists(t *testing.T) {
	e, _ := newTestEngine(t)

	e.SetDocument(model.Document{
		Basics: model.Basics{Name: "Eva"},
		Work:   []model.Work{{Name: "Acme", Position: "Dev", StartDate: "2020-01-01"}},
	}, t0.Add(time.Hour))

	doc := e.Document()
	assert.NotNil(t, doc.Work[0].Highlights)
	assert.NotNil(t, doc.Skills)
	assert.NotNil(t, doc.Basics.Profiles)
}
