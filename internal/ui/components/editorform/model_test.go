package editorform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcalaglez/icv-lite/internal/editor"
	"github.com/rcalaglez/icv-lite/internal/model"
)

func testDoc() model.Document {
	return model.Document{
		Basics: model.Basics{Name: "Ana", Label: "Dev"},
		Work: []model.Work{
			{Name: "Acme", Position: "Dev", StartDate: "2020-01-01", Highlights: []string{"uno", "dos"}},
		},
		Skills: []model.Skill{
			{Name: "Frontend", Keywords: []string{"React", "CSS"}},
		},
	}
}

func (m *Model) moveTo(t *testing.T, id string) {
	t.Helper()
	for i, r := range m.rows {
		if r.id == id {
			m.cursor = i
			return
		}
	}
	t.Fatalf("row %q not found", id)
}

func TestCommitEditAppliesToDocument(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), nil)

	m.moveTo(t, "work.0.position")
	require.True(t, m.StartEditing())
	m.input.SetValue("CTO")

	mutate, ok := m.CommitEdit()
	require.True(t, ok)
	assert.False(t, m.Editing())

	doc := testDoc()
	mutate(&doc)
	assert.Equal(t, "CTO", doc.Work[0].Position)
}

func TestKeywordEditSplitsOnCommas(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), nil)

	m.moveTo(t, "skills.0.keywords")
	require.True(t, m.StartEditing())
	m.input.SetValue(" Go , , Rust ")

	mutate, ok := m.CommitEdit()
	require.True(t, ok)

	doc := testDoc()
	mutate(&doc)
	assert.Equal(t, []string{"Go", "Rust"}, doc.Skills[0].Keywords)
}

func TestSectionHeadersAreNotEditable(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), nil)

	m.moveTo(t, "hdr:work")
	assert.False(t, m.StartEditing())
}

func TestAddAndRemoveTargets(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), nil)

	m.moveTo(t, "hdr:work")
	ref, ok := m.AddTarget()
	require.True(t, ok)
	assert.Equal(t, editor.List(editor.SectionWork), ref)
	_, _, removable := m.RemoveTarget()
	assert.False(t, removable)

	m.moveTo(t, "work.0.highlights.1")
	ref, ok = m.AddTarget()
	require.True(t, ok)
	assert.Equal(t, editor.NestedList(editor.SectionWork, 0, editor.SectionHighlights), ref)

	rmRef, idx, removable := m.RemoveTarget()
	require.True(t, removable)
	assert.Equal(t, editor.NestedList(editor.SectionWork, 0, editor.SectionHighlights), rmRef)
	assert.Equal(t, 1, idx)
}

func TestRebuildKeepsCursorOnSameRow(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), nil)
	m.moveTo(t, "skills.0.name")

	doc := testDoc()
	doc.Work = append([]model.Work{
		{Name: "Nueva", Position: "Lead", StartDate: "2023-01-01"},
	}, doc.Work...)
	m.Rebuild(doc, nil)

	assert.Equal(t, "skills.0.name", m.rows[m.cursor].id)
}

func TestRowsCarryFieldErrors(t *testing.T) {
	m := New()
	m.SetSize(80, 40)
	m.Rebuild(testDoc(), map[string]string{"basics.name": "Campo requerido"})

	m.moveTo(t, "basics.name")
	assert.Equal(t, "Campo requerido", m.rows[m.cursor].err)
}

func TestSplitKeywords(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitKeywords("a, b"))
	assert.Empty(t, splitKeywords("  ,  , "))
}
