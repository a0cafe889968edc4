package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentEqualIgnoresAbsentVsEmptyLists(t *testing.T) {
	a := Document{Basics: Basics{Name: "Ana"}}
	b := Document{
		Basics: Basics{Name: "Ana", Profiles: []SocialProfile{}},
		Work:   []Work{},
		Skills: []Skill{},
	}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestDocumentEqualDetectsContentChange(t *testing.T) {
	a := Document{Basics: Basics{Name: "Ana"}}
	b := Document{Basics: Basics{Name: "Eva"}}

	assert.False(t, a.Equal(b))
}

func TestDocumentCloneIsIndependent(t *testing.T) {
	orig := Document{
		Basics: Basics{Name: "Ana"},
		Work: []Work{
			{Name: "Acme", Position: "Dev", StartDate: "2020-01-01", Highlights: []string{"uno"}},
		},
	}

	clone := orig.Clone()
	clone.Work[0].Highlights[0] = "cambiado"
	clone.Basics.Name = "Eva"

	assert.Equal(t, "uno", orig.Work[0].Highlights[0])
	assert.Equal(t, "Ana", orig.Basics.Name)
}

func TestNewProfilePlaceholders(t *testing.T) {
	p := NewProfile()

	require.NotEmpty(t, p.ID)
	assert.Equal(t, DefaultProfileName, p.Name)
	assert.Equal(t, DefaultBasicsName, p.Data.Basics.Name)
	assert.Equal(t, DefaultBasicsLabel, p.Data.Basics.Label)
	assert.Equal(t, DefaultTemplate().ID, p.Template.ID)
	assert.False(t, p.UpdatedAt.Before(p.CreatedAt))
}

func TestNewImportedProfileNameFallback(t *testing.T) {
	doc := Document{Basics: Basics{Name: "Carlos Ruiz"}}

	p := NewImportedProfile(doc, "Mi CV")
	assert.Equal(t, "Mi CV", p.Name)

	p = NewImportedProfile(doc, "")
	assert.Equal(t, "Carlos Ruiz", p.Name)

	p = NewImportedProfile(Document{}, "")
	assert.Equal(t, ImportedProfileName, p.Name)
}

func TestProfileCloneDerivesNameAndFreshID(t *testing.T) {
	orig := NewProfile()
	orig.Name = "Principal"
	orig.Data.Basics.Name = "Ana"

	dup := orig.Clone()

	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Copy of Principal", dup.Name)
	assert.True(t, dup.Data.Equal(orig.Data))

	dup.Data.Basics.Name = "Eva"
	assert.Equal(t, "Ana", orig.Data.Basics.Name)
}

func TestSampleProfilesAreStable(t *testing.T) {
	samples := SampleProfiles()

	require.Len(t, samples, 2)
	assert.Equal(t, "1", samples[0].ID)
	assert.Equal(t, "2", samples[1].ID)
	assert.Equal(t, "María García López", samples[0].Data.Basics.Name)
	assert.NotEmpty(t, samples[1].Data.Basics.Name)
}

func TestTemplateCatalog(t *testing.T) {
	templates := AvailableTemplates()
	require.NotEmpty(t, templates)

	tpl, ok := TemplateByID(TemplateHarvardMinimal)
	require.True(t, ok)
	assert.Equal(t, TemplateHarvardMinimal, tpl.ID)

	_, ok = TemplateByID("no-such-template")
	assert.False(t, ok)

	assert.Equal(t, TemplateHarvardMinimal, DefaultTemplate().ID)
}
