package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcalaglez/icv-lite/internal/model"
)

func sampleDoc() model.Document {
	return model.SampleProfiles()[0].Data
}

func TestRenderUnknownTemplateShowsPlaceholder(t *testing.T) {
	out := Render(sampleDoc(), "no-such-template", 80)

	assert.Contains(t, out, "Plantilla no encontrada: no-such-template")
}

func TestRenderHarvardMinimal(t *testing.T) {
	out := Render(sampleDoc(), model.TemplateHarvardMinimal, 80)

	assert.Contains(t, out, "María García López")
	assert.Contains(t, out, "Desarrolladora Full Stack")
	assert.Contains(t, out, "EXPERIENCIA LABORAL")
	assert.Contains(t, out, "EDUCACIÓN")
	assert.Contains(t, out, "HABILIDADES TÉCNICAS")
	assert.Contains(t, out, "IDIOMAS")
	assert.Contains(t, out, "CERTIFICACIONES")
	assert.Contains(t, out, "INTERESES")
	// Open-ended work entry reads as current.
	assert.Contains(t, out, "Presente")
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := model.Document{Basics: model.Basics{Name: "Ana"}}

	out := Render(doc, model.TemplateHarvardMinimal, 80)

	assert.Contains(t, out, "Ana")
	assert.NotContains(t, out, "EXPERIENCIA LABORAL")
	assert.NotContains(t, out, "IDIOMAS")
}

func TestRenderClampsNarrowWidth(t *testing.T) {
	// Widths below the floor render at the floor instead of panicking.
	out := Render(sampleDoc(), model.TemplateHarvardMinimal, 1)

	require.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "María García López"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "marzo de 2022", FormatDate("2022-03-01"))
	assert.Equal(t, "junio de 2019", FormatDate("2019-06"))
	assert.Equal(t, "2019", FormatDate("2019"))
	assert.Equal(t, "garbage", FormatDate("garbage"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "enero de 2020 - diciembre de 2021", FormatDateRange("2020-01-01", "2021-12-31"))
	assert.Equal(t, "enero de 2020 - Presente", FormatDateRange("2020-01-01", ""))
}
