package model

// TemplateID identifies a visual rendering template. The set is closed;
// templates are looked up by id and never constructed ad hoc.
type TemplateID string

const (
	// TemplateHarvardMinimal is the classic single-column layout.
	TemplateHarvardMinimal TemplateID = "harvard-minimal"
	// TemplateHarvardMostMinimal is a reduced variant of the above.
	TemplateHarvardMostMinimal TemplateID = "harvard-most-minimal"
)

// Template describes one entry of the template catalog.
type Template struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

// availableTemplates is the built-in template catalog.
var availableTemplates = []Template{
	{
		ID:          TemplateHarvardMinimal,
		Name:        "Harvard Minimal",
		Description: "Plantilla clásica y profesional con diseño limpio y tipografía clara. Ideal para sectores tradicionales y posiciones ejecutivas.",
	},
}

// AvailableTemplates returns the template catalog.
func AvailableTemplates() []Template {
	out := make([]Template, len(availableTemplates))
	copy(out, availableTemplates)
	return out
}

// TemplateByID looks up a catalog entry.
func TemplateByID(id TemplateID) (Template, bool) {
	for _, t := range availableTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// DefaultTemplate returns the template assigned to new profiles.
func DefaultTemplate() Template {
	return availableTemplates[0]
}
