// Package editor holds the per-profile editing session and the form
// synchronization engine that keeps an editable form in step with an
// externally owned résumé document.
package editor

// Section names one editable ordered list of the document.
type Section string

const (
	// Top-level lists.
	SectionProfiles     Section = "profiles"
	SectionWork         Section = "work"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionLanguages    Section = "languages"
	SectionCertificates Section = "certificates"
	SectionInterests    Section = "interests"

	// Nested lists under a single item of a top-level section.
	SectionHighlights Section = "highlights"
	SectionCourses    Section = "courses"
	SectionKeywords   Section = "keywords"
)

// ListRef addresses one editable list: either a top-level section, or a
// nested list under item Item of Section. Refs replace string field paths
// so that an invalid address is a construction-site mistake, not a parse
// failure at mutation time.
type ListRef struct {
	Section Section
	// Item indexes the parent section for nested refs; -1 for top-level.
	Item int
	// Nested names the sub-list, or "" for top-level refs.
	Nested Section
}

// List addresses a top-level section.
func List(section Section) ListRef {
	return ListRef{Section: section, Item: -1}
}

// NestedList addresses a sub-list under one item of a top-level section.
// Valid combinations: work/highlights, education/courses,
// interests/keywords.
func NestedList(section Section, item int, nested Section) ListRef {
	return ListRef{Section: section, Item: item, Nested: nested}
}

func (r ListRef) isNested() bool {
	return r.Nested != ""
}
