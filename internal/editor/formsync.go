package editor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rcalaglez/icv-lite/internal/model"
	"github.com/rcalaglez/icv-lite/internal/schema"
)

// Propagation timing. Edits coalesce over the debounce window; after an
// outbound propagation, inbound echoes of the same content are ignored for
// the guard window so the update→reset cycle cannot start.
const (
	DefaultDebounce    = 500 * time.Millisecond
	DefaultGuardWindow = 100 * time.Millisecond
)

// State is the propagation state of the engine.
type State int

const (
	// StateIdle means no outbound propagation is scheduled.
	StateIdle State = iota
	// StatePending means edits are waiting for the debounce deadline.
	StatePending
)

// Engine keeps a mutable form document synchronized with an externally
// owned document in both directions. All timing flows through the
// time.Time arguments; the caller drives deadlines by calling Tick.
// The engine is meant for a single event loop and is not goroutine safe.
type Engine struct {
	validator   *schema.Validator
	onPropagate func(model.Document)

	debounce time.Duration
	guard    time.Duration

	doc  model.Document
	keys map[ListRef][]string

	state      State
	deadline   time.Time
	guardUntil time.Time

	lastSeen model.Document
	hasSeen  bool
	lastSent model.Document
	hasSent  bool

	valid       bool
	fieldErrors map[string]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) { e.debounce = d }
}

// WithGuardWindow overrides the post-propagation guard window.
func WithGuardWindow(d time.Duration) Option {
	return func(e *Engine) { e.guard = d }
}

// NewEngine creates an engine propagating validated form content through
// onPropagate.
func NewEngine(v *schema.Validator, onPropagate func(model.Document), opts ...Option) *Engine {
	e := &Engine{
		validator:   v,
		onPropagate: onPropagate,
		debounce:    DefaultDebounce,
		guard:       DefaultGuardWindow,
		keys:        make(map[ListRef][]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resetTo(model.Document{})
	return e
}

// SetDocument feeds an external document change into the engine. Content
// structurally identical to what the form already mirrors is ignored, and
// so is an echo of the last propagation inside the guard window. Any
// other change fully resets the form to a normalized copy and cancels a
// pending propagation.
func (e *Engine) SetDocument(doc model.Document, now time.Time) {
	if e.hasSeen && doc.Equal(e.lastSeen) {
		return
	}
	if now.Before(e.guardUntil) && e.hasSent && doc.Equal(e.lastSent) {
		return
	}
	e.resetTo(doc)
}

func (e *Engine) resetTo(doc model.Document) {
	e.lastSeen = doc.Clone()
	e.hasSeen = true
	e.doc = normalize(doc)
	e.keys = make(map[ListRef][]string)
	e.state = StateIdle
	e.revalidate()
}

// Apply runs a typed mutation against the form document and schedules a
// propagation after the debounce window, superseding any pending one.
func (e *Engine) Apply(now time.Time, mutate func(*model.Document)) {
	mutate(&e.doc)
	e.revalidate()
	e.schedule(now)
}

// Append adds that list's default record at the end of the addressed list
// and schedules a propagation. An unaddressable ref is a programming
// error and panics.
func (e *Engine) Append(ref ListRef, now time.Time) {
	if ref.isNested() {
		list := e.nestedList(ref)
		*list = append(*list, "")
	} else {
		switch ref.Section {
		case SectionProfiles:
			e.doc.Basics.Profiles = append(e.doc.Basics.Profiles, model.SocialProfile{})
		case SectionWork:
			e.doc.Work = append(e.doc.Work, model.Work{Highlights: []string{}})
		case SectionEducation:
			e.doc.Education = append(e.doc.Education, model.Education{Courses: []string{}})
		case SectionSkills:
			e.doc.Skills = append(e.doc.Skills, model.Skill{Keywords: []string{}})
		case SectionLanguages:
			e.doc.Languages = append(e.doc.Languages, model.Language{})
		case SectionCertificates:
			e.doc.Certificates = append(e.doc.Certificates, model.Certificate{})
		case SectionInterests:
			e.doc.Interests = append(e.doc.Interests, model.Interest{Keywords: []string{}})
		default:
			panic(fmt.Sprintf("editor: append to unknown list %q", ref.Section))
		}
	}
	e.ensureKeys(ref)
	e.revalidate()
	e.schedule(now)
}

// RemoveAt removes element i of the addressed list, shifting later
// elements down. Out-of-range indices are ignored.
func (e *Engine) RemoveAt(ref ListRef, i int, now time.Time) {
	n := e.listLen(ref)
	if i < 0 || i >= n {
		return
	}

	if ref.isNested() {
		list := e.nestedList(ref)
		*list = append((*list)[:i], (*list)[i+1:]...)
	} else {
		switch ref.Section {
		case SectionProfiles:
			e.doc.Basics.Profiles = append(e.doc.Basics.Profiles[:i], e.doc.Basics.Profiles[i+1:]...)
		case SectionWork:
			e.doc.Work = append(e.doc.Work[:i], e.doc.Work[i+1:]...)
		case SectionEducation:
			e.doc.Education = append(e.doc.Education[:i], e.doc.Education[i+1:]...)
		case SectionSkills:
			e.doc.Skills = append(e.doc.Skills[:i], e.doc.Skills[i+1:]...)
		case SectionLanguages:
			e.doc.Languages = append(e.doc.Languages[:i], e.doc.Languages[i+1:]...)
		case SectionCertificates:
			e.doc.Certificates = append(e.doc.Certificates[:i], e.doc.Certificates[i+1:]...)
		case SectionInterests:
			e.doc.Interests = append(e.doc.Interests[:i], e.doc.Interests[i+1:]...)
		}
		e.shiftNestedKeys(ref.Section, i)
	}

	if ks, ok := e.keys[ref]; ok && i < len(ks) {
		e.keys[ref] = append(ks[:i], ks[i+1:]...)
	}
	e.revalidate()
	e.schedule(now)
}

// Tick advances the debounce state machine. At or after the pending
// deadline the form content is propagated unless it is invalid or equal
// to what was last propagated. Reports whether a propagation happened.
func (e *Engine) Tick(now time.Time) bool {
	if e.state != StatePending || now.Before(e.deadline) {
		return false
	}
	e.state = StateIdle

	if !e.valid {
		return false
	}
	if e.hasSeen && e.doc.Equal(e.lastSeen) {
		return false
	}

	sent := e.doc.Clone()
	e.lastSent = sent
	e.hasSent = true
	e.lastSeen = sent
	e.hasSeen = true
	e.guardUntil = now.Add(e.guard)
	if e.onPropagate != nil {
		e.onPropagate(sent)
	}
	return true
}

// Document returns a copy of the current form content. The copy is
// normalized again: Clone round-trips through JSON and omitempty drops
// empty lists, which would hand nil slices back to list-editing code.
func (e *Engine) Document() model.Document {
	return normalize(e.doc)
}

// Valid reports whole-form validity as of the last change.
func (e *Engine) Valid() bool {
	return e.valid
}

// FieldErrors returns per-field-path messages for the current content.
func (e *Engine) FieldErrors() map[string]string {
	out := make(map[string]string, len(e.fieldErrors))
	for k, v := range e.fieldErrors {
		out[k] = v
	}
	return out
}

// State returns the propagation state (Idle or Pending).
func (e *Engine) State() State {
	return e.state
}

// Keys returns the stable UI identity of each element of the addressed
// list. Keys survive edits and removals of other elements; they are never
// part of the document itself.
func (e *Engine) Keys(ref ListRef) []string {
	e.ensureKeys(ref)
	ks := e.keys[ref]
	out := make([]string, len(ks))
	copy(out, ks)
	return out
}

func (e *Engine) schedule(now time.Time) {
	e.state = StatePending
	e.deadline = now.Add(e.debounce)
}

func (e *Engine) revalidate() {
	result := e.validator.Validate(e.doc)
	e.valid = result.Valid
	e.fieldErrors = result.FieldErrors
}

// ensureKeys syncs the key list length with the addressed list.
func (e *Engine) ensureKeys(ref ListRef) {
	n := e.listLen(ref)
	ks := e.keys[ref]
	for len(ks) < n {
		ks = append(ks, uuid.New().String())
	}
	if len(ks) > n {
		ks = ks[:n]
	}
	e.keys[ref] = ks
}

// shiftNestedKeys re-homes nested key lists after removing item i of a
// top-level section, so surviving sub-lists keep their identities.
func (e *Engine) shiftNestedKeys(section Section, removed int) {
	type move struct {
		from, to ListRef
		ks       []string
	}
	var moves []move
	for ref, ks := range e.keys {
		if ref.Section != section || !ref.isNested() {
			continue
		}
		switch {
		case ref.Item == removed:
			moves = append(moves, move{from: ref})
		case ref.Item > removed:
			to := ref
			to.Item--
			moves = append(moves, move{from: ref, to: to, ks: ks})
		}
	}
	for _, mv := range moves {
		delete(e.keys, mv.from)
	}
	for _, mv := range moves {
		if mv.ks != nil {
			e.keys[mv.to] = mv.ks
		}
	}
}

// nestedList resolves a nested ref to its backing slice. Invalid refs are
// programming errors.
func (e *Engine) nestedList(ref ListRef) *[]string {
	switch {
	case ref.Section == SectionWork && ref.Nested == SectionHighlights:
		if ref.Item < 0 || ref.Item >= len(e.doc.Work) {
			panic(fmt.Sprintf("editor: work item %d out of range", ref.Item))
		}
		return &e.doc.Work[ref.Item].Highlights
	case ref.Section == SectionEducation && ref.Nested == SectionCourses:
		if ref.Item < 0 || ref.Item >= len(e.doc.Education) {
			panic(fmt.Sprintf("editor: education item %d out of range", ref.Item))
		}
		return &e.doc.Education[ref.Item].Courses
	case ref.Section == SectionInterests && ref.Nested == SectionKeywords:
		if ref.Item < 0 || ref.Item >= len(e.doc.Interests) {
			panic(fmt.Sprintf("editor: interest item %d out of range", ref.Item))
		}
		return &e.doc.Interests[ref.Item].Keywords
	default:
		panic(fmt.Sprintf("editor: unknown nested list %s/%s", ref.Section, ref.Nested))
	}
}

func (e *Engine) listLen(ref ListRef) int {
	if ref.isNested() {
		// Parent item may already be gone; report empty instead of
		// panicking so RemoveAt can treat it as out of range.
		switch {
		case ref.Section == SectionWork && ref.Nested == SectionHighlights:
			if ref.Item >= 0 && ref.Item < len(e.doc.Work) {
				return len(e.doc.Work[ref.Item].Highlights)
			}
		case ref.Section == SectionEducation && ref.Nested == SectionCourses:
			if ref.Item >= 0 && ref.Item < len(e.doc.Education) {
				return len(e.doc.Education[ref.Item].Courses)
			}
		case ref.Section == SectionInterests && ref.Nested == SectionKeywords:
			if ref.Item >= 0 && ref.Item < len(e.doc.Interests) {
				return len(e.doc.Interests[ref.Item].Keywords)
			}
		}
		return 0
	}

	switch ref.Section {
	case SectionProfiles:
		return len(e.doc.Basics.Profiles)
	case SectionWork:
		return len(e.doc.Work)
	case SectionEducation:
		return len(e.doc.Education)
	case SectionSkills:
		return len(e.doc.Skills)
	case SectionLanguages:
		return len(e.doc.Languages)
	case SectionCertificates:
		return len(e.doc.Certificates)
	case SectionInterests:
		return len(e.doc.Interests)
	}
	return 0
}

// normalize deep-copies a document and materializes absent arrays as empty
// sequences so list-editing code never deals with nil.
func normalize(doc model.Document) model.Document {
	d := doc.Clone()
	if d.Basics.Profiles == nil {
		d.Basics.Profiles = []model.SocialProfile{}
	}
	if d.Work == nil {
		d.Work = []model.Work{}
	}
	for i := range d.Work {
		if d.Work[i].Highlights == nil {
			d.Work[i].Highlights = []string{}
		}
	}
	if d.Education == nil {
		d.Education = []model.Education{}
	}
	for i := range d.Education {
		if d.Education[i].Courses == nil {
			d.Education[i].Courses = []string{}
		}
	}
	if d.Skills == nil {
		d.Skills = []model.Skill{}
	}
	for i := range d.Skills {
		if d.Skills[i].Keywords == nil {
			d.Skills[i].Keywords = []string{}
		}
	}
	if d.Languages == nil {
		d.Languages = []model.Language{}
	}
	if d.Certificates == nil {
		d.Certificates = []model.Certificate{}
	}
	if d.Interests == nil {
		d.Interests = []model.Interest{}
	}
	for i := range d.Interests {
		if d.Interests[i].Keywords == nil {
			d.Interests[i].Keywords = []string{}
		}
	}
	return d
}
