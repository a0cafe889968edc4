package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rcalaglez/icv-lite/internal/model"
)

// Print-like styling: emphasis over color, matching the paper template.
var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Italic(true)
	sectionStyle = lipgloss.NewStyle().Bold(true)
	companyStyle = lipgloss.NewStyle().Italic(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// renderHarvardMinimal is the classic single-column layout: centered
// header, ruled section titles, right-aligned date ranges, bulleted
// highlights.
func renderHarvardMinimal(doc model.Document, width int) string {
	var b strings.Builder

	writeHeader(&b, doc.Basics, width)

	if len(doc.Work) > 0 {
		writeSectionTitle(&b, "Experiencia Laboral", width)
		for _, w := range doc.Work {
			writeTwoCol(&b, nameStyle.Render(w.Position), FormatDateRange(w.StartDate, w.EndDate), width)
			b.WriteString(companyStyle.Render(w.Name) + "\n")
			if w.Summary != "" {
				b.WriteString(ansi.Wrap(w.Summary, width, "") + "\n")
			}
			for _, h := range w.Highlights {
				writeBullet(&b, h, width)
			}
			b.WriteString("\n")
		}
	}

	if len(doc.Education) > 0 {
		writeSectionTitle(&b, "Educación", width)
		for _, e := range doc.Education {
			degree := e.StudyType + " en " + e.Area
			writeTwoCol(&b, nameStyle.Render(degree), educationDates(e), width)
			b.WriteString(companyStyle.Render(e.Institution) + "\n")
			if e.Score != "" {
				b.WriteString(mutedStyle.Render("Calificación: "+e.Score) + "\n")
			}
			for _, c := range e.Courses {
				writeBullet(&b, c, width)
			}
			b.WriteString("\n")
		}
	}

	if len(doc.Skills) > 0 {
		writeSectionTitle(&b, "Habilidades Técnicas", width)
		for _, s := range doc.Skills {
			line := nameStyle.Render(s.Name)
			if s.Level != "" {
				line += " " + mutedStyle.Render("("+s.Level+")")
			}
			b.WriteString(line + "\n")
			if len(s.Keywords) > 0 {
				b.WriteString(ansi.Wrap(strings.Join(s.Keywords, ", "), width, "") + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(doc.Languages) > 0 {
		writeSectionTitle(&b, "Idiomas", width)
		for _, l := range doc.Languages {
			b.WriteString(nameStyle.Render(l.Language) + " — " + l.Fluency + "\n")
		}
		b.WriteString("\n")
	}

	if len(doc.Certificates) > 0 {
		writeSectionTitle(&b, "Certificaciones", width)
		for _, c := range doc.Certificates {
			writeTwoCol(&b, nameStyle.Render(c.Name), FormatDate(c.Date), width)
			b.WriteString(companyStyle.Render(c.Issuer) + "\n")
		}
		b.WriteString("\n")
	}

	if len(doc.Interests) > 0 {
		writeSectionTitle(&b, "Intereses", width)
		for _, in := range doc.Interests {
			line := nameStyle.Render(in.Name)
			if len(in.Keywords) > 0 {
				line += " " + mutedStyle.Render(strings.Join(in.Keywords, ", "))
			}
			b.WriteString(line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeHeader(b *strings.Builder, basics model.Basics, width int) {
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	b.WriteString(center(nameStyle.Render(basics.Name)) + "\n")
	if basics.Label != "" {
		b.WriteString(center(labelStyle.Render(basics.Label)) + "\n")
	}

	var contact []string
	if basics.Email != "" {
		contact = append(contact, basics.Email)
	}
	if basics.Phone != "" {
		contact = append(contact, basics.Phone)
	}
	if basics.URL != "" {
		contact = append(contact, basics.URL)
	}
	if basics.Location.City != "" || basics.Location.Region != "" {
		contact = append(contact, strings.TrimSuffix(basics.Location.City+", "+basics.Location.Region, ", "))
	}
	if len(contact) > 0 {
		b.WriteString(center(mutedStyle.Render(strings.Join(contact, " • "))) + "\n")
	}

	var links []string
	for _, p := range basics.Profiles {
		links = append(links, p.Network+": "+p.Username)
	}
	if len(links) > 0 {
		b.WriteString(center(mutedStyle.Render(strings.Join(links, " • "))) + "\n")
	}

	if basics.Summary != "" {
		b.WriteString("\n" + ansi.Wrap(basics.Summary, width, "") + "\n")
	}
	b.WriteString("\n")
}

func writeSectionTitle(b *strings.Builder, title string, width int) {
	b.WriteString(sectionStyle.Render(strings.ToUpper(title)) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", width)) + "\n")
}

// writeTwoCol lays left and right on one line, right-aligned; when they
// do not fit, the right part moves to its own line.
func writeTwoCol(b *strings.Builder, left, right string, width int) {
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	if lw+rw+1 <= width {
		b.WriteString(left + strings.Repeat(" ", width-lw-rw) + mutedStyle.Render(right) + "\n")
		return
	}
	b.WriteString(left + "\n" + mutedStyle.Render(right) + "\n")
}

func writeBullet(b *strings.Builder, text string, width int) {
	wrapped := ansi.Wrap(text, width-2, "")
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			b.WriteString("• " + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
}

func educationDates(e model.Education) string {
	switch {
	case e.EndDate == "":
		return ""
	case e.StartDate == "":
		return FormatDate(e.EndDate)
	default:
		return FormatDateRange(e.StartDate, e.EndDate)
	}
}
