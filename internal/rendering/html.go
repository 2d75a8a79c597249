// Package rendering provides functionality to render resume previews as HTML documents.
package rendering

import (
	"fmt"
	"strings"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ranking"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

// linkedinLogoSVG is the inline LinkedIn glyph shown in the header link row.
const linkedinLogoSVG = `<svg viewBox="0 0 24 24" aria-hidden="true" focusable="false"><path d="M4.98 3.5C4.98 4.88 3.87 6 2.5 6S0 4.88 0 3.5 1.12 1 2.5 1s2.48 1.12 2.48 2.5zM0 8h5v16H0V8zm8 0h4.8v2.2h.1c.7-1.2 2.4-2.5 4.9-2.5 5.2 0 6.2 3.4 6.2 7.8V24h-5v-7.3c0-1.7 0-4-2.5-4s-2.9 1.9-2.9 3.9V24H8V8z"></path></svg>`

// sectionTitle renders a section heading.
func sectionTitle(title string) string {
	return `<div class="section-title">` + EscapeHTML(title) + `</div>`
}

// pairSection renders a titled two-column block with an 86/14 split, the right
// column holding a linkified date.
func pairSection(title, left, right string) string {
	return fmt.Sprintf(`%s<table><tr><td style="width:86%%">%s</td><td style="width:14%%">%s</td></tr></table>`,
		sectionTitle(title), left, Linkify(right))
}

// optionalSection emits nothing at all, title included, when the body is empty.
func optionalSection(title, body string) string {
	if body == "" {
		return ""
	}
	return sectionTitle(title) + body
}

// anyPresent reports whether any entry in the list has visible content.
func anyPresent[T types.Entry](items []T) bool {
	for _, item := range items {
		if types.HasContent(item) {
			return true
		}
	}
	return false
}

// RenderDocument transforms a canonical record into the assembled preview
// markup. It is a pure function: sorting happens on copies and the record is
// never mutated. Each block renders iff its visibility toggle is set AND the
// section has content; the optional-wrapper sections (achievements,
// internships, projects, certifications, co) additionally suppress their title
// when empty.
func RenderDocument(record *types.Record) string {
	scale := EffectiveScale(float64(record.FontScale))

	educationSorted := ranking.SortByDateDesc(record.Education, func(e types.Education) string { return e.Year })
	achievementsSorted := ranking.SortByDateDesc(record.Achievements, func(a types.Achievement) string { return a.Date })
	workSorted := ranking.SortByDateDesc(record.Work, func(w types.WorkItem) string { return w.Date })
	internshipsSorted := ranking.SortByDateDesc(record.Internships, func(i types.Internship) string { return i.Date })
	projectsSorted := ranking.SortByDateDesc(record.Projects, func(p types.ProjectItem) string { return p.Date })
	certificationsSorted := ranking.SortByDateDesc(record.Certifications, func(c types.Certification) string { return c.Date })
	porSorted := ranking.SortByDateDesc(record.Por, func(p types.PairedItem) string { return p.Date })
	extraSorted := ranking.SortByDateDesc(record.Extra, func(p types.PairedItem) string { return p.Date })
	coSorted := ranking.SortByDateDesc(record.Co, func(p types.PairedItem) string { return p.Date })

	hasHeader := record.FullName != "" || record.Tagline != "" || record.LinkedinURL != ""
	hasLogo := record.LinkedinURL != ""

	v := record.SectionVisibility

	var doc strings.Builder
	doc.WriteString(fmt.Sprintf(`<div class="resume-preview" style="--resume-scale: %s">`, formatScale(scale)))

	if v.Header && hasHeader {
		doc.WriteString(`<div class="header-link-row">`)
		if v.LinkedinLogo && hasLogo {
			doc.WriteString(fmt.Sprintf(
				`<a class="linkedin-logo-link" href="%s" target="_blank" rel="noopener" aria-label="LinkedIn profile">%s</a>`,
				ResolveURL(record.LinkedinURL), linkedinLogoSVG))
		}
		doc.WriteString(`</div>`)
		doc.WriteString(fmt.Sprintf(`<h1 class="name-row"><span>%s</span></h1>`, EscapeHTML(record.FullName)))
		doc.WriteString(fmt.Sprintf(`<p class="tagline">%s</p>`, Linkify(record.Tagline)))
	}

	if v.Education && anyPresent(educationSorted) {
		doc.WriteString(sectionTitle("Education"))
		doc.WriteString(`<table><tr>` +
			`<th style="width:12%">Year</th>` +
			`<th style="width:30%">Degree</th>` +
			`<th style="width:19%">University/Board</th>` +
			`<th style="width:27%">Institute</th>` +
			`<th style="width:12%">/ CGPA</th>` +
			`</tr>`)
		for _, e := range educationSorted {
			doc.WriteString(fmt.Sprintf(`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				Linkify(e.Year), Linkify(e.Degree), Linkify(e.Board), Linkify(e.Institute), Linkify(e.Score)))
		}
		doc.WriteString(`</table>`)
	}

	if expertise := bulletLine(record.Expertise); v.Expertise && expertise != "" {
		doc.WriteString(sectionTitle("Expertise/Area of Interest"))
		doc.WriteString(fmt.Sprintf(`<p class="bullet">%s</p>`, expertise))
	}

	if v.Achievements {
		doc.WriteString(optionalSection("Achievements and Accomplishments", achievementRows(achievementsSorted)))
	}

	if v.Work && anyPresent(workSorted) {
		doc.WriteString(sectionTitle("Work Experience"))
		for _, w := range workSorted {
			doc.WriteString(workBlock(w))
		}
	}

	if v.Internships {
		doc.WriteString(optionalSection("Internships", internshipBlocks(internshipsSorted)))
	}
	if v.Projects {
		doc.WriteString(optionalSection("Projects", projectBlocks(projectsSorted)))
	}
	if v.Certifications {
		doc.WriteString(optionalSection("Certifications", certificationRows(certificationsSorted)))
	}

	if v.Por && anyPresent(porSorted) {
		for _, item := range porSorted {
			doc.WriteString(pairedBlock("Positions of Responsibility", item))
		}
	}
	if v.Extra && anyPresent(extraSorted) {
		for _, item := range extraSorted {
			doc.WriteString(pairedBlock("Extra Curricular Activities", item))
		}
	}
	if v.Co && anyPresent(coSorted) {
		doc.WriteString(optionalSection("Co-Curricular Activities", coRows(coSorted)))
	}

	if bullets := bulletDivs(record.TechSkills); v.Skills && bullets != "" {
		doc.WriteString(sectionTitle("Technical Skills"))
		doc.WriteString(fmt.Sprintf(`<div class="bullet">%s</div>`, bullets))
	}

	if v.Links && anyPresent(record.Links) {
		doc.WriteString(sectionTitle("Online Professional Presence"))
		doc.WriteString(`<table class="links">`)
		for _, l := range record.Links {
			doc.WriteString(fmt.Sprintf(
				`<tr><td style="width:42%%">%s</td><td><a href="%s" target="_blank" rel="noopener">%s</a></td></tr>`,
				Linkify(l.Platform), ResolveURL(l.URL), EscapeHTML(l.URL)))
		}
		doc.WriteString(`</table>`)
	}

	if v.Personal && anyPresent(record.Personal) {
		doc.WriteString(sectionTitle("Personal Details"))
		doc.WriteString(`<table>`)
		for _, p := range record.Personal {
			doc.WriteString(personalRow(p))
		}
		doc.WriteString(`</table>`)
	}

	doc.WriteString(`<div class="page-break-marker" aria-hidden="true"></div>`)
	doc.WriteString(`</div>`)
	return doc.String()
}

// bulletLine flattens text items into a single inline bullet run, skipping
// blank entries.
func bulletLine(items []types.TextItem) string {
	var bullets []string
	for _, item := range items {
		if text := strings.TrimSpace(item.Text); text != "" {
			bullets = append(bullets, "• "+Linkify(text))
		}
	}
	return strings.Join(bullets, " ")
}

// bulletDivs renders text items as one bullet div per non-blank entry.
func bulletDivs(items []types.TextItem) string {
	var sb strings.Builder
	for _, item := range items {
		if text := strings.TrimSpace(item.Text); text != "" {
			sb.WriteString(fmt.Sprintf(`<div>• %s</div>`, Linkify(text)))
		}
	}
	return sb.String()
}

func achievementRows(items []types.Achievement) string {
	if !anyPresent(items) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<table>`)
	for _, a := range items {
		description := ""
		if a.Description != "" {
			description = "<br>" + Linkify(a.Description)
		}
		sb.WriteString(fmt.Sprintf(
			`<tr><td style="width:86%%"><strong>%s</strong>%s</td><td style="width:14%%">%s</td></tr>`,
			Linkify(a.Title), description, Linkify(a.Date)))
	}
	sb.WriteString(`</table>`)
	return sb.String()
}

func workBlock(w types.WorkItem) string {
	var highlights strings.Builder
	for _, line := range strings.Split(w.Highlights, "\n") {
		if line == "" {
			continue
		}
		highlights.WriteString(fmt.Sprintf(`<div>• %s</div>`, Linkify(line)))
	}
	return fmt.Sprintf(
		`<table><tr><td style="width:86%%">%s</td><td style="width:14%%">%s</td></tr></table>`+
			`<div class="project-block" style="padding-top:3px"><div><strong>%s</strong></div>%s</div>`,
		Linkify(w.Title), Linkify(w.Date), Linkify(w.Role), highlights.String())
}

func internshipBlocks(items []types.Internship) string {
	if !anyPresent(items) {
		return ""
	}
	var sb strings.Builder
	for _, i := range items {
		sb.WriteString(fmt.Sprintf(
			`<div class="project-block"><div class="project-head"><span>%s</span><span>%s</span></div>`+
				`<div><strong>%s</strong></div><div>%s</div></div>`,
			Linkify(i.Organization), Linkify(i.Date), Linkify(i.Role), Linkify(i.Summary)))
	}
	return sb.String()
}

func projectBlocks(items []types.ProjectItem) string {
	if !anyPresent(items) {
		return ""
	}
	var sb strings.Builder
	for _, p := range items {
		sb.WriteString(fmt.Sprintf(
			`<div class="project-block"><div class="project-head"><span>%s</span><span>%s</span></div>`+
				`<div><strong>%s</strong></div>`+
				`<div><strong>Summary:</strong> %s</div>`+
				`<div><strong>Skills Used:</strong> %s</div>`+
				`<div><strong>Team Size:</strong> %s</div>`+
				`<div><strong>Key Outcomes:</strong> %s</div></div>`,
			Linkify(p.Type), Linkify(p.Date), Linkify(p.Name),
			Linkify(p.Summary), Linkify(p.Skills), Linkify(p.TeamSize), Linkify(p.Outcomes)))
	}
	return sb.String()
}

func certificationRows(items []types.Certification) string {
	if !anyPresent(items) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<table>`)
	for _, c := range items {
		url := ""
		if c.URL != "" {
			url = fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`, ResolveURL(c.URL), EscapeHTML(c.URL))
		}
		sb.WriteString(fmt.Sprintf(
			`<tr><td style="width:38%%"><strong>%s</strong></td><td style="width:28%%">%s</td><td style="width:14%%">%s</td><td>%s</td></tr>`,
			Linkify(c.Name), Linkify(c.Issuer), Linkify(c.Date), url))
	}
	sb.WriteString(`</table>`)
	return sb.String()
}

// pairedBlock renders a por/extra entry as its own titled block; every entry
// repeats the section title, matching the printed layout.
func pairedBlock(title string, item types.PairedItem) string {
	left := fmt.Sprintf(`<strong>%s</strong><br>%s`, Linkify(item.Title), Linkify(item.Description))
	return pairSection(title, left, item.Date)
}

func coRows(items []types.PairedItem) string {
	var sb strings.Builder
	sb.WriteString(`<table>`)
	for _, item := range items {
		sb.WriteString(fmt.Sprintf(
			`<tr><td style="width:86%%"><strong>%s</strong><br>%s</td><td style="width:14%%">%s</td></tr>`,
			Linkify(item.Title), Linkify(item.Description), Linkify(item.Date)))
	}
	sb.WriteString(`</table>`)
	return sb.String()
}

func personalRow(p types.PersonalDetail) string {
	email := ""
	if p.Email != "" {
		email = fmt.Sprintf(`<a href="%s">%s</a>`, MailtoURI(p.Email), EscapeHTML(p.Email))
	}
	phone := ""
	if p.Phone != "" {
		phone = fmt.Sprintf(`<a href="%s">%s</a>`, TelURI(p.Phone), EscapeHTML(p.Phone))
	}
	return fmt.Sprintf(
		`<tr><td>Email: %s &nbsp;&nbsp; | &nbsp;&nbsp; Phone: %s &nbsp;&nbsp; | &nbsp;&nbsp; Location: %s</td></tr>`,
		email, phone, Linkify(p.Location))
}
