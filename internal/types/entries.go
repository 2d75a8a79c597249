// Package types provides type definitions for structured resume data used throughout the resume builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Entry is implemented by every per-section entry record.
// Fields returns the entry's field values in their fixed display order.
type Entry interface {
	Fields() []string
}

// Education represents a single education row (year, degree, board, institute, score).
type Education struct {
	Year      string `json:"year"`
	Degree    string `json:"degree"`
	Board     string `json:"board"`
	Institute string `json:"institute"`
	Score     string `json:"score"`
}

// Fields returns the education fields in display order.
func (e Education) Fields() []string {
	return []string{e.Year, e.Degree, e.Board, e.Institute, e.Score}
}

// TextItem represents a free-text entry used by the expertise and technical-skills sections.
type TextItem struct {
	Text string `json:"text"`
}

// Fields returns the single text field.
func (t TextItem) Fields() []string {
	return []string{t.Text}
}

// Achievement represents an achievement entry with a title, description and date.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Fields returns the achievement fields in display order.
func (a Achievement) Fields() []string {
	return []string{a.Title, a.Description, a.Date}
}

// WorkItem represents a work-experience entry with newline-separated highlights.
type WorkItem struct {
	Title      string `json:"title"`
	Date       string `json:"date"`
	Role       string `json:"role"`
	Highlights string `json:"highlights"`
}

// Fields returns the work fields in display order.
func (w WorkItem) Fields() []string {
	return []string{w.Title, w.Date, w.Role, w.Highlights}
}

// Internship represents an internship entry.
type Internship struct {
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Role         string `json:"role"`
	Summary      string `json:"summary"`
}

// Fields returns the internship fields in display order.
func (i Internship) Fields() []string {
	return []string{i.Organization, i.Date, i.Role, i.Summary}
}

// ProjectItem represents a project entry.
type ProjectItem struct {
	Type     string `json:"type"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Summary  string `json:"summary"`
	Skills   string `json:"skills"`
	TeamSize string `json:"teamSize"`
	Outcomes string `json:"outcomes"`
}

// Fields returns the project fields in display order.
func (p ProjectItem) Fields() []string {
	return []string{p.Type, p.Date, p.Name, p.Summary, p.Skills, p.TeamSize, p.Outcomes}
}

// Certification represents a certification entry with an optional verification URL.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// Fields returns the certification fields in display order.
func (c Certification) Fields() []string {
	return []string{c.Name, c.Issuer, c.Date, c.URL}
}

// PairedItem represents a title/date/description entry, used by the positions of
// responsibility, extracurricular and co-curricular sections.
type PairedItem struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Fields returns the paired-item fields in display order.
func (p PairedItem) Fields() []string {
	return []string{p.Title, p.Date, p.Description}
}

// PersonalDetail represents a personal-details entry (email, phone, location).
type PersonalDetail struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Fields returns the personal-detail fields in display order.
func (p PersonalDetail) Fields() []string {
	return []string{p.Email, p.Phone, p.Location}
}

// Link represents an online-presence entry (platform name plus URL).
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Fields returns the link fields in display order.
func (l Link) Fields() []string {
	return []string{l.Platform, l.URL}
}

// HasContent reports whether any of the entry's fields is non-empty after trimming.
// An entry with only whitespace in every field does not count toward section presence.
func HasContent(e Entry) bool {
	for _, v := range e.Fields() {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
