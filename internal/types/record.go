// Package types provides type definitions for structured resume data used throughout the resume builder.
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FontScale is the preview scale factor. Older documents store it as the raw
// form-field string ("1", "0.85"), newer exports store a number; both decode.
// Values that fail to parse decode as zero and are clamped at render time.
type FontScale float64

// UnmarshalJSON accepts a JSON number or a numeric string.
func (f *FontScale) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) >= 2 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FontScale(parsed)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FontScale(n)
	return nil
}

// Record is the canonical resume document: the single source of truth fed to
// the renderer and written by the migrator. List order is insertion order;
// chronological ordering is applied at render time without mutating the record.
type Record struct {
	FontScale   FontScale `json:"fontScale"`
	FullName    string    `json:"fullName"`
	Tagline     string    `json:"tagline"`
	LinkedinURL string    `json:"linkedinUrl"`

	Education      []Education      `json:"education"`
	Expertise      []TextItem       `json:"expertise"`
	Achievements   []Achievement    `json:"achievements"`
	Work           []WorkItem       `json:"work"`
	Internships    []Internship     `json:"internships"`
	Projects       []ProjectItem    `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Por            []PairedItem     `json:"por"`
	Extra          []PairedItem     `json:"extra"`
	Co             []PairedItem     `json:"co"`
	TechSkills     []TextItem       `json:"techSkills"`
	Personal       []PersonalDetail `json:"personal"`
	Links          []Link           `json:"links"`

	SectionVisibility SectionVisibility `json:"sectionVisibility"`
}

// DefaultRecord returns an empty canonical record with all sections visible.
func DefaultRecord() *Record {
	return &Record{
		FontScale:         1,
		Education:         []Education{},
		Expertise:         []TextItem{},
		Achievements:      []Achievement{},
		Work:              []WorkItem{},
		Internships:       []Internship{},
		Projects:          []ProjectItem{},
		Certifications:    []Certification{},
		Por:               []PairedItem{},
		Extra:             []PairedItem{},
		Co:                []PairedItem{},
		TechSkills:        []TextItem{},
		Personal:          []PersonalDetail{},
		Links:             []Link{},
		SectionVisibility: DefaultVisibility(),
	}
}
