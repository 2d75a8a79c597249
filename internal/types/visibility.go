// Package types provides type definitions for structured resume data used throughout the resume builder.
package types

import "encoding/json"

// SectionVisibility holds the per-section display toggles.
//
// The toggle names are the persisted document contract and intentionally do not
// all match the data-section names: the techSkills list is toggled by "skills",
// and "linkedinLogo" has no list of its own (it gates the header logo).
// Renaming them would break documents saved by older builds.
type SectionVisibility struct {
	Header         bool `json:"header"`
	LinkedinLogo   bool `json:"linkedinLogo"`
	Education      bool `json:"education"`
	Expertise      bool `json:"expertise"`
	Achievements   bool `json:"achievements"`
	Work           bool `json:"work"`
	Internships    bool `json:"internships"`
	Projects       bool `json:"projects"`
	Certifications bool `json:"certifications"`
	Por            bool `json:"por"`
	Extra          bool `json:"extra"`
	Co             bool `json:"co"`
	Skills         bool `json:"skills"`
	Links          bool `json:"links"`
	Personal       bool `json:"personal"`
}

// DefaultVisibility returns the visibility set with every toggle enabled.
func DefaultVisibility() SectionVisibility {
	return SectionVisibility{
		Header:         true,
		LinkedinLogo:   true,
		Education:      true,
		Expertise:      true,
		Achievements:   true,
		Work:           true,
		Internships:    true,
		Projects:       true,
		Certifications: true,
		Por:            true,
		Extra:          true,
		Co:             true,
		Skills:         true,
		Links:          true,
		Personal:       true,
	}
}

// UnmarshalJSON merges the stored toggles over the defaults: keys missing from
// the payload stay true, unknown keys are ignored.
func (v *SectionVisibility) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	merged := DefaultVisibility()
	assign := func(key string, dst *bool) {
		if val, ok := raw[key]; ok {
			*dst = val
		}
	}
	assign("header", &merged.Header)
	assign("linkedinLogo", &merged.LinkedinLogo)
	assign("education", &merged.Education)
	assign("expertise", &merged.Expertise)
	assign("achievements", &merged.Achievements)
	assign("work", &merged.Work)
	assign("internships", &merged.Internships)
	assign("projects", &merged.Projects)
	assign("certifications", &merged.Certifications)
	assign("por", &merged.Por)
	assign("extra", &merged.Extra)
	assign("co", &merged.Co)
	assign("skills", &merged.Skills)
	assign("links", &merged.Links)
	assign("personal", &merged.Personal)

	*v = merged
	return nil
}
