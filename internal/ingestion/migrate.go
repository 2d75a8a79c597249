// Package ingestion loads external resume payloads and migrates them into the canonical record.
//
// Payloads may come from the current export format, from documents saved by
// older builds (flat scalar fields instead of entry lists), or from arbitrary
// uploaded JSON. Malformed fields are tolerated: a field that fails to decode
// keeps its default instead of failing the whole document.
package ingestion

import (
	"encoding/json"
	"strings"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

// ParseDocument decodes an external payload and migrates it into a fully
// populated canonical record. Only a top-level shape problem, input that is
// not a JSON object, is an error; anything else degrades field by field.
func ParseDocument(data []byte) (*types.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &InvalidDocumentError{Message: "payload is not a JSON object", Cause: err}
	}
	return migrate(fields), nil
}

// migrate builds a canonical record from raw payload fields: defaults first,
// known payload keys merged on top, visibility resolved, then legacy upgrade
// rules. Running it on an already-canonical payload is a no-op because the
// list sections are already non-empty.
func migrate(fields map[string]json.RawMessage) *types.Record {
	record := types.DefaultRecord()

	decodeField(fields, "fontScale", &record.FontScale)
	decodeField(fields, "fullName", &record.FullName)
	decodeField(fields, "tagline", &record.Tagline)
	decodeField(fields, "linkedinUrl", &record.LinkedinURL)

	decodeList(fields, "education", &record.Education)
	decodeList(fields, "expertise", &record.Expertise)
	decodeList(fields, "achievements", &record.Achievements)
	decodeList(fields, "work", &record.Work)
	decodeList(fields, "internships", &record.Internships)
	decodeList(fields, "projects", &record.Projects)
	decodeList(fields, "certifications", &record.Certifications)
	decodeList(fields, "por", &record.Por)
	decodeList(fields, "extra", &record.Extra)
	decodeList(fields, "co", &record.Co)
	decodeList(fields, "techSkills", &record.TechSkills)
	decodeList(fields, "personal", &record.Personal)
	decodeList(fields, "links", &record.Links)

	decodeField(fields, "sectionVisibility", &record.SectionVisibility)

	applyLegacyUpgrades(fields, record)

	return record
}

// applyLegacyUpgrades synthesizes single-entry lists from the flat scalar
// fields used before multi-entry support, for every list section that came
// through empty.
func applyLegacyUpgrades(fields map[string]json.RawMessage, record *types.Record) {
	if len(record.Expertise) == 0 {
		if legacy := stringField(fields, "expertise"); strings.TrimSpace(legacy) != "" {
			record.Expertise = []types.TextItem{{Text: legacy}}
		}
	}

	if len(record.Work) == 0 {
		entry := types.WorkItem{
			Title:      stringField(fields, "workTitle"),
			Date:       stringField(fields, "workDate"),
			Role:       stringField(fields, "workRole"),
			Highlights: stringField(fields, "workHighlights"),
		}
		if types.HasContent(entry) {
			record.Work = []types.WorkItem{entry}
		}
	}

	if len(record.TechSkills) == 0 {
		if legacy := stringField(fields, "skills"); strings.TrimSpace(legacy) != "" {
			record.TechSkills = []types.TextItem{{Text: legacy}}
		}
	}

	if len(record.Personal) == 0 {
		entry := types.PersonalDetail{
			Email:    stringField(fields, "personalEmail"),
			Phone:    stringField(fields, "personalPhone"),
			Location: stringField(fields, "personalLocation"),
		}
		if types.HasContent(entry) {
			record.Personal = []types.PersonalDetail{entry}
		}
	}

	if len(record.Por) == 0 {
		if entry, ok := legacyPairedItem(fields, "por"); ok {
			record.Por = []types.PairedItem{entry}
		}
	}
	if len(record.Extra) == 0 {
		if entry, ok := legacyPairedItem(fields, "extra"); ok {
			record.Extra = []types.PairedItem{entry}
		}
	}
	if len(record.Co) == 0 {
		if entry, ok := legacyPairedItem(fields, "co"); ok {
			record.Co = []types.PairedItem{entry}
		}
	}
}

// legacyPairedItem reads the flat <prefix>Title/<prefix>Date/<prefix>Description
// fields, reporting whether any carried content.
func legacyPairedItem(fields map[string]json.RawMessage, prefix string) (types.PairedItem, bool) {
	entry := types.PairedItem{
		Title:       stringField(fields, prefix+"Title"),
		Date:        stringField(fields, prefix+"Date"),
		Description: stringField(fields, prefix+"Description"),
	}
	return entry, types.HasContent(entry)
}

// decodeField decodes a single payload field into dst, leaving dst untouched
// when the key is absent or the value does not decode.
func decodeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return
	}
	*dst = value
}

// decodeList decodes a list section, guaranteeing a non-nil slice afterwards
// (JSON null and decode failures both leave the section empty).
func decodeList[T any](fields map[string]json.RawMessage, key string, dst *[]T) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	var value []T
	if err := json.Unmarshal(raw, &value); err != nil {
		return
	}
	if value == nil {
		value = []T{}
	}
	*dst = value
}

// stringField returns a payload field as a string, or empty when absent or not
// a JSON string.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
