// Package ranking provides the chronological ranking heuristic used to order resume entries.
package ranking

import (
	"regexp"
	"strconv"
	"strings"
)

// Rank is the sortable position derived from a free-text date string.
// The zero value is Unranked; unrankable entries sort after all ranked ones.
type Rank struct {
	Value int
	Known bool
}

// Unranked is the result for text with no recognizable date.
var Unranked = Rank{}

// PresentValue is the rank assigned to in-progress entries ("Present",
// "ongoing", ...). It exceeds any year*100+month combination so current
// entries always sort first.
const PresentValue = 999912

// Ranked wraps a raw rank value.
func Ranked(value int) Rank {
	return Rank{Value: value, Known: true}
}

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "sept": 9, "oct": 10, "nov": 11, "dec": 12,
}

var (
	presentRegex   = regexp.MustCompile(`(?i)(present|current|pursuing|ongoing)`)
	monthYearRegex = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*[\s\-']*(\d{2,4})\b`)
	yearRegex      = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	shortYearRegex = regexp.MustCompile(`'(\d{2})\b`)
)

// ParseDateRank converts a free-text date or date-range string into a Rank.
// It collects every month+year, bare-year and 'NN candidate found in the text
// and keeps the maximum, so "Jun 2020 - Aug 2022" ranks by its later end.
func ParseDateRank(text string) Rank {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return Unranked
	}

	if presentRegex.MatchString(raw) {
		return Ranked(PresentValue)
	}

	var candidates []int

	for _, match := range monthYearRegex.FindAllStringSubmatch(raw, -1) {
		mon, ok := months[strings.ToLower(match[1])]
		if !ok {
			mon = 1
		}
		year, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if year < 100 {
			year += 2000
		}
		candidates = append(candidates, year*100+mon)
	}

	for _, match := range yearRegex.FindAllStringSubmatch(raw, -1) {
		year, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		candidates = append(candidates, year*100+1)
	}

	for _, match := range shortYearRegex.FindAllStringSubmatch(raw, -1) {
		year, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		candidates = append(candidates, (2000+year)*100+1)
	}

	if len(candidates) == 0 {
		return Unranked
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c > best {
			best = c
		}
	}
	return Ranked(best)
}
