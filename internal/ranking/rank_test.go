package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateRank_Empty(t *testing.T) {
	assert.Equal(t, Unranked, ParseDateRank(""))
	assert.Equal(t, Unranked, ParseDateRank("   "))
}

func TestParseDateRank_NoDateContent(t *testing.T) {
	assert.Equal(t, Unranked, ParseDateRank("sometime soon"))
	assert.Equal(t, Unranked, ParseDateRank("N/A"))
}

func TestParseDateRank_Present(t *testing.T) {
	assert.Equal(t, Ranked(PresentValue), ParseDateRank("Present"))
	assert.Equal(t, Ranked(PresentValue), ParseDateRank("2019 - current"))
	assert.Equal(t, Ranked(PresentValue), ParseDateRank("Pursuing"))
	assert.Equal(t, Ranked(PresentValue), ParseDateRank("ONGOING"))
}

func TestParseDateRank_MonthYear(t *testing.T) {
	assert.Equal(t, Ranked(202006), ParseDateRank("Jun 2020"))
	assert.Equal(t, Ranked(202112), ParseDateRank("December 2021"))
	assert.Equal(t, Ranked(201909), ParseDateRank("Sept 2019"))
}

func TestParseDateRank_TwoDigitYear(t *testing.T) {
	assert.Equal(t, Ranked(202303), ParseDateRank("Mar 23"))
	assert.Equal(t, Ranked(202107), ParseDateRank("Jul '21"))
}

func TestParseDateRank_BareYear(t *testing.T) {
	assert.Equal(t, Ranked(202001), ParseDateRank("2020"))
	assert.Equal(t, Ranked(199801), ParseDateRank("batch of 1998"))
}

func TestParseDateRank_ApostropheYear(t *testing.T) {
	assert.Equal(t, Ranked(202001), ParseDateRank("'20"))
	assert.Equal(t, Ranked(202301), ParseDateRank("class of '23"))
}

func TestParseDateRank_RangeKeepsLatest(t *testing.T) {
	assert.Equal(t, Ranked(202208), ParseDateRank("Jun 2020 - Aug 2022"))
	assert.Equal(t, Ranked(202101), ParseDateRank("2019 to 2021"))
}

func TestParseDateRank_YearOutOfWindow(t *testing.T) {
	// Bare years are only recognized in 1900-2099.
	assert.Equal(t, Unranked, ParseDateRank("1850"))
	assert.Equal(t, Unranked, ParseDateRank("2150"))
}

func TestSortByDateDesc_Ordering(t *testing.T) {
	type item struct{ Date string }
	items := []item{{"2019"}, {"Present"}, {"2021"}, {""}}

	sorted := SortByDateDesc(items, func(i item) string { return i.Date })

	assert.Equal(t, []item{{"Present"}, {"2021"}, {"2019"}, {""}}, sorted)
}

func TestSortByDateDesc_StableOnTies(t *testing.T) {
	type item struct{ Name, Date string }
	items := []item{
		{"first", "Jan 2020"},
		{"second", "Jan 2020"},
		{"third", "Feb 2020"},
	}

	sorted := SortByDateDesc(items, func(i item) string { return i.Date })

	assert.Equal(t, "third", sorted[0].Name)
	assert.Equal(t, "first", sorted[1].Name)
	assert.Equal(t, "second", sorted[2].Name)
}

func TestSortByDateDesc_UnrankedKeepOrder(t *testing.T) {
	type item struct{ Name, Date string }
	items := []item{
		{"a", "someday"},
		{"b", "2018"},
		{"c", "tbd"},
	}

	sorted := SortByDateDesc(items, func(i item) string { return i.Date })

	assert.Equal(t, "b", sorted[0].Name)
	assert.Equal(t, "a", sorted[1].Name)
	assert.Equal(t, "c", sorted[2].Name)
}

func TestSortByDateDesc_DoesNotMutateInput(t *testing.T) {
	type item struct{ Date string }
	items := []item{{"2019"}, {"2021"}}

	_ = SortByDateDesc(items, func(i item) string { return i.Date })

	assert.Equal(t, []item{{"2019"}, {"2021"}}, items)
}
