package rendering

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

func TestEffectiveScale_Clamp(t *testing.T) {
	assert.InDelta(t, 0.01, EffectiveScale(0), 1e-9)
	assert.InDelta(t, 0.01, EffectiveScale(-5), 1e-9)
	assert.InDelta(t, 0.01, EffectiveScale(math.NaN()), 1e-9)
	assert.InDelta(t, 1.0, EffectiveScale(1), 1e-9)
}

func TestEffectiveScale_Rounding(t *testing.T) {
	assert.InDelta(t, 0.85, EffectiveScale(0.851), 1e-9)
	assert.InDelta(t, 1.01, EffectiveScale(1.006), 1e-9)
	// Rounding never produces zero.
	assert.InDelta(t, 0.01, EffectiveScale(0.004), 1e-9)
}

func TestScalePercent(t *testing.T) {
	assert.Equal(t, 100, ScalePercent(1))
	assert.Equal(t, 85, ScalePercent(0.85))
	assert.Equal(t, 1, ScalePercent(-3))
}

func TestRenderDocument_EmptyRecord(t *testing.T) {
	out := RenderDocument(types.DefaultRecord())

	assert.NotContains(t, out, "section-title")
	assert.Contains(t, out, `--resume-scale: 1`)
	assert.Contains(t, out, "page-break-marker")
}

func TestRenderDocument_HeaderVisibility(t *testing.T) {
	record := types.DefaultRecord()
	record.FullName = "Ada Lovelace"

	out := RenderDocument(record)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "Ada Lovelace")

	record.SectionVisibility.Header = false
	out = RenderDocument(record)
	assert.NotContains(t, out, "<h1")
}

func TestRenderDocument_LinkedinLogoGatedTwice(t *testing.T) {
	record := types.DefaultRecord()
	record.FullName = "Ada"

	// No URL: header shows, logo does not.
	out := RenderDocument(record)
	assert.NotContains(t, out, "linkedin-logo-link")

	record.LinkedinURL = "www.linkedin.com/in/ada"
	out = RenderDocument(record)
	assert.Contains(t, out, `href="https://www.linkedin.com/in/ada"`)

	record.SectionVisibility.LinkedinLogo = false
	out = RenderDocument(record)
	assert.NotContains(t, out, "linkedin-logo-link")
	assert.Contains(t, out, "<h1")
}

func TestRenderDocument_HiddenSectionNeverRenders(t *testing.T) {
	record := types.DefaultRecord()
	record.Work = []types.WorkItem{{Title: "Acme", Date: "2020", Role: "SWE", Highlights: "shipped"}}
	record.SectionVisibility.Work = false

	out := RenderDocument(record)
	assert.NotContains(t, out, "Work Experience")
	assert.NotContains(t, out, "Acme")
}

func TestRenderDocument_OptionalSectionEmptyRendersNothing(t *testing.T) {
	record := types.DefaultRecord()
	record.Certifications = []types.Certification{{}} // present slot, no content

	out := RenderDocument(record)
	assert.NotContains(t, out, "Certifications")
}

func TestRenderDocument_EducationSortedRows(t *testing.T) {
	record := types.DefaultRecord()
	record.Education = []types.Education{
		{Year: "2018", Degree: "BSc", Board: "State", Institute: "Tech U", Score: "8.1"},
		{Year: "2022", Degree: "MSc", Board: "State", Institute: "Tech U", Score: "8.9"},
	}

	out := RenderDocument(record)
	require.Contains(t, out, "Education")
	assert.Less(t, strings.Index(out, "MSc"), strings.Index(out, "BSc"))
	// Five header columns.
	assert.Contains(t, out, "University/Board")
	assert.Contains(t, out, "/ CGPA")
}

func TestRenderDocument_WorkHighlightsSplitIntoBullets(t *testing.T) {
	record := types.DefaultRecord()
	record.Work = []types.WorkItem{{Title: "Acme", Date: "2020", Role: "SWE", Highlights: "built a thing\n\nfixed a thing"}}

	out := RenderDocument(record)
	assert.Equal(t, 2, strings.Count(out, "<div>• "))
	assert.Contains(t, out, "built a thing")
	assert.Contains(t, out, "fixed a thing")
}

func TestRenderDocument_ExpertiseFlattenedInline(t *testing.T) {
	record := types.DefaultRecord()
	record.Expertise = []types.TextItem{{Text: "Systems"}, {Text: "   "}, {Text: "Networks"}}

	out := RenderDocument(record)
	assert.Contains(t, out, "• Systems • Networks")
}

func TestRenderDocument_TechSkillsOneBulletPerEntry(t *testing.T) {
	record := types.DefaultRecord()
	record.TechSkills = []types.TextItem{{Text: "Go"}, {Text: "SQL"}}

	out := RenderDocument(record)
	assert.Contains(t, out, "Technical Skills")
	assert.Contains(t, out, "<div>• Go</div>")
	assert.Contains(t, out, "<div>• SQL</div>")
}

func TestRenderDocument_PersonalLinks(t *testing.T) {
	record := types.DefaultRecord()
	record.Personal = []types.PersonalDetail{{Email: "a@b.co", Phone: "+1 555-0100", Location: "Pune"}}

	out := RenderDocument(record)
	assert.Contains(t, out, `href="mailto:a@b.co"`)
	assert.Contains(t, out, `href="tel:+15550100"`)
	assert.Contains(t, out, "Pune")
}

func TestRenderDocument_PorRepeatsTitlePerEntry(t *testing.T) {
	record := types.DefaultRecord()
	record.Por = []types.PairedItem{
		{Title: "Club Lead", Date: "2021", Description: "ran the club"},
		{Title: "Mentor", Date: "2022", Description: "mentored juniors"},
	}

	out := RenderDocument(record)
	assert.Equal(t, 2, strings.Count(out, "Positions of Responsibility"))
	assert.Less(t, strings.Index(out, "Mentor"), strings.Index(out, "Club Lead"))
}

func TestRenderDocument_WhitespaceOnlyEntriesDoNotCount(t *testing.T) {
	record := types.DefaultRecord()
	record.Links = []types.Link{{Platform: "  ", URL: "\t"}}

	out := RenderDocument(record)
	assert.NotContains(t, out, "Online Professional Presence")
}

func TestRenderDocument_FontScaleClamped(t *testing.T) {
	record := types.DefaultRecord()
	record.FontScale = -2

	out := RenderDocument(record)
	assert.Contains(t, out, `--resume-scale: 0.01`)
}

func TestRenderPage_WrapsDocument(t *testing.T) {
	record := types.DefaultRecord()
	record.FullName = "Ada Lovelace"
	record.FontScale = 0.85

	page, err := RenderPage(record)
	require.NoError(t, err)

	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "<title>Ada Lovelace</title>")
	assert.Contains(t, page, "resume-preview")
	assert.Contains(t, page, "Scale: 85%")
}
