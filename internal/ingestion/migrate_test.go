package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/types"
)

func TestParseDocument_NotAnObject(t *testing.T) {
	_, err := ParseDocument([]byte(`[1,2,3]`))
	require.Error(t, err)

	var invalid *InvalidDocumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"fullName": `))
	require.Error(t, err)
}

func TestParseDocument_EmptyObjectYieldsDefaults(t *testing.T) {
	record, err := ParseDocument([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, types.DefaultRecord(), record)
}

func TestParseDocument_ScalarsMerged(t *testing.T) {
	record, err := ParseDocument([]byte(`{"fullName":"Ada","tagline":"Engineer","linkedinUrl":"www.linkedin.com/in/ada","fontScale":0.9}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", record.FullName)
	assert.Equal(t, "Engineer", record.Tagline)
	assert.Equal(t, "www.linkedin.com/in/ada", record.LinkedinURL)
	assert.InDelta(t, 0.9, float64(record.FontScale), 1e-9)
}

func TestParseDocument_StringFontScale(t *testing.T) {
	record, err := ParseDocument([]byte(`{"fontScale":"0.85"}`))
	require.NoError(t, err)
	assert.InDelta(t, 0.85, float64(record.FontScale), 1e-9)
}

func TestParseDocument_MalformedFieldKeepsDefault(t *testing.T) {
	record, err := ParseDocument([]byte(`{"education":"not a list","fullName":"Ada"}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", record.FullName)
	assert.Empty(t, record.Education)
	assert.NotNil(t, record.Education)
}

func TestParseDocument_NullListBecomesEmpty(t *testing.T) {
	record, err := ParseDocument([]byte(`{"work":null}`))
	require.NoError(t, err)

	assert.NotNil(t, record.Work)
	assert.Empty(t, record.Work)
}

func TestParseDocument_VisibilityMergedOverDefaults(t *testing.T) {
	record, err := ParseDocument([]byte(`{"sectionVisibility":{"work":false,"unknownToggle":false}}`))
	require.NoError(t, err)

	assert.False(t, record.SectionVisibility.Work)
	assert.True(t, record.SectionVisibility.Header)
	assert.True(t, record.SectionVisibility.Skills)
}

func TestParseDocument_LegacyWorkUpgrade(t *testing.T) {
	payload := `{"workTitle":"Eng","workDate":"2020","workRole":"SWE","workHighlights":"did things"}`
	record, err := ParseDocument([]byte(payload))
	require.NoError(t, err)

	require.Len(t, record.Work, 1)
	assert.Equal(t, types.WorkItem{Title: "Eng", Date: "2020", Role: "SWE", Highlights: "did things"}, record.Work[0])
}

func TestParseDocument_LegacyWorkIgnoredWhenListPresent(t *testing.T) {
	payload := `{"work":[{"title":"Current"}],"workTitle":"Old"}`
	record, err := ParseDocument([]byte(payload))
	require.NoError(t, err)

	require.Len(t, record.Work, 1)
	assert.Equal(t, "Current", record.Work[0].Title)
}

func TestParseDocument_LegacyExpertiseString(t *testing.T) {
	record, err := ParseDocument([]byte(`{"expertise":"Distributed systems"}`))
	require.NoError(t, err)

	require.Len(t, record.Expertise, 1)
	assert.Equal(t, "Distributed systems", record.Expertise[0].Text)
}

func TestParseDocument_LegacyExpertiseBlankIgnored(t *testing.T) {
	record, err := ParseDocument([]byte(`{"expertise":"   "}`))
	require.NoError(t, err)
	assert.Empty(t, record.Expertise)
}

func TestParseDocument_LegacySkillsString(t *testing.T) {
	record, err := ParseDocument([]byte(`{"skills":"Go, SQL"}`))
	require.NoError(t, err)

	require.Len(t, record.TechSkills, 1)
	assert.Equal(t, "Go, SQL", record.TechSkills[0].Text)
}

func TestParseDocument_LegacyPersonalScalars(t *testing.T) {
	payload := `{"personalEmail":"a@b.co","personalPhone":"555","personalLocation":"Pune"}`
	record, err := ParseDocument([]byte(payload))
	require.NoError(t, err)

	require.Len(t, record.Personal, 1)
	assert.Equal(t, types.PersonalDetail{Email: "a@b.co", Phone: "555", Location: "Pune"}, record.Personal[0])
}

func TestParseDocument_LegacyPairedSections(t *testing.T) {
	payload := `{"porTitle":"Lead","porDate":"2021","porDescription":"ran things","extraDescription":"debate","coTitle":"Hackathon"}`
	record, err := ParseDocument([]byte(payload))
	require.NoError(t, err)

	require.Len(t, record.Por, 1)
	assert.Equal(t, types.PairedItem{Title: "Lead", Date: "2021", Description: "ran things"}, record.Por[0])
	require.Len(t, record.Extra, 1)
	assert.Equal(t, "debate", record.Extra[0].Description)
	require.Len(t, record.Co, 1)
	assert.Equal(t, "Hackathon", record.Co[0].Title)
}

func TestParseDocument_MigrationIdempotent(t *testing.T) {
	payload := `{
		"fullName": "Ada",
		"expertise": "Systems",
		"workTitle": "Eng", "workDate": "2020",
		"skills": "Go",
		"sectionVisibility": {"extra": false}
	}`

	first, err := ParseDocument([]byte(payload))
	require.NoError(t, err)

	exported, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := ParseDocument(exported)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseDocument_CanonicalRoundTrip(t *testing.T) {
	record := types.DefaultRecord()
	record.FullName = "Ada Lovelace"
	record.FontScale = 0.9
	record.Education = []types.Education{{Year: "2020", Degree: "BSc", Board: "State", Institute: "Tech U", Score: "9.0"}}
	record.Work = []types.WorkItem{{Title: "Acme", Date: "Jun 2021 - Present", Role: "SWE", Highlights: "shipped"}}
	record.Links = []types.Link{{Platform: "GitHub", URL: "github.com/ada"}}
	record.SectionVisibility.Co = false

	exported, err := json.Marshal(record)
	require.NoError(t, err)

	reloaded, err := ParseDocument(exported)
	require.NoError(t, err)

	assert.Equal(t, record, reloaded)
}

func TestParseDocument_UnknownKeysIgnored(t *testing.T) {
	record, err := ParseDocument([]byte(`{"futureField":{"a":1},"fullName":"Ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", record.FullName)
}
