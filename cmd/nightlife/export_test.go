package main

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/nightlife-navigator/internal/domain"
)

func TestRun_ExportCSV(t *testing.T) {
	path := writeFile(t, "group.yaml", sampleGroup)

	out, err := runCLI(t, "export", "-group", path)

	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, csvHeaders, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "The Velvet Room", records[1][3])
	assert.Equal(t, "Live Jazz", findRecord(records, "Paul's Baby Grand")[4])
}

func TestRun_ExportJSON(t *testing.T) {
	path := writeFile(t, "group.yaml", sampleGroup)

	out, err := runCLI(t, "export", "-group", path, "-format", "json")

	require.NoError(t, err)
	var rows []domain.ExportRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 10)
	assert.Equal(t, "The Velvet Room", rows[0].VenueName)
	assert.Equal(t, 10, rows[9].Rank)
}

func TestRun_ExportRejectsUnknownFormat(t *testing.T) {
	path := writeFile(t, "group.yaml", sampleGroup)

	_, err := runCLI(t, "export", "-group", path, "-format", "xml")

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRowToCSVRecord(t *testing.T) {
	got := rowToCSVRecord(domain.ExportRow{
		Rank: 2, GroupFit: 97, VenueID: "id", VenueName: "The Jazz Corner",
		MusicGenre: "Live Jazz", Status: "Moderate", WaitTimeLabel: "5-10 min",
		DistanceLabel: "1.2 mi", Lat: 35.7721, Lon: -78.6386,
	})

	assert.Equal(t, []string{"2", "97", "id", "The Jazz Corner", "Live Jazz", "Moderate", "5-10 min", "1.2 mi", "35.7721", "-78.6386"}, got)
}

func findRecord(records [][]string, name string) []string {
	for _, r := range records {
		if r[3] == name {
			return r
		}
	}
	return make([]string, len(csvHeaders))
}
