package domain

// ExportRow is one ranked venue in a flat export.
type ExportRow struct {
	Rank          int     `json:"rank"`
	GroupFit      int     `json:"group_fit"`
	VenueID       string  `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	MusicGenre    string  `json:"music_genre"`
	Status        string  `json:"status"`
	WaitTimeLabel string  `json:"wait_time"`
	DistanceLabel string  `json:"distance"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
}
