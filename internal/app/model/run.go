package model

import "time"

// RunRecord is the persisted trace of one pipeline run. Only metadata is
// stored; transcript text and generated posts never reach the database.
type RunRecord struct {
	ID            int
	Source        string
	SourceKind    string
	AudioFileName string
	AudioDuration int
	Language      string
	Platforms     string
	PostCount     int
	HasError      int
	ErrorMessage  string
	CreatedAt     time.Time
}
