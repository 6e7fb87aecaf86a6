package domain

import "time"

// RunStatus enumerates per-section outcomes.
type RunStatus string

const (
	StatusComplete RunStatus = "complete"
	StatusSkipped  RunStatus = "skipped"
)

// RunRecord is the persisted snapshot of one section run.
type RunRecord struct {
	Section      string
	PageFile     string
	ImageFile    string
	Theme        string
	StoryCount   int
	LocatedCount int
	Status       RunStatus
}

// ArchiveEntry describes one timestamped page copy found in the archive.
type ArchiveEntry struct {
	PageFile  string
	Title     string
	Timestamp time.Time
}
