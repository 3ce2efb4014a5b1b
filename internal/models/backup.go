package models

import "time"

// BackupVersion is the version written into exported backup documents.
// Imports accept any numeric version as long as the document shape matches.
const BackupVersion = 1

// Backup is the export/import document exchanged at the storage boundary.
type Backup struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Problems   []Problem `json:"problems"`
}
