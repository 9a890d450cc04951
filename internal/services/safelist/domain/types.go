// Package domain holds safelist types and ports
package domain

import "time"

// Sources a safelist row can come from
const (
	SourceSystem = "system"
	SourceUser   = "user"
	SourceImport = "import"
)

// Entry is one safelisted domain
type Entry struct {
	ID        string    `json:"id"`
	Domain    string    `json:"domain"`
	Tier      string    `json:"tier"`
	Source    string    `json:"source"`
	AddedBy   *string   `json:"added_by,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes the safelist and how often it short circuits scans
type Stats struct {
	Total        int            `json:"total"`
	ByTier       map[string]int `json:"by_tier"`
	BySource     map[string]int `json:"by_source"`
	SafelistHits int            `json:"safelist_hits"`
	TotalScans   int            `json:"total_scans"`
	HitRate      float64        `json:"safelist_hit_rate"`
}

// ImportReport is the outcome of a bulk import
type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
