package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"dnsguard/internal/services/safelist/domain"
)

var csvHeader = []string{"domain", "tier", "source", "notes", "created_at"}

func renderCSV(entries []domain.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		rec := []string{
			e.Domain,
			e.Tier,
			e.Source,
			e.Notes,
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
