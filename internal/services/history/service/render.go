package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"

	"dnsguard/internal/services/history/domain"
)

var csvHeader = []string{
	"id", "domain", "verdict", "confidence", "method", "reason",
	"latency_ms", "batch_job_id", "created_at",
}

func renderCSV(rows []domain.ScanResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, s := range rows {
		jobID := ""
		if s.BatchJobID != nil {
			jobID = *s.BatchJobID
		}
		rec := []string{
			s.ID,
			s.Domain,
			s.Verdict,
			strconv.FormatFloat(s.Confidence, 'f', 4, 64),
			s.Method,
			s.Reason,
			strconv.FormatFloat(s.LatencyMS, 'f', 3, 64),
			jobID,
			s.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderJSON(rows []domain.ScanResult) ([]byte, error) {
	if rows == nil {
		rows = []domain.ScanResult{}
	}
	return json.MarshalIndent(rows, "", "  ")
}
