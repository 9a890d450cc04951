package service

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"dnsguard/internal/services/history/domain"
)

func sampleRows() []domain.ScanResult {
	job := "job-1"
	return []domain.ScanResult{
		{
			ID:         "scan-1",
			Domain:     "evil.tk",
			Verdict:    "malicious",
			Confidence: 0.91,
			Method:     "heuristic",
			Reason:     "high entropy hostname",
			LatencyMS:  1.25,
			BatchJobID: &job,
			CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         "scan-2",
			Domain:     "fine, with comma.org",
			Verdict:    "benign",
			Confidence: 0.97,
			Method:     "heuristic",
			Reason:     "no strong risk signals",
			CreatedAt:  time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	body, err := renderCSV(sampleRows())
	if err != nil {
		t.Fatalf("renderCSV: %v", err)
	}

	recs, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("rows got=%d want=3 (header + 2)", len(recs))
	}
	if recs[0][0] != "id" || recs[0][len(recs[0])-1] != "created_at" {
		t.Fatalf("header mismatch: %v", recs[0])
	}
	if recs[1][1] != "evil.tk" || recs[1][7] != "job-1" {
		t.Fatalf("row mismatch: %v", recs[1])
	}
	// a domain containing a comma survives the round trip
	if recs[2][1] != "fine, with comma.org" {
		t.Fatalf("comma field mangled: %v", recs[2])
	}
	if recs[2][7] != "" {
		t.Fatalf("nil job id should render empty, got %q", recs[2][7])
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	body, err := renderJSON(sampleRows())
	if err != nil {
		t.Fatalf("renderJSON: %v", err)
	}
	var back []domain.ScanResult
	if err := json.Unmarshal(body, &back); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(back) != 2 || back[0].Domain != "evil.tk" {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestRenderJSON_EmptyIsArray(t *testing.T) {
	t.Parallel()

	body, err := renderJSON(nil)
	if err != nil {
		t.Fatalf("renderJSON: %v", err)
	}
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("empty export should be [], got %q", string(body))
	}
}
