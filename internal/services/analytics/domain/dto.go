// Package domain holds DTOs for the analytics surface
package domain

import "time"

// Dashboard is the headline card set
type Dashboard struct {
	TotalScans      int        `json:"total_scans"`
	MaliciousCount  int        `json:"malicious_count"`
	SuspiciousCount int        `json:"suspicious_count"`
	BenignCount     int        `json:"benign_count"`
	AvgConfidence   float64    `json:"avg_confidence"`
	BatchJobs       int        `json:"batch_jobs"`
	SafelistHits    int        `json:"safelist_hits"`
	LastScanAt      *time.Time `json:"last_scan_at,omitempty"`
}

// TrendPoint is one day in the verdict trend
type TrendPoint struct {
	Day        string `json:"day"`
	Total      int    `json:"total"`
	Malicious  int    `json:"malicious"`
	Suspicious int    `json:"suspicious"`
	Benign     int    `json:"benign"`
}

// TLDRisk ranks a top level domain by observed abuse
// RiskScore weighs malicious hits fully and suspicious at half, as a percentage
type TLDRisk struct {
	TLD        string  `json:"tld"`
	Total      int     `json:"total"`
	Malicious  int     `json:"malicious"`
	Suspicious int     `json:"suspicious"`
	RiskScore  float64 `json:"risk_score"`
}

// HeatmapCell is scan volume for one weekday and hour bucket
type HeatmapCell struct {
	Weekday int `json:"weekday"` // 0 sunday .. 6 saturday
	Hour    int `json:"hour"`    // 0 .. 23
	Count   int `json:"count"`
}

// MethodStat summarizes one classification method
type MethodStat struct {
	Method        string  `json:"method"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}
