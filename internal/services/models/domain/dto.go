// Package domain holds DTOs for the model introspection surface
package domain

import "time"

// Info describes the serving classifier
type Info struct {
	ModelName    string `json:"model_name"`
	ModelVersion string `json:"model_version"`
	Degraded     bool   `json:"degraded"`
	SafelistSize int    `json:"safelist_size"`
	FeatureCount int    `json:"feature_count"`
}

// ReloadReport is the outcome of a safelist snapshot reload
type ReloadReport struct {
	SafelistSize int       `json:"safelist_size"`
	ReloadedAt   time.Time `json:"reloaded_at"`
}
