package domain

// SingleInput is the payload for a synchronous scan
type SingleInput struct {
	Domain      string `json:"domain" validate:"required,min=1,max=253" example:"example.com"`
	UseSafelist *bool  `json:"use_safelist,omitempty" example:"true"`
}

// BatchInput is the payload for submitting a batch job
type BatchInput struct {
	Domains     []string `json:"domains" validate:"required" example:"example.com,evil.tk"`
	Filename    string   `json:"filename,omitempty" validate:"omitempty,max=255" example:"domains.csv"`
	UseSafelist *bool    `json:"use_safelist,omitempty" example:"true"`
}

// BatchAccepted is returned when a job is queued
type BatchAccepted struct {
	JobID        string `json:"job_id"`
	Status       string `json:"status"`
	TotalDomains int    `json:"total_domains"`
}

// ResultsQuery carries pagination for job results
type ResultsQuery struct {
	Page     int
	PageSize int
}
