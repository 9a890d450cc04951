package domain

// CreateInput adds one domain to the safelist
type CreateInput struct {
	Domain string `json:"domain" validate:"required,min=1,max=253"`
	Tier   string `json:"tier" validate:"required,oneof=tier1 tier2 tier3"`
	Notes  string `json:"notes,omitempty" validate:"max=500"`
}

// UpdateInput changes tier or notes on an existing entry
type UpdateInput struct {
	Tier  *string `json:"tier,omitempty" validate:"omitempty,oneof=tier1 tier2 tier3"`
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ImportInput bulk loads safelist entries
type ImportInput struct {
	Entries []CreateInput `json:"entries" validate:"required,max=1000,dive"`
}

// Query filters a safelist listing
type Query struct {
	Tier     string
	Search   string
	Page     int
	PageSize int
}
