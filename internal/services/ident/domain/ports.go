// Package domain defines the core types and contracts for the ident service
package domain

import "context"

// ServicePort defines the ident service contract
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, in LoginInput) (AuthOutput, error)
	Me(ctx context.Context, userID string) (User, error)
	UpdateMe(ctx context.Context, userID string, in UpdateMeInput) (User, error)
	ChangePassword(ctx context.Context, userID string, in ChangePasswordInput) error
	Refresh(ctx context.Context, in RefreshInput) (TokenPair, error)
}

// TokenPort verifies an access token and returns its principal
type TokenPort interface {
	ParseAccess(token string) (userID, role string, err error)
}
