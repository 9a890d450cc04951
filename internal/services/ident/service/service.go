// Package service contains account workflows and token issuance
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/modkit/scope"
	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/logger"

	"dnsguard/internal/services/ident/domain"
	"dnsguard/internal/services/ident/repo"
)

// Service defines the service contract for ident
type Service interface {
	domain.ServicePort
	domain.TokenPort
}

// Config controls token issuance
type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	tokens *TokenManager
	log    *logger.Logger
}

// New creates a new ident service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("ident.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("ident.Service requires a non nil Repo binder")
	}
	if cfg.Secret == "" {
		panic("ident.Service requires a signing secret")
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		tokens: NewTokenManager(cfg.Secret, cfg.AccessTTL, cfg.RefreshTTL),
		log:    logger.Named("ident"),
	}
}

// Register creates an account and signs it in
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) (domain.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return domain.AuthOutput{}, perr.Conflictf("email already registered")
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.AuthOutput{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthOutput{}, err
	}

	u := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  strings.TrimSpace(in.FullName),
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateUser(ctx, u, string(hash)); err != nil {
		return domain.AuthOutput{}, err
	}
	s.audit(ctx, &u.ID, "register", map[string]any{"email": email})

	return s.authOutput(u)
}

// Login verifies credentials and signs the account in
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) (domain.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, hash, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		// same answer as a bad password, no account oracle
		return domain.AuthOutput{}, perr.Unauthorizedf("invalid credentials")
	}
	if !u.IsActive {
		return domain.AuthOutput{}, perr.Unauthorizedf("account disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)) != nil {
		s.audit(ctx, &u.ID, "login_failed", nil)
		return domain.AuthOutput{}, perr.Unauthorizedf("invalid credentials")
	}

	now := time.Now().UTC()
	if err := s.Repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID).Msg("last login update failed")
	}
	u.LastLogin = &now
	s.audit(ctx, &u.ID, "login", nil)

	return s.authOutput(u)
}

// Me returns the caller's account
func (s *Svc) Me(ctx context.Context, userID string) (domain.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// UpdateMe applies profile changes and returns the fresh account
func (s *Svc) UpdateMe(ctx context.Context, userID string, in domain.UpdateMeInput) (domain.User, error) {
	if in.FullName == nil && in.AvatarURL == nil {
		return domain.User{}, perr.Validationf("nothing to update")
	}
	if err := s.Repo.UpdateProfile(ctx, userID, in.FullName, in.AvatarURL); err != nil {
		return domain.User{}, err
	}
	s.audit(ctx, &userID, "profile_updated", nil)
	return s.Repo.GetByID(ctx, userID)
}

// ChangePassword rotates the caller's password after verifying the current one
func (s *Svc) ChangePassword(ctx context.Context, userID string, in domain.ChangePasswordInput) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	_, hash, err := s.Repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.CurrentPassword)) != nil {
		return perr.Unauthorizedf("current password is wrong")
	}
	newHash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, userID, string(newHash)); err != nil {
		return err
	}
	s.audit(ctx, &userID, "password_changed", nil)
	return nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *Svc) Refresh(ctx context.Context, in domain.RefreshInput) (domain.TokenPair, error) {
	uid, _, err := s.tokens.ParseRefresh(in.RefreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	// re-read the account so a role change or deactivation takes effect here
	u, err := s.Repo.GetByID(ctx, uid)
	if err != nil {
		return domain.TokenPair{}, perr.Unauthorizedf("invalid token")
	}
	if !u.IsActive {
		return domain.TokenPair{}, perr.Unauthorizedf("account disabled")
	}
	return s.tokenPair(u)
}

// ParseAccess implements domain.TokenPort for the auth middleware
func (s *Svc) ParseAccess(token string) (string, string, error) {
	return s.tokens.ParseAccess(token)
}

func (s *Svc) authOutput(u domain.User) (domain.AuthOutput, error) {
	pair, err := s.tokenPair(u)
	if err != nil {
		return domain.AuthOutput{}, err
	}
	return domain.AuthOutput{User: u, Tokens: pair}, nil
}

func (s *Svc) tokenPair(u domain.User) (domain.TokenPair, error) {
	access, refresh, err := s.tokens.IssuePair(u.ID, u.Email, u.Role)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

// audit writes a best-effort activity row with request metadata from scope
func (s *Svc) audit(ctx context.Context, userID *string, action string, details map[string]any) {
	ip, _ := scope.Get(ctx, "ip")
	ua, _ := scope.Get(ctx, "user_agent")
	err := s.Repo.InsertActivity(ctx, domain.Activity{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IP:        ip,
		UserAgent: ua,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", action).Msg("activity write failed")
	}
}
