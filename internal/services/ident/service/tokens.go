package service

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	perr "dnsguard/internal/platform/errors"
)

// token kinds stamped into the typ claim so one token cannot stand in for the other
const (
	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

// TokenManager signs and verifies HS256 access and refresh tokens
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a manager, zero TTLs fall back to 24h and 7d
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// AccessTTL reports the access token lifetime
func (tm *TokenManager) AccessTTL() time.Duration { return tm.accessTTL }

// IssuePair mints a fresh access and refresh token for the principal
func (tm *TokenManager) IssuePair(userID, email, role string) (access, refresh string, err error) {
	if access, err = tm.sign(userID, email, role, tokenAccess, tm.accessTTL); err != nil {
		return "", "", err
	}
	if refresh, err = tm.sign(userID, email, role, tokenRefresh, tm.refreshTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (tm *TokenManager) sign(userID, email, role, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtstd.MapClaims{
		"jti":   uuid.NewString(),
		"sub":   userID,
		"email": email,
		"role":  role,
		"typ":   typ,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims).SignedString(tm.secret)
}

// ParseAccess verifies an access token and returns its principal
func (tm *TokenManager) ParseAccess(token string) (userID, role string, err error) {
	return tm.parse(token, tokenAccess)
}

// ParseRefresh verifies a refresh token and returns its principal
func (tm *TokenManager) ParseRefresh(token string) (userID, role string, err error) {
	return tm.parse(token, tokenRefresh)
}

func (tm *TokenManager) parse(token, wantTyp string) (string, string, error) {
	tok, err := jwtstd.Parse(token, func(t *jwtstd.Token) (any, error) {
		if _, ok := t.Method.(*jwtstd.SigningMethodHMAC); !ok {
			return nil, perr.Unauthorizedf("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", "", perr.Unauthorizedf("invalid token")
	}
	claims, ok := tok.Claims.(jwtstd.MapClaims)
	if !ok {
		return "", "", perr.Unauthorizedf("invalid token")
	}
	if typ, _ := claims["typ"].(string); typ != wantTyp {
		return "", "", perr.Unauthorizedf("wrong token type")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return "", "", perr.Unauthorizedf("invalid token")
	}
	return sub, role, nil
}
