// Package repo provides postgres access for accounts and the activity trail
package repo

import (
	"context"
	"errors"
	"time"

	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/store"

	"dnsguard/internal/modkit/repokit"
	"dnsguard/internal/services/ident/domain"
)

// Repo defines the repository contract for ident
type Repo interface {
	CreateUser(ctx context.Context, u domain.User, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (domain.User, string, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, fullName, avatarURL *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	InsertActivity(ctx context.Context, a domain.Activity) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const userCols = `id::text, email, full_name, role, avatar_url, is_active, created_at, last_login`

func scanUser(row store.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.LastLogin)
	return u, err
}

func (r *queries) CreateUser(ctx context.Context, u domain.User, passwordHash string) error {
	const sql = `
insert into users (id, email, password_hash, full_name, role, avatar_url, is_active, created_at)
values ($1, lower($2), $3, $4, $5, $6, $7, $8)
`
	_, err := r.q.Exec(ctx, sql,
		u.ID, u.Email, passwordHash, u.FullName, u.Role, u.AvatarURL, u.IsActive, u.CreatedAt,
	)
	return err
}

type userWithHash struct {
	user domain.User
	hash string
}

func (r *queries) GetByEmail(ctx context.Context, email string) (domain.User, string, error) {
	const sql = `select ` + userCols + `, password_hash from users where email = lower($1)`
	uh, err := store.One(ctx, r.q, func(row store.Row) (userWithHash, error) {
		var v userWithHash
		err := row.Scan(
			&v.user.ID, &v.user.Email, &v.user.FullName, &v.user.Role, &v.user.AvatarURL,
			&v.user.IsActive, &v.user.CreatedAt, &v.user.LastLogin, &v.hash,
		)
		return v, err
	}, sql, email)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.User{}, "", perr.NotFoundf("account not found")
	}
	return uh.user, uh.hash, err
}

func (r *queries) GetByID(ctx context.Context, id string) (domain.User, error) {
	const sql = `select ` + userCols + ` from users where id = $1`
	u, err := store.One(ctx, r.q, scanUser, sql, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.User{}, perr.NotFoundf("account not found")
	}
	return u, err
}

func (r *queries) UpdateProfile(ctx context.Context, id string, fullName, avatarURL *string) error {
	const sql = `
update users
set full_name = coalesce($2, full_name), avatar_url = coalesce($3, avatar_url)
where id = $1
`
	_, err := r.q.Exec(ctx, sql, id, fullName, avatarURL)
	return err
}

func (r *queries) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.q.Exec(ctx, `update users set password_hash = $2 where id = $1`, id, passwordHash)
	return err
}

func (r *queries) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `update users set last_login = $2 where id = $1`, id, at)
	return err
}

func (r *queries) InsertActivity(ctx context.Context, a domain.Activity) error {
	const sql = `
insert into activity_logs (user_id, action, details, ip, user_agent)
values ($1, $2, $3, $4, $5)
`
	_, err := r.q.Exec(ctx, sql, a.UserID, a.Action, a.Details, a.IP, a.UserAgent)
	return err
}
