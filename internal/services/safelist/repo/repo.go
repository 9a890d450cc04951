// Package repo implements safelist persistence over postgres
package repo

import (
	"context"
	"errors"
	"fmt"

	"dnsguard/internal/modkit/repokit"
	perr "dnsguard/internal/platform/errors"
	"dnsguard/internal/platform/store"
	"dnsguard/internal/services/safelist/domain"
)

// Repo is the safelist persistence surface
type Repo interface {
	List(ctx context.Context, q domain.Query, limit, offset int) ([]domain.Entry, int, error)
	Get(ctx context.Context, id string) (domain.Entry, error)
	Insert(ctx context.Context, e domain.Entry) (bool, error)
	Update(ctx context.Context, id string, tier, notes *string) (domain.Entry, error)
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]domain.Entry, error)
	Tiers(ctx context.Context) (map[string]string, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// PG binds Repo against postgres
type PG struct{}

// NewPG returns a postgres binder for the safelist repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

const entryCols = "id, domain, tier, source, added_by, notes, created_at"

func scanEntry(row store.Row) (domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(&e.ID, &e.Domain, &e.Tier, &e.Source, &e.AddedBy, &e.Notes, &e.CreatedAt)
	return e, err
}

// List pages through safelist entries with optional tier and substring filters
func (r *queries) List(ctx context.Context, q domain.Query, limit, offset int) ([]domain.Entry, int, error) {
	conds := []string{"true"}
	args := []any{}
	n := 0

	if q.Tier != "" {
		n++
		conds = append(conds, fmt.Sprintf("tier = $%d", n))
		args = append(args, q.Tier)
	}
	if q.Search != "" {
		n++
		conds = append(conds, fmt.Sprintf("domain ilike '%%' || $%d || '%%'", n))
		args = append(args, q.Search)
	}

	where := conds[0]
	for _, c := range conds[1:] {
		where += " and " + c
	}

	var total int
	countSQL := "select count(*) from safelist_domains where " + where
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL := fmt.Sprintf(
		"select %s from safelist_domains where %s order by domain asc limit $%d offset $%d",
		entryCols, where, n+1, n+2,
	)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.Entry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

// Get fetches one entry by id
func (r *queries) Get(ctx context.Context, id string) (domain.Entry, error) {
	sql := "select " + entryCols + " from safelist_domains where id = $1"
	e, err := store.One(ctx, r.q, scanEntry, sql, id)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Entry{}, perr.NotFoundf("safelist entry %s not found", id)
	}
	return e, err
}

// Insert adds an entry and reports whether a row was written.
// Duplicate domains are left untouched rather than raising an error.
func (r *queries) Insert(ctx context.Context, e domain.Entry) (bool, error) {
	const sql = `
		insert into safelist_domains (id, domain, tier, source, added_by, notes, created_at)
		values ($1, $2, $3, $4, $5, $6, $7)
		on conflict (domain) do nothing
	`
	tag, err := r.q.Exec(ctx, sql, e.ID, e.Domain, e.Tier, e.Source, e.AddedBy, e.Notes, e.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Update patches tier and notes, returning the fresh row
func (r *queries) Update(ctx context.Context, id string, tier, notes *string) (domain.Entry, error) {
	sql := `
		update safelist_domains
		set tier = coalesce($2, tier), notes = coalesce($3, notes)
		where id = $1
		returning ` + entryCols
	e, err := store.One(ctx, r.q, scanEntry, sql, id, tier, notes)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Entry{}, perr.NotFoundf("safelist entry %s not found", id)
	}
	return e, err
}

// Delete removes one entry by id
func (r *queries) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, "delete from safelist_domains where id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("safelist entry %s not found", id)
	}
	return nil
}

// All returns every entry ordered by domain, used for exports
func (r *queries) All(ctx context.Context) ([]domain.Entry, error) {
	sql := "select " + entryCols + " from safelist_domains order by domain asc"
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Tiers returns the domain to tier map the classifier snapshots from
func (r *queries) Tiers(ctx context.Context) (map[string]string, error) {
	rows, err := r.q.Query(ctx, "select domain, tier from safelist_domains")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string, 256)
	for rows.Next() {
		var d, t string
		if err := rows.Scan(&d, &t); err != nil {
			return nil, err
		}
		out[d] = t
	}
	return out, rows.Err()
}

// Stats aggregates safelist composition and the scan hit rate
func (r *queries) Stats(ctx context.Context) (domain.Stats, error) {
	st := domain.Stats{ByTier: map[string]int{}, BySource: map[string]int{}}

	rows, err := r.q.Query(ctx, "select tier, source, count(*) from safelist_domains group by tier, source")
	if err != nil {
		return domain.Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var tier, source string
		var cnt int
		if err := rows.Scan(&tier, &source, &cnt); err != nil {
			return domain.Stats{}, err
		}
		st.Total += cnt
		st.ByTier[tier] += cnt
		st.BySource[source] += cnt
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, err
	}

	const hitSQL = `
		select
			count(*),
			count(*) filter (where method = 'safelist')
		from scans
	`
	if err := r.q.QueryRow(ctx, hitSQL).Scan(&st.TotalScans, &st.SafelistHits); err != nil {
		return domain.Stats{}, err
	}
	if st.TotalScans > 0 {
		st.HitRate = float64(st.SafelistHits) / float64(st.TotalScans) * 100
	}
	return st, nil
}
