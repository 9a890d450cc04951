package repo

import (
	"context"

	"dnsguard/internal/services/analytics/domain"
)

// Heatmap buckets scan volume by weekday and hour in UTC
func (r *queries) Heatmap(ctx context.Context, userID string) ([]domain.HeatmapCell, error) {
	const sql = `
		select
			extract(dow from created_at at time zone 'utc')::int  as weekday,
			extract(hour from created_at at time zone 'utc')::int as hour,
			count(*)                                              as cnt
		from scans
		where user_id = $1
		group by 1, 2
		order by 1, 2
	`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.HeatmapCell, 0, 168)
	for rows.Next() {
		var c domain.HeatmapCell
		if err := rows.Scan(&c.Weekday, &c.Hour, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TLDRisk ranks top level domains by a weighted abuse share.
// Malicious verdicts count fully and suspicious at half weight,
// expressed as a percentage of the tld's scan volume.
func (r *queries) TLDRisk(ctx context.Context, userID string, limit int) ([]domain.TLDRisk, error) {
	const sql = `
		with by_tld as (
			select
				lower(substring(domain from '[^.]+$'))                as tld,
				count(*)                                              as total,
				count(*) filter (where verdict = 'malicious')         as malicious,
				count(*) filter (where verdict = 'suspicious')        as suspicious
			from scans
			where user_id = $1 and position('.' in domain) > 0
			group by 1
		)
		select
			tld, total, malicious, suspicious,
			round(((malicious * 1.0 + suspicious * 0.5) / total * 100)::numeric, 2)::float8 as risk_score
		from by_tld
		order by risk_score desc, total desc
		limit $2
	`
	rows, err := r.q.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TLDRisk, 0, limit)
	for rows.Next() {
		var t domain.TLDRisk
		if err := rows.Scan(&t.TLD, &t.Total, &t.Malicious, &t.Suspicious, &t.RiskScore); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
