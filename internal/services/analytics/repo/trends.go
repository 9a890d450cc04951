package repo

import (
	"context"

	"dnsguard/internal/services/analytics/domain"
)

// Trends returns one point per day for the trailing window.
// Days with no scans are absent rather than zero filled; the chart
// layer treats gaps as zeroes.
func (r *queries) Trends(ctx context.Context, userID string, days int) ([]domain.TrendPoint, error) {
	const sql = `
		select
			to_char(date_trunc('day', created_at), 'YYYY-MM-DD')      as day,
			count(*)                                                  as total,
			count(*) filter (where verdict = 'malicious')             as malicious,
			count(*) filter (where verdict = 'suspicious')            as suspicious,
			count(*) filter (where verdict = 'benign')                as benign
		from scans
		where user_id = $1
		  and created_at >= date_trunc('day', now() at time zone 'utc') - ($2::int - 1) * interval '1 day'
		group by 1
		order by 1 asc
	`
	rows, err := r.q.Query(ctx, sql, userID, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TrendPoint, 0, days)
	for rows.Next() {
		var p domain.TrendPoint
		if err := rows.Scan(&p.Day, &p.Total, &p.Malicious, &p.Suspicious, &p.Benign); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
