// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import "context"

// BusinessTrends returns per-month visit and revenue trends, optionally
// split down to a single venue category.
func (s *Service) BusinessTrends(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	conditions, args = monthRange(conditions, args, "month", f)
	if f.VenueType != VenueAll {
		conditions = append(conditions, "venueType = ?")
		args = append(args, string(f.VenueType))
	}

	query := `
		SELECT
			month,
			venueType,
			COUNT(DISTINCT venueId) AS active_venues,
			SUM(visit_count) AS total_visits,
			SUM(revenue_estimate) AS total_revenue,
			AVG(revenue_estimate) AS avg_venue_revenue
		FROM business.trends` + whereClause(conditions) + `
		GROUP BY month, venueType
		ORDER BY month, venueType
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "business_trends", ttlTrends, f, query, args)
}

// BusinessVenues ranks individual venues by revenue over the selected
// period.
func (s *Service) BusinessVenues(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	conditions, args = monthRange(conditions, args, "month", f)
	if f.VenueType != VenueAll {
		conditions = append(conditions, "venueType = ?")
		args = append(args, string(f.VenueType))
	}

	query := `
		SELECT
			venueId,
			venueType,
			SUM(visit_count) AS total_visits,
			SUM(revenue_estimate) AS total_revenue,
			AVG(revenue_estimate) AS avg_monthly_revenue,
			COUNT(DISTINCT month) AS months_active
		FROM business.venue_performance` + whereClause(conditions) + `
		GROUP BY venueId, venueType
		ORDER BY total_revenue DESC
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "business_venues", ttlDetail, f, query, args)
}

// BusinessPatterns returns customer visit distribution by hour of day and
// day of week, for the dashboard heatmap.
func (s *Service) BusinessPatterns(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	conditions, args = monthRange(conditions, args, "month", f)
	if f.VenueType != VenueAll {
		conditions = append(conditions, "venueType = ?")
		args = append(args, string(f.VenueType))
	}

	query := `
		SELECT
			day_of_week,
			hour_of_day,
			venueType,
			SUM(visit_count) AS total_visits,
			COUNT(DISTINCT venueId) AS venues_visited
		FROM business.customer_patterns` + whereClause(conditions) + `
		GROUP BY day_of_week, hour_of_day, venueType
		ORDER BY day_of_week, hour_of_day
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "business_patterns", ttlDetail, f, query, args)
}
