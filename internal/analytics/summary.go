// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import (
	"context"

	"github.com/econoscope/econoscope/internal/cache"
	"github.com/econoscope/econoscope/internal/serialize"
)

// SummaryOverview returns the cross-domain dashboard header: one snapshot
// per domain plus the dataset's period coverage. The endpoint takes no
// filters, so all callers share a single cache entry.
func (s *Service) SummaryOverview(ctx context.Context) (map[string]interface{}, bool, error) {
	key := cache.GenerateKey("summary_overview", nil)

	var cached map[string]interface{}
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, true, nil
	}

	overview := make(map[string]interface{}, 4)
	sections := []struct {
		name  string
		query string
	}{
		{"business", "SELECT * FROM summaries.business_summary"},
		{"financial", "SELECT * FROM summaries.financial_summary"},
		{"employment", "SELECT * FROM summaries.employment_summary"},
		{"coverage", `
			SELECT
				MIN(month) AS first_month,
				MAX(month) AS latest_month,
				COUNT(DISTINCT month) AS month_count
			FROM summaries.monthly_trends`},
	}
	for _, section := range sections {
		row, err := s.store.QueryOne(ctx, section.query)
		if err != nil {
			return nil, false, classifyStoreError(err)
		}
		overview[section.name] = serialize.Normalize(row)
	}

	s.cache.SetJSON(ctx, key, overview, ttlSummary)
	return overview, false, nil
}

// SummaryMonthly returns the month-by-month headline trend line used by
// the landing chart.
func (s *Service) SummaryMonthly(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			month,
			active_venues,
			total_visits,
			avg_participant_balance,
			active_employers,
			total_employed
		FROM summaries.monthly_trends` + whereClause(conditions) + `
		ORDER BY month
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "summary_monthly", ttlSummary, f, query, args)
}

// DatasetCoverage reports the latest loaded month and row counts for the
// health endpoint. Uncached: health checks must observe the live store.
func (s *Service) DatasetCoverage(ctx context.Context) (map[string]interface{}, error) {
	row, err := s.store.QueryOne(ctx, `
		SELECT
			MAX(month) AS latest_month,
			COUNT(DISTINCT month) AS month_count,
			(SELECT COUNT(*) FROM business.trends) AS business_rows,
			(SELECT COUNT(*) FROM financial.participant_trajectories) AS financial_rows
		FROM summaries.monthly_trends`)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if row == nil {
		return nil, nil
	}
	normalized, _ := serialize.Normalize(row).(map[string]interface{})
	return normalized, nil
}
