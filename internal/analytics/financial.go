// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import "context"

// FinancialTrajectories returns the per-month distribution of participant
// balances: how the simulated population's finances evolve over time.
func (s *Service) FinancialTrajectories(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			month,
			COUNT(DISTINCT participantId) AS participants,
			AVG(avg_balance) AS avg_balance,
			MEDIAN(avg_balance) AS median_balance,
			MIN(min_balance) AS min_balance,
			MAX(max_balance) AS max_balance,
			AVG(balance_change_pct) AS avg_balance_change_pct,
			AVG(total_budget) AS avg_total_budget
		FROM financial.participant_trajectories` + whereClause(conditions) + `
		GROUP BY month
		ORDER BY month
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "financial_trajectories", ttlTrends, f, query, args)
}

// FinancialWages returns hourly wage statistics by month and education
// level.
func (s *Service) FinancialWages(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	conditions, args = monthRange(conditions, args, "month", f)
	if f.EducationLevel != EducationAll {
		conditions = append(conditions, "educationLevel = ?")
		args = append(args, string(f.EducationLevel))
	}

	query := `
		SELECT
			month,
			educationLevel,
			AVG(avg_hourly_rate) AS avg_hourly_rate,
			MEDIAN(median_hourly_rate) AS median_hourly_rate,
			MIN(min_hourly_rate) AS min_hourly_rate,
			MAX(max_hourly_rate) AS max_hourly_rate,
			SUM(employed_count) AS employed_count
		FROM financial.wage_analysis` + whereClause(conditions) + `
		GROUP BY month, educationLevel
		ORDER BY month, educationLevel
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "financial_wages", ttlDetail, f, query, args)
}

// FinancialCostOfLiving returns rent trends against housed participant
// counts.
func (s *Service) FinancialCostOfLiving(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			month,
			avg_rent,
			median_rent,
			housed_participants
		FROM financial.cost_living_trends` + whereClause(conditions) + `
		ORDER BY month
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "financial_cost_of_living", ttlTrends, f, query, args)
}
