// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import "context"

// EmploymentEmployers ranks employers by workforce size and wage health
// over the selected period.
func (s *Service) EmploymentEmployers(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			employerId,
			AVG(active_employees) AS avg_employees,
			AVG(avg_wage) AS avg_wage,
			MEDIAN(median_wage) AS median_wage,
			AVG(employee_growth_rate) AS avg_employee_growth,
			AVG(wage_growth_rate) AS avg_wage_growth,
			COUNT(DISTINCT month) AS months_active
		FROM employment.employer_health` + whereClause(conditions) + `
		GROUP BY employerId
		ORDER BY avg_employees DESC
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "employment_employers", ttlDetail, f, query, args)
}

// EmploymentTurnover returns per-month hiring and turnover rates across
// employers.
func (s *Service) EmploymentTurnover(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			month,
			SUM(new_hires) AS total_new_hires,
			AVG(turnover_rate) AS avg_turnover_rate,
			AVG(avg_tenure_days) AS avg_tenure_days,
			COUNT(DISTINCT employerId) AS employers_reporting
		FROM employment.turnover_rates` + whereClause(conditions) + `
		GROUP BY month
		ORDER BY month
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "employment_turnover", ttlTrends, f, query, args)
}

// EmploymentStability returns the per-month employment stability profile
// of the participant population.
func (s *Service) EmploymentStability(ctx context.Context, f Filter) (*Result, error) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	conditions, args = monthRange(conditions, args, "month", f)

	query := `
		SELECT
			month,
			COUNT(DISTINCT participantId) AS participants,
			AVG(employment_rate) AS avg_employment_rate,
			AVG(job_changes) AS avg_job_changes,
			AVG(stability_score) AS avg_stability_score,
			AVG(avg_balance) AS avg_balance
		FROM employment.stability` + whereClause(conditions) + `
		GROUP BY month
		ORDER BY month
		LIMIT ?`
	args = append(args, f.Limit)

	return s.rows(ctx, "employment_stability", ttlTrends, f, query, args)
}
