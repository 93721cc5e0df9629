// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyIsOrderIndependent(t *testing.T) {
	a := GenerateKey("business_trends", map[string]string{
		"from":      "2025-01",
		"to":        "2025-06",
		"venueType": "Restaurant",
	})
	b := GenerateKey("business_trends", map[string]string{
		"venueType": "Restaurant",
		"to":        "2025-06",
		"from":      "2025-01",
	})
	assert.Equal(t, a, b)
}

func TestGenerateKeyDistinguishesParams(t *testing.T) {
	base := map[string]string{"from": "2025-01", "to": "2025-06"}
	other := map[string]string{"from": "2025-01", "to": "2025-07"}
	assert.NotEqual(t,
		GenerateKey("business_trends", base),
		GenerateKey("business_trends", other),
	)
}

func TestGenerateKeyDistinguishesSeparatorValues(t *testing.T) {
	// A value embedding the pair separators must not fold two different
	// parameter sets onto one key.
	assert.NotEqual(t,
		GenerateKey("business_trends", map[string]string{"a": "1|b:2"}),
		GenerateKey("business_trends", map[string]string{"a": "1", "b": "2"}),
	)
}

func TestGenerateKeyDistinguishesNamespaces(t *testing.T) {
	params := map[string]string{"from": "2025-01"}
	assert.NotEqual(t,
		GenerateKey("business_trends", params),
		GenerateKey("financial_wages", params),
	)
}

func TestGenerateKeyNamespacePrefix(t *testing.T) {
	key := GenerateKey("employment_turnover", map[string]string{"limit": "50"})
	assert.Equal(t, "employment_turnover", namespaceOf(key))
	assert.Regexp(t, `^employment_turnover:[0-9a-f]{32}$`, key)
}

func TestGenerateKeyEmptyParams(t *testing.T) {
	assert.Equal(t, "summary_overview:all", GenerateKey("summary_overview", nil))
	assert.Equal(t, "summary_overview:all", GenerateKey("summary_overview", map[string]string{}))
}

func TestNamespaceOf(t *testing.T) {
	assert.Equal(t, "business_trends", namespaceOf("business_trends:abc123"))
	assert.Equal(t, "nocolon", namespaceOf("nocolon"))
}
