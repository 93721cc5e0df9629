// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterDefaults(t *testing.T) {
	f, verr := ParseFilter(url.Values{})
	require.Nil(t, verr)
	assert.Empty(t, f.FromMonth)
	assert.Empty(t, f.ToMonth)
	assert.Equal(t, VenueAll, f.VenueType)
	assert.Equal(t, EducationAll, f.EducationLevel)
	assert.Equal(t, defaultLimit, f.Limit)
}

func TestParseFilterFullQuery(t *testing.T) {
	f, verr := ParseFilter(url.Values{
		"from":           {"2025-01"},
		"to":             {"2025-06"},
		"venueType":      {"Restaurant"},
		"educationLevel": {"Bachelors"},
		"limit":          {"50"},
	})
	require.Nil(t, verr)
	assert.Equal(t, "2025-01", f.FromMonth)
	assert.Equal(t, "2025-06", f.ToMonth)
	assert.Equal(t, VenueRestaurant, f.VenueType)
	assert.Equal(t, EducationBachelors, f.EducationLevel)
	assert.Equal(t, 50, f.Limit)
}

func TestParseFilterCoercesUnknownCategoricals(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"unknown venue", url.Values{"venueType": {"Nightclub"}}},
		{"lowercase venue", url.Values{"venueType": {"restaurant"}}},
		{"unknown education", url.Values{"educationLevel": {"PhD"}}},
		{"injection attempt", url.Values{"venueType": {"Pub'; DROP TABLE business.trends;--"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, verr := ParseFilter(tt.query)
			require.Nil(t, verr)
			assert.Equal(t, VenueAll, f.VenueType)
			assert.Equal(t, EducationAll, f.EducationLevel)
		})
	}
}

func TestParseFilterRejectsMalformedMonths(t *testing.T) {
	for _, raw := range []string{"2025", "2025-13", "01-2025", "2025-1", "not-a-month"} {
		t.Run(raw, func(t *testing.T) {
			_, verr := ParseFilter(url.Values{"from": {raw}})
			require.NotNil(t, verr)
			assert.Equal(t, "VALIDATION_ERROR", verr.ToAPIError().Code)
		})
	}
}

func TestParseLimitLeniency(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", defaultLimit},
		{"abc", defaultLimit},
		{"0", defaultLimit},
		{"-5", defaultLimit},
		{"250", 250},
		{"99999", maxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.raw))
		})
	}
}

func TestFilterParamsOmitDefaults(t *testing.T) {
	f := Filter{VenueType: VenueAll, EducationLevel: EducationAll, Limit: defaultLimit}
	assert.Empty(t, f.Params())

	f = Filter{
		FromMonth:      "2025-01",
		VenueType:      VenuePub,
		EducationLevel: EducationAll,
		Limit:          25,
	}
	assert.Equal(t, map[string]string{
		"from":      "2025-01",
		"venueType": "Pub",
		"limit":     "25",
	}, f.Params())
}
