// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package analytics

import (
	"net/url"
	"strconv"

	"github.com/econoscope/econoscope/internal/validation"
)

// VenueType is the allow-listed venue category filter. Only these constants
// ever reach SQL text; everything else coerces to VenueAll.
type VenueType string

const (
	VenueAll        VenueType = "all"
	VenueRestaurant VenueType = "Restaurant"
	VenuePub        VenueType = "Pub"
)

// ParseVenueType coerces a raw query value to a known venue type. Unknown
// values mean "no filter" rather than an error, so older dashboard builds
// that send retired categories keep working.
func ParseVenueType(raw string) VenueType {
	switch VenueType(raw) {
	case VenueRestaurant, VenuePub:
		return VenueType(raw)
	default:
		return VenueAll
	}
}

// EducationLevel is the allow-listed education filter.
type EducationLevel string

const (
	EducationAll        EducationLevel = "all"
	EducationLow        EducationLevel = "Low"
	EducationHighSchool EducationLevel = "HighSchool"
	EducationBachelors  EducationLevel = "Bachelors"
	EducationGraduate   EducationLevel = "Graduate"
)

// ParseEducationLevel coerces a raw query value to a known education level,
// defaulting to "all" for anything unrecognized.
func ParseEducationLevel(raw string) EducationLevel {
	switch EducationLevel(raw) {
	case EducationLow, EducationHighSchool, EducationBachelors, EducationGraduate:
		return EducationLevel(raw)
	default:
		return EducationAll
	}
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// Filter carries the validated query filters shared by every analytics
// endpoint. Zero-value month fields mean "unbounded"; VenueAll and
// EducationAll mean "unfiltered". Immutable after ParseFilter.
type Filter struct {
	FromMonth      string
	ToMonth        string
	VenueType      VenueType
	EducationLevel EducationLevel
	Limit          int
}

// filterRequest is the validation shape for raw filter input.
type filterRequest struct {
	From  string `validate:"omitempty,month"`
	To    string `validate:"omitempty,month"`
	Limit int    `validate:"min=1,max=1000"`
}

// ParseFilter extracts and validates filters from a request query.
//
// Categorical parameters are lenient: unknown values fall back to their
// defaults. Month parameters are strict, since a malformed period cannot be
// defaulted without silently changing the question the caller asked;
// malformed months surface as a validation error for the route layer to
// turn into a 400.
func ParseFilter(q url.Values) (Filter, *validation.RequestValidationError) {
	f := Filter{
		FromMonth:      q.Get("from"),
		ToMonth:        q.Get("to"),
		VenueType:      ParseVenueType(q.Get("venueType")),
		EducationLevel: ParseEducationLevel(q.Get("educationLevel")),
		Limit:          parseLimit(q.Get("limit")),
	}

	if err := validation.ValidateStruct(&filterRequest{
		From:  f.FromMonth,
		To:    f.ToMonth,
		Limit: f.Limit,
	}); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// parseLimit is lenient like the categorical filters: garbage and
// out-of-range values clamp to sane bounds instead of erroring.
func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if n < 1 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// Params returns the filter as name/value pairs for cache key derivation.
// Only non-default fields are included, so a request that spells out the
// defaults shares a cache entry with one that omits them.
func (f Filter) Params() map[string]string {
	params := make(map[string]string, 5)
	if f.FromMonth != "" {
		params["from"] = f.FromMonth
	}
	if f.ToMonth != "" {
		params["to"] = f.ToMonth
	}
	if f.VenueType != VenueAll {
		params["venueType"] = string(f.VenueType)
	}
	if f.EducationLevel != EducationAll {
		params["educationLevel"] = string(f.EducationLevel)
	}
	if f.Limit != defaultLimit {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	return params
}
