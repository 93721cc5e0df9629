// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package serialize

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWideIntegers(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  interface{}
	}{
		{"int64", int64(42), float64(42)},
		{"uint64", uint64(7), float64(7)},
		{"int32", int32(-3), float64(-3)},
		{"int", 11, float64(11)},
		{"big int", big.NewInt(123456789), float64(123456789)},
		{"nil big int", (*big.Int)(nil), nil},
		{"negative int64", int64(-9000), float64(-9000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizePassThrough(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		input interface{}
	}{
		{"string", "Restaurant"},
		{"float64", 3.14},
		{"bool", true},
		{"nil", nil},
		{"time", now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, Normalize(tt.input))
		})
	}
}

func TestNormalizeRecursion(t *testing.T) {
	input := map[string]interface{}{
		"month":       "2024-03",
		"visit_count": int64(120),
		"nested": map[string]interface{}{
			"total": big.NewInt(987654321),
		},
		"series": []interface{}{int64(1), "two", 3.0},
	}

	got := Normalize(input).(map[string]interface{})

	assert.Equal(t, "2024-03", got["month"])
	assert.Equal(t, float64(120), got["visit_count"])
	assert.Equal(t, float64(987654321), got["nested"].(map[string]interface{})["total"])
	assert.Equal(t, []interface{}{float64(1), "two", 3.0}, got["series"])
}

func TestNormalizeIdempotent(t *testing.T) {
	input := []map[string]interface{}{
		{"a": int64(1), "b": []interface{}{uint64(5), "x"}},
		{"c": big.NewInt(9), "d": nil},
	}

	once := Normalize(input)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizePrecisionBoundary(t *testing.T) {
	// 2^53 is the largest integer exactly representable as float64.
	exact := int64(1) << 53
	assert.Equal(t, float64(exact), Normalize(exact))

	// Above 2^53 precision loss is accepted, but magnitude must hold.
	big1 := big.NewInt(0).Lsh(big.NewInt(1), 60)
	got := Normalize(big1).(float64)
	assert.InDelta(t, math.Pow(2, 60), got, 1)
}

func TestRows(t *testing.T) {
	rows := []map[string]interface{}{
		{"employer": "emp-1", "active_employees": int64(14)},
		{"employer": "emp-2", "active_employees": int64(3)},
	}

	got := Rows(rows)
	assert.Len(t, got, 2)
	assert.Equal(t, float64(14), got[0]["active_employees"])
	assert.Equal(t, "emp-2", got[1]["employer"])

	assert.Empty(t, Rows(nil))
}
