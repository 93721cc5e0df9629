// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

// Package serialize makes DuckDB result values safe for JSON transmission.
//
// DuckDB reports 64-bit aggregate counts and sums as int64, uint64 or
// *big.Int (HUGEINT). Dashboard clients consume plain JSON numbers, so all
// wide integers are converted to float64. Values beyond 2^53 lose
// exact-integer fidelity; that is an accepted trade-off for aggregate
// counts and sums in this domain.
package serialize

import "math/big"

// Normalize converts v into a JSON-safe value, recursively.
//
// Wide integers (int64, uint64, *big.Int) become float64. Slices are
// normalized element-wise and maps value-wise, preserving keys. All other
// values pass through unchanged. Normalize is idempotent:
// Normalize(Normalize(v)) == Normalize(v).
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case int32:
		return float64(val)
	case int:
		return float64(val)
	case *big.Int:
		if val == nil {
			return nil
		}
		f, _ := new(big.Float).SetInt(val).Float64()
		return f
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(val))
		for i, row := range val {
			normalized := Normalize(row)
			out[i] = normalized.(map[string]interface{})
		}
		return out
	default:
		return v
	}
}

// Rows normalizes a result set in place-compatible form, returning a new
// slice of rows with every value JSON-safe.
func Rows(rows []map[string]interface{}) []map[string]interface{} {
	normalized := Normalize(rows)
	out, _ := normalized.([]map[string]interface{})
	return out
}
