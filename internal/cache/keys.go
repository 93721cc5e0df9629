// Econoscope - Economic Simulation Analytics Dashboard
// Copyright 2026 Econoscope Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/econoscope/econoscope

package cache

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// GenerateKey derives a deterministic cache key from a namespace and a set
// of query parameters. Two requests with the same parameters in any order
// produce the same key, so equivalent queries share a cache entry.
//
// The namespace survives hashing as a plain prefix so that ClearPrefix can
// invalidate one endpoint family without touching the rest.
func GenerateKey(namespace string, params map[string]string) string {
	if len(params) == 0 {
		return namespace + ":all"
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	// Length-prefixing keeps the encoding injective even when a value
	// contains the separator characters.
	h := sha256.New()
	for _, name := range names {
		fmt.Fprintf(h, "%d:%s=%d:%s;", len(name), name, len(params[name]), params[name])
	}
	return fmt.Sprintf("%s:%x", namespace, h.Sum(nil)[:16])
}

// namespaceOf extracts the namespace prefix from a generated key, for
// per-endpoint hit and miss metrics.
func namespaceOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
