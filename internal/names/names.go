// Package names canonicalizes player display names so they can be joined
// across data sources that spell suffixes differently.
package names

import "strings"

// suffixes are tried once each, in this order.
var suffixes = []string{" Jr.", " Sr.", " II", " III", " IV", " V", " Jr", " Sr", "."}

// Normalize strips known generational suffixes and a trailing period.
// It makes a single ordered pass, so "Name II Jr" keeps its " II".
func Normalize(name string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
		}
	}
	return name
}

// Key returns the case-folded normalized name used as a join key.
func Key(name string) string {
	return strings.ToLower(Normalize(name))
}
