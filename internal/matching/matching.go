// Package matching pairs trending players with the day's box-score lines by name.
package matching

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/ajuarez99/ballknowers/internal/domain/boxscores"
	"github.com/ajuarez99/ballknowers/internal/domain/trending"
	"github.com/ajuarez99/ballknowers/internal/names"
)

// Cutoff is the minimum similarity ratio accepted by the approximate path.
const Cutoff = 0.75

// NameLookup resolves a platform player id to a display name.
type NameLookup interface {
	Name(id string) (string, bool)
}

// NameMap is a NameLookup backed by a plain map.
type NameMap map[string]string

// Name implements NameLookup.
func (m NameMap) Name(id string) (string, bool) {
	n, ok := m[id]
	return n, ok
}

// Matcher holds a keyed view of one day's scored stat lines.
type Matcher struct {
	byKey map[string]boxscores.StatLine
	keys  []string
	runes [][]string
}

// New indexes pool by normalized name. When two lines share a key the first wins.
func New(pool []boxscores.StatLine) *Matcher {
	m := &Matcher{byKey: make(map[string]boxscores.StatLine, len(pool))}
	for _, line := range pool {
		key := names.Key(line.Name)
		if _, exists := m.byKey[key]; exists {
			continue
		}
		m.byKey[key] = line
		m.keys = append(m.keys, key)
		m.runes = append(m.runes, split(key))
	}
	return m
}

// Len returns the number of distinct keys in the pool.
func (m *Matcher) Len() int {
	return len(m.keys)
}

// Match returns one result per entry, in entry order.
func (m *Matcher) Match(entries []trending.Entry, lookup NameLookup) []trending.MatchResult {
	results := make([]trending.MatchResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, m.matchOne(e, lookup))
	}
	return results
}

func (m *Matcher) matchOne(e trending.Entry, lookup NameLookup) trending.MatchResult {
	name := trending.UnknownName
	if lookup != nil {
		if n, ok := lookup.Name(e.PlayerID); ok && n != "" {
			name = n
		}
	}

	result := trending.MatchResult{PlayerID: e.PlayerID, Name: name, Adds: e.Count}
	key := names.Key(name)

	if line, ok := m.byKey[key]; ok {
		return matched(result, line, trending.MatchExact)
	}
	if candidate, ok := m.closest(key); ok {
		if line, ok := m.byKey[candidate]; ok {
			return matched(result, line, trending.MatchApproximate)
		}
	}
	return result
}

// closest returns the pool key most similar to query at or above Cutoff.
// Ties keep the earliest key.
func (m *Matcher) closest(query string) (string, bool) {
	if len(m.keys) == 0 {
		return "", false
	}

	sm := difflib.NewMatcher(nil, nil)
	sm.SetSeq2(split(query))

	best, bestRatio := -1, 0.0
	for i, cand := range m.runes {
		sm.SetSeq1(cand)
		if sm.RealQuickRatio() < Cutoff || sm.QuickRatio() < Cutoff {
			continue
		}
		r := sm.Ratio()
		if r >= Cutoff && r > bestRatio {
			best, bestRatio = i, r
		}
	}
	if best < 0 {
		return "", false
	}
	return m.keys[best], true
}

func matched(r trending.MatchResult, line boxscores.StatLine, method trending.MatchMethod) trending.MatchResult {
	stat := line
	r.Matched = true
	r.Method = method
	r.BoxScoreName = line.Name
	r.FantasyPoints = line.FantasyPoints
	r.Stat = &stat
	return r
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
