// Package matching locates JD skills in resume text with word-boundary
// safety, scores the contextual evidence for each mention, and computes
// the composite match score.
package matching

import (
	"regexp"
	"strings"
	"sync"
)

// shortTokens are skills that must match on exact word boundaries with
// no suffix flexibility, to avoid false positives such as "r" inside
// "developer" or "go" inside "category".
var shortTokens = map[string]bool{
	"go": true, "c": true, "r": true, "es": true, "ai": true,
	"ml": true, "ui": true, "ux": true, "qa": true, "db": true,
	"k8s": true,
}

// contextRadius is how many characters around a match are captured as
// its context for evidence scoring.
const contextRadius = 50

// TextMatch is one boundary-safe occurrence of a skill in a text.
type TextMatch struct {
	Skill    string
	Position int
	Context  string
	Matched  string
}

var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

// skillPattern compiles (and caches) the boundary-anchored pattern for
// a skill. Longer skills may absorb a trailing framework suffix
// (".js"/".py") but stay anchored on both ends.
func skillPattern(skillLower string) *regexp.Regexp {
	patternMu.RLock()
	re, ok := patternCache[skillLower]
	patternMu.RUnlock()
	if ok {
		return re
	}

	var expr string
	if shortTokens[skillLower] || len(skillLower) <= 2 {
		expr = `\b` + regexp.QuoteMeta(skillLower) + `\b`
	} else {
		expr = `\b` + regexp.QuoteMeta(skillLower) + `(?:\.?js|\.?py)?\b`
	}
	re = regexp.MustCompile(expr)

	patternMu.Lock()
	patternCache[skillLower] = re
	patternMu.Unlock()
	return re
}

// FindMentions finds all boundary-safe occurrences of skill in text,
// each with its surrounding context.
func FindMentions(skill, text string) []TextMatch {
	skillLower := strings.ToLower(strings.TrimSpace(skill))
	if skillLower == "" {
		return nil
	}
	textLower := strings.ToLower(text)

	var matches []TextMatch
	for _, loc := range skillPattern(skillLower).FindAllStringIndex(textLower, -1) {
		start, end := loc[0], loc[1]
		ctxStart := max(0, start-contextRadius)
		ctxEnd := min(len(text), end+contextRadius)
		matches = append(matches, TextMatch{
			Skill:    skill,
			Position: start,
			Context:  strings.TrimSpace(text[ctxStart:ctxEnd]),
			Matched:  text[start:end],
		})
	}
	return matches
}
