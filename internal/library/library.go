// Package library implements the paper library's search, filter, and sort
// logic as pure functions over the paper fixture.
package library

import (
	"sort"
	"strings"

	"deresnet/internal/research"
)

// TagAll matches every paper regardless of tags.
const TagAll = "all"

// SortKey selects the ordering of library results.
type SortKey string

const (
	SortRecent    SortKey = "recent"    // published date, newest first
	SortCitations SortKey = "citations" // citation count, highest first
	SortDownloads SortKey = "downloads" // download count, highest first
)

// SortKeys lists the selectable orderings in display order.
var SortKeys = []SortKey{SortRecent, SortCitations, SortDownloads}

// Label returns the human-readable name for the sort key.
func (k SortKey) Label() string {
	switch k {
	case SortCitations:
		return "Most Cited"
	case SortDownloads:
		return "Most Downloaded"
	default:
		return "Most Recent"
	}
}

// Matches reports whether the paper satisfies both the free-text query and
// the tag filter. The query is a case-insensitive substring match against
// title, abstract, and every author name; an empty query matches everything.
func Matches(p research.Paper, query, tag string) bool {
	if tag != TagAll && !p.HasTag(tag) {
		return false
	}
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Abstract), q) {
		return true
	}
	for _, a := range p.Authors {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

// Search filters papers by query and tag, then orders the result by key.
// The input slice is never modified.
func Search(papers []research.Paper, query, tag string, key SortKey) []research.Paper {
	out := make([]research.Paper, 0, len(papers))
	for _, p := range papers {
		if Matches(p, query, tag) {
			out = append(out, p)
		}
	}
	Sort(out, key)
	return out
}

// Sort orders papers in place by the given key. The sort is stable so papers
// with equal keys keep their fixture order.
func Sort(papers []research.Paper, key SortKey) {
	sort.SliceStable(papers, func(i, j int) bool {
		switch key {
		case SortCitations:
			return papers[i].Citations > papers[j].Citations
		case SortDownloads:
			return papers[i].Downloads > papers[j].Downloads
		default:
			// ISO dates compare correctly as strings.
			return papers[i].PublishedDate > papers[j].PublishedDate
		}
	})
}

// AllTags returns the distinct tags across papers in first-seen order.
func AllTags(papers []research.Paper) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range papers {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
