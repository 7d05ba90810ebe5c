package resources

import "strings"

// MaxResults caps every result set returned to clients.
const MaxResults = 5

// MinKeywordLength is the shortest token (in runes) that counts as a keyword.
// Shorter tokens ("a", "to", "an") carry no signal and are discarded.
const MinKeywordLength = 3

// ExtractKeywords lower-cases the query, splits it on whitespace and keeps
// tokens of at least MinKeywordLength runes.
func ExtractKeywords(query string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if len([]rune(token)) >= MinKeywordLength {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// Search filters resources by keyword overlap with the query. A resource
// matches when any keyword is a case-insensitive substring of its title,
// description or any tag. Matching is existence-based: results keep source
// order and are capped at MaxResults, not ranked. A query with no usable
// keywords returns the first MaxResults resources unfiltered.
func Search(query string, all []Resource) []ResourceResponse {
	keywords := ExtractKeywords(query)

	if len(keywords) == 0 {
		return project(all)
	}

	var matched []Resource
	for _, r := range all {
		if matchesAny(r, keywords) {
			matched = append(matched, r)
		}
	}
	return project(matched)
}

func matchesAny(r Resource, keywords []string) bool {
	title := strings.ToLower(r.Title)
	desc := strings.ToLower(r.Description)

	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
		if r.Description != "" && strings.Contains(desc, kw) {
			return true
		}
		for _, tag := range r.Tags {
			if strings.Contains(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}

func project(rs []Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, MaxResults)
	for _, r := range rs {
		if len(out) == MaxResults {
			break
		}
		out = append(out, r.toResponse())
	}
	return out
}
