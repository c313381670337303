package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SearchCriteria holds optional catalog search parameters. Fields are independent:
// MinPrice greater than MaxPrice is legal and simply matches nothing.
type SearchCriteria struct {
	Keyword  *string
	MinPrice *float64
	MaxPrice *float64
}

// CatalogFilter is the normalised predicate over Property:
//
//	true
//	AND (lower(address) contains Keyword OR lower(description) contains Keyword)  -- iff Keyword != ""
//	AND price >= MinPrice                                                          -- iff MinPrice != nil
//	AND price <= MaxPrice                                                          -- iff MaxPrice != nil
type CatalogFilter struct {
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
}

// BuildCatalogFilter translates criteria into a filter. A nil criteria value
// and a blank keyword both mean "no predicate".
func BuildCatalogFilter(criteria *SearchCriteria) CatalogFilter {
	if criteria == nil {
		return CatalogFilter{}
	}
	return CatalogFilter{
		Keyword:  normalizeKeyword(criteria.Keyword),
		MinPrice: criteria.MinPrice,
		MaxPrice: criteria.MaxPrice,
	}
}

// KeywordOnlyFilter is the keyword-only search variant. Unlike BuildCatalogFilter
// a blank keyword does not select everything: ok is false and callers return
// an empty result.
func KeywordOnlyFilter(keyword string) (CatalogFilter, bool) {
	normalized := normalizeKeyword(&keyword)
	if normalized == "" {
		return CatalogFilter{}, false
	}
	return CatalogFilter{Keyword: normalized}, true
}

// SelectsAll reports whether the filter has no predicate at all.
func (f CatalogFilter) SelectsAll() bool {
	return f.Keyword == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Matches evaluates the filter against a single property in memory.
func (f CatalogFilter) Matches(p Property) bool {
	if f.Keyword != "" {
		lower := cases.Lower(language.Und)
		if !strings.Contains(lower.String(p.Address), f.Keyword) &&
			!strings.Contains(lower.String(p.Description), f.Keyword) {
			return false
		}
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func normalizeKeyword(keyword *string) string {
	if keyword == nil {
		return ""
	}
	trimmed := strings.TrimSpace(*keyword)
	if trimmed == "" {
		return ""
	}
	// cases.Caser keeps state, so it is created per call.
	return cases.Lower(language.Und).String(trimmed)
}
