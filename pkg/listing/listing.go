// Package listing coerces loosely-typed list query parameters into a
// typed, defaulted form shared by every list endpoint: page/limit
// pagination, a "field direction" sort token, substring search, and
// `|`-delimited id filters.
package listing

import (
	"strconv"
	"strings"
)

// Defaults for list queries.
const (
	DefaultLimit = 10
	DefaultPage  = 1
	DefaultOrder = "created desc"
)

// FetchAll is the sentinel for page and limit meaning "return everything,
// unpaged". Both must carry it for the escape hatch to engage.
const FetchAll = -1

// Sort is a parsed "field direction" token.
type Sort struct {
	Field string
	Desc  bool
}

// Params holds the coerced pagination/search/sort inputs.
type Params struct {
	Page   int
	Limit  int
	Search string
	Sort   Sort
}

// FromQuery coerces raw query strings once at the boundary. Empty or
// malformed numbers collapse to the defaults.
func FromQuery(page, limit, search, order string) Params {
	p := Params{
		Page:   parseInt(page, DefaultPage),
		Limit:  parseInt(limit, DefaultLimit),
		Search: search,
	}
	if order == "" {
		order = DefaultOrder
	}
	p.Sort = ParseSort(order)
	return p
}

// ParseSort splits a two-token "field direction" string. A missing or
// unknown direction token means ascending.
func ParseSort(order string) Sort {
	tokens := strings.Fields(order)
	s := Sort{Field: "created"}
	if len(tokens) > 0 && tokens[0] != "" {
		s.Field = tokens[0]
	}
	if len(tokens) > 1 {
		s.Desc = strings.EqualFold(tokens[1], "desc")
	}
	return s
}

// SplitIDs expands a single id or a `|`-delimited list into a slice.
// Empty input yields nil.
func SplitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// Unpaged reports whether the fetch-all escape hatch is engaged.
func (p Params) Unpaged() bool {
	return p.Page == FetchAll && p.Limit == FetchAll
}

// Offset returns the skip index for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(count/limit). The unpaged escape hatch always
// reports a single page regardless of count.
func (p Params) TotalPages(count int64) int {
	if p.Unpaged() {
		return 1
	}
	if p.Limit <= 0 {
		return 0
	}
	pages := count / int64(p.Limit)
	if count%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
