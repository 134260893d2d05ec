package common

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a 1-based page request.
type Page struct {
	Page  int64
	Limit int64
}

func (p Page) Skip() int64 {
	return (p.Page - 1) * p.Limit
}

// PageInfo describes a page of results in list responses.
type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

func NewPageInfo(p Page, total int64) PageInfo {
	pages := total / p.Limit
	if total%p.Limit != 0 {
		pages++
	}
	return PageInfo{Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

// PageFromRequest reads page and limit query parameters. Missing or
// non-positive values fall back to the defaults; limit is capped.
func PageFromRequest(r *http.Request) Page {
	q := r.URL.Query()
	page := parsePositive(q.Get("page"), DefaultPage)
	limit := parsePositive(q.Get("limit"), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func parsePositive(raw string, def int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}
