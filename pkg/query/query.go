// Package query translates HTTP query parameters into filtered, sorted,
// field-selected and paginated GORM queries, plus the pagination metadata
// returned in list responses. It is shared by every resource list endpoint.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	// DefaultPage is used when the page parameter is missing or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the limit parameter is missing or invalid.
	DefaultLimit = 25
	// DefaultSort orders newest-first when no sort parameter is given.
	DefaultSort = "created_at DESC"
)

// reserved parameter names are extracted before the remainder is treated as
// filters. They must never leak into the filter predicate.
var reserved = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

// operator suffixes, e.g. amount[gte]=100, translated to SQL comparisons.
var operators = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
	"in":  "IN",
}

// Filter is a single comparison predicate. Field names pass through to the
// query unescaped; the filter surface is scoped to authenticated callers and
// values are always bound parameters.
type Filter struct {
	Field string
	Op    string
	Value interface{}
}

// Options is the parsed form of a list request's query string.
type Options struct {
	Filters []Filter
	Select  []string
	Sort    []string
	Page    int
	Limit   int
}

// Parse extracts select/sort/page/limit and turns the remaining parameters
// into filters.
func Parse(values url.Values) Options {
	opts := Options{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if sel := values.Get("select"); sel != "" {
		for _, f := range strings.Split(sel, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.Select = append(opts.Select, f)
			}
		}
	}

	if sort := values.Get("sort"); sort != "" {
		for _, f := range strings.Split(sort, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			if strings.HasPrefix(f, "-") {
				opts.Sort = append(opts.Sort, strings.TrimPrefix(f, "-")+" DESC")
			} else {
				opts.Sort = append(opts.Sort, f+" ASC")
			}
		}
	}
	if len(opts.Sort) == 0 {
		opts.Sort = []string{DefaultSort}
	}

	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		opts.Page = p
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		opts.Limit = l
	}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		opts.Filters = append(opts.Filters, parseFilter(key, vals[0]))
	}

	return opts
}

// parseFilter recognizes the field[op] suffix form; anything else is an
// equality filter.
func parseFilter(key, value string) Filter {
	if open := strings.Index(key, "["); open > 0 && strings.HasSuffix(key, "]") {
		if op, ok := operators[key[open+1:len(key)-1]]; ok {
			field := key[:open]
			if op == "IN" {
				return Filter{Field: field, Op: op, Value: strings.Split(value, ",")}
			}
			return Filter{Field: field, Op: op, Value: value}
		}
	}
	return Filter{Field: key, Op: "=", Value: value}
}

// Scope applies filters, projection, ordering and pagination to a GORM query.
func (o Options) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = o.CountScope()(db)
		if len(o.Select) > 0 {
			db = db.Select(o.Select)
		}
		for _, s := range o.Sort {
			db = db.Order(s)
		}
		return db.Limit(o.Limit).Offset(o.Offset())
	}
}

// CountScope applies only the filter predicates, for total-count queries.
func (o Options) CountScope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range o.Filters {
			if f.Op == "IN" {
				db = db.Where(fmt.Sprintf("%s IN ?", f.Field), f.Value)
			} else {
				db = db.Where(fmt.Sprintf("%s %s ?", f.Field, f.Op), f.Value)
			}
		}
		return db
	}
}

// Offset returns the row offset for the current page.
func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Page describes one page marker in the pagination metadata.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination carries the next/prev markers for a list response. Either field
// is omitted when there is no further/prior page.
type Pagination struct {
	Next *Page `json:"next,omitempty"`
	Prev *Page `json:"prev,omitempty"`
}

// Paginate computes pagination metadata for a result set of size total.
func Paginate(total int64, page, limit int) Pagination {
	var p Pagination
	if int64(page*limit) < total {
		p.Next = &Page{Page: page + 1, Limit: limit}
	}
	if page > 1 {
		p.Prev = &Page{Page: page - 1, Limit: limit}
	}
	return p
}
