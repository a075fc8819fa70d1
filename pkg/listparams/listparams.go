// Copyright (c) 2026 Advora. All rights reserved.

/*
Package listparams translates free-form query-string syntax into typed,
validated descriptors for filtering, sorting, and pagination.

# Overview

List endpoints accept three families of parameters:

  - Filters: a bare key (`field=value`) as an equality shortcut, plus
    operation-suffixed keys of the form `field[operation]=value`.
  - Sorting: `sort`/`order` with an optional `secondarySort`/`secondaryOrder`.
  - Pagination: `page`/`limit` (offset mode) or `cursor`/`cursorField`
    (cursor mode).

Parsing is driven by a declarative [Schema]: an explicit registry of field
identifiers, each carrying its type classification and allowed operation set.
Nothing is resolved by ad-hoc string lookups at query time.

# Fallback Policy

Malformed input never fails a request by default. Every invalid value is
coerced to the fallback declared in [Policy] (or dropped, for filters and the
secondary sort), and the coercion is recorded as an [Issue] so callers running
in strict mode can reject the request instead.
*/
package listparams

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fk-solace/advora/pkg/query"
)

// # Operations

// Operation identifies a filter operation requested against a field.
type Operation string

const (
	OpEq         Operation = "eq"
	OpContains   Operation = "contains"
	OpStartsWith Operation = "startsWith"
	OpEndsWith   Operation = "endsWith"
	OpIn         Operation = "in"
	OpAny        Operation = "any"
	OpAll        Operation = "all"
	OpBetween    Operation = "between"
	OpGt         Operation = "gt"
	OpGte        Operation = "gte"
	OpLt         Operation = "lt"
	OpLte        Operation = "lte"
)

// IsSetOp reports whether the operation takes a comma-separated value list.
func (op Operation) IsSetOp() bool {
	return op == OpIn || op == OpAny || op == OpAll
}

// IsNumericOp reports whether the operation takes a single numeric token.
func (op Operation) IsNumericOp() bool {
	return op == OpGt || op == OpGte || op == OpLt || op == OpLte
}

// # Field Classification

// Kind classifies a filterable field, determining which predicate family
// applies to it.
type Kind string

const (
	// KindText fields support equality and case-insensitive substring matching.
	KindText Kind = "text"
	// KindExact fields support equality and set membership only.
	KindExact Kind = "exact"
	// KindRange fields are numeric and support comparison operations.
	KindRange Kind = "range"
	// KindArray fields are multi-valued associations (any/all semantics).
	KindArray Kind = "array"
	// KindLocation fields resolve against the associated location row rather
	// than the principal entity itself.
	KindLocation Kind = "location"
)

// Field declares a single queryable field: its classification, the operations
// it accepts, and whether it participates in sorting.
type Field struct {
	Name            string
	Kind            Kind
	Ops             []Operation
	Sortable        bool
	CaseInsensitive bool // sort on a lower-cased projection of the value
}

// Supports reports whether the field accepts the given operation.
func (f Field) Supports(op Operation) bool {
	for _, candidate := range f.Ops {
		if candidate == op {
			return true
		}
	}
	return false
}

// Schema is the ordered registry of queryable fields for one list endpoint.
//
// # Determinism
//
// Fields are kept in declaration order so that parsing always emits filter
// descriptors in a stable sequence regardless of map iteration order.
type Schema struct {
	fields []Field
	byName map[string]Field
}

// NewSchema builds a [Schema] from the declared fields.
func NewSchema(fields ...Field) Schema {
	byName := make(map[string]Field, len(fields))
	for _, field := range fields {
		byName[field.Name] = field
	}
	return Schema{fields: fields, byName: byName}
}

// Field returns the declared field and whether it exists.
func (s Schema) Field(name string) (Field, bool) {
	field, ok := s.byName[name]
	return field, ok
}

// Fields returns the declared fields in declaration order.
func (s Schema) Fields() []Field {
	return s.fields
}

// IsSortable reports whether name is a declared sortable field.
func (s Schema) IsSortable(name string) bool {
	field, ok := s.byName[name]
	return ok && field.Sortable
}

// # Descriptors

// Filter is a single parsed filter descriptor.
//
// Value shape depends on the operation: a string for equality/text operations,
// a float64 for numeric comparisons, a []string for set operations, and a
// [2]float64 pair for between. Descriptors are ephemeral, constructed per
// request and never persisted.
type Filter struct {
	Field string
	Op    Operation
	Value any
}

// SortDir is a normalized sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Sort is the parsed sort descriptor: a primary field/direction and an
// optional secondary pair. An absent secondary is represented by empty
// strings, never by defaults.
type Sort struct {
	Field          string
	Dir            SortDir
	SecondaryField string
	SecondaryDir   SortDir
}

// HasSecondary reports whether a valid secondary sort was supplied.
func (s Sort) HasSecondary() bool { return s.SecondaryField != "" }

// Page is the parsed pagination descriptor. Cursor mode is selected by the
// presence of a cursor token; otherwise offset mode applies.
type Page struct {
	Number      int
	Size        int
	Cursor      string
	CursorField string
}

// IsCursorMode reports whether cursor navigation was requested.
func (p Page) IsCursorMode() bool { return p.Cursor != "" }

// Query bundles the full set of descriptors parsed from one request.
type Query struct {
	Filters []Filter
	Sort    Sort
	Page    Page
}

// # Fallback Policy

// Policy is the explicit table of defaults and allow-lists applied when input
// is missing or invalid. Keeping it as data (rather than scattered
// conditionals) makes the permissiveness auditable and testable.
type Policy struct {
	DefaultPage        int
	DefaultLimit       int
	AllowedLimits      []int
	MaxLimit           int
	DefaultSortField   string
	DefaultSortDir     SortDir
	DefaultCursorField string
}

// DefaultPolicy matches the documented contract of the advocates listing.
// Single-row pages are admitted alongside the standard UI page sizes.
var DefaultPolicy = Policy{
	DefaultPage:        1,
	DefaultLimit:       10,
	AllowedLimits:      []int{1, 5, 10, 25, 50},
	MaxLimit:           50,
	DefaultSortField:   "createdAt",
	DefaultSortDir:     SortDesc,
	DefaultCursorField: "id",
}

// limitAllowed reports whether the requested page size is in the allow-list.
func (p Policy) limitAllowed(limit int) bool {
	for _, allowed := range p.AllowedLimits {
		if limit == allowed {
			return true
		}
	}
	return false
}

// Issue records one applied fallback: which parameter was invalid, and what
// the parser did about it. In lenient mode issues are advisory; in strict
// mode the caller turns them into a validation error.
type Issue struct {
	Param  string
	Reason string
}

// # Reserved Parameters

// reserved lists the non-filter query parameters consumed by the parser.
var reserved = map[string]bool{
	"page":           true,
	"limit":          true,
	"cursor":         true,
	"cursorField":    true,
	"sort":           true,
	"order":          true,
	"secondarySort":  true,
	"secondaryOrder": true,
}

// # Parsing

// Parse reads the raw query-string entries and produces the typed descriptor
// bundle plus the list of fallbacks that were applied.
//
// Unknown fields and unsupported field/operation pairs are never emitted as
// descriptors; they are silently dropped (and recorded as issues).
func Parse(values url.Values, schema Schema, policy Policy) (Query, []Issue) {
	var issues []Issue

	page, pageIssues := parsePage(values, policy)
	issues = append(issues, pageIssues...)

	sort, sortIssues := parseSort(values, schema, policy)
	issues = append(issues, sortIssues...)

	filters, filterIssues := parseFilters(values, schema)
	issues = append(issues, filterIssues...)

	return Query{Filters: filters, Sort: sort, Page: page}, issues
}

// parsePage resolves the pagination descriptor per the fallback policy.
func parsePage(values url.Values, policy Policy) (Page, []Issue) {
	var issues []Issue

	page := policy.DefaultPage
	if raw := values.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			issues = append(issues, Issue{Param: "page", Reason: "not numeric, reset to default"})
		case parsed < 1:
			issues = append(issues, Issue{Param: "page", Reason: "below 1, clamped to 1"})
		default:
			page = parsed
		}
	}

	limit := policy.DefaultLimit
	if raw := values.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			issues = append(issues, Issue{Param: "limit", Reason: "not numeric, reset to default"})
		case !policy.limitAllowed(parsed):
			issues = append(issues, Issue{Param: "limit", Reason: "not in allow-list, reset to default"})
		default:
			limit = parsed
		}
	}
	if limit > policy.MaxLimit {
		limit = policy.MaxLimit
	}

	cursorField := values.Get("cursorField")
	if cursorField == "" {
		cursorField = policy.DefaultCursorField
	}

	return Page{
		Number:      page,
		Size:        limit,
		Cursor:      values.Get("cursor"),
		CursorField: cursorField,
	}, issues
}

// parseSort resolves the sort descriptor. An invalid primary falls back to
// the default; an invalid secondary is dropped entirely, and the secondary
// direction is only kept when a valid secondary field exists.
func parseSort(values url.Values, schema Schema, policy Policy) (Sort, []Issue) {
	var issues []Issue

	sortField := policy.DefaultSortField
	if raw := values.Get("sort"); raw != "" {
		if schema.IsSortable(raw) {
			sortField = raw
		} else {
			issues = append(issues, Issue{Param: "sort", Reason: "not a sortable field, reset to default"})
		}
	}

	dir, dirIssue := parseDir(values.Get("order"), "order", policy.DefaultSortDir)
	if dirIssue != nil {
		issues = append(issues, *dirIssue)
	}

	sort := Sort{Field: sortField, Dir: dir}

	if raw := values.Get("secondarySort"); raw != "" {
		if schema.IsSortable(raw) {
			sort.SecondaryField = raw
			secondaryDir, secIssue := parseDir(values.Get("secondaryOrder"), "secondaryOrder", policy.DefaultSortDir)
			if secIssue != nil {
				issues = append(issues, *secIssue)
			}
			sort.SecondaryDir = secondaryDir
		} else {
			issues = append(issues, Issue{Param: "secondarySort", Reason: "not a sortable field, dropped"})
		}
	}

	return sort, issues
}

// parseDir normalizes an asc/desc token, falling back to the default.
func parseDir(raw, param string, fallback SortDir) (SortDir, *Issue) {
	switch raw {
	case "":
		return fallback, nil
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return fallback, &Issue{Param: param, Reason: "not asc/desc, reset to default"}
}

// parseFilters walks the schema in declaration order. For every field it
// first checks the bare equality shortcut, then every supported
// operation-suffixed key.
func parseFilters(values url.Values, schema Schema) ([]Filter, []Issue) {
	var filters []Filter
	var issues []Issue

	for _, field := range schema.Fields() {
		// Bare key equality shortcut, only when the field supports eq.
		if raw := values.Get(field.Name); raw != "" && field.Supports(OpEq) {
			filters = append(filters, Filter{Field: field.Name, Op: OpEq, Value: raw})
		}

		for _, op := range field.Ops {
			key := fmt.Sprintf("%s[%s]", field.Name, op)
			raw := values.Get(key)
			if raw == "" {
				continue
			}

			value, ok, reason := parseOpValue(op, raw)
			if !ok {
				issues = append(issues, Issue{Param: key, Reason: reason})
				continue
			}
			filters = append(filters, Filter{Field: field.Name, Op: op, Value: value})
		}
	}

	issues = append(issues, unknownFilterKeys(values, schema)...)
	return filters, issues
}

// parseOpValue applies the per-operation value parsing rules.
func parseOpValue(op Operation, raw string) (value any, ok bool, reason string) {
	switch {
	case op.IsSetOp():
		tokens := query.StringSlice(raw)
		if len(tokens) == 0 {
			return nil, false, "empty value list, dropped"
		}
		return tokens, true, ""

	case op == OpBetween:
		tokens := query.StringSlice(raw)
		if len(tokens) != 2 {
			return nil, false, "between requires exactly two values, dropped"
		}
		low, errLow := strconv.ParseFloat(tokens[0], 64)
		high, errHigh := strconv.ParseFloat(tokens[1], 64)
		if errLow != nil || errHigh != nil {
			return nil, false, "between bounds must be numeric, dropped"
		}
		return [2]float64{low, high}, true, ""

	case op.IsNumericOp():
		number, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false, "value must be numeric, dropped"
		}
		return number, true, ""
	}

	// All other operations pass the raw string through unchanged.
	return raw, true, ""
}

// unknownFilterKeys records issues for filter-shaped parameters that matched
// no declared field/operation pair, so strict mode can reject them.
func unknownFilterKeys(values url.Values, schema Schema) []Issue {
	var issues []Issue
	for key := range values {
		if reserved[key] {
			continue
		}

		name, op := splitFilterKey(key)
		field, known := schema.Field(name)
		if !known {
			issues = append(issues, Issue{Param: key, Reason: "unknown field, dropped"})
			continue
		}
		if op != "" && !field.Supports(Operation(op)) {
			issues = append(issues, Issue{Param: key, Reason: "operation not supported for field, dropped"})
		}
	}
	return issues
}

// splitFilterKey decomposes "field[operation]" into its parts. A bare key
// returns an empty operation.
func splitFilterKey(key string) (field, op string) {
	open := strings.IndexByte(key, '[')
	if open < 0 || !strings.HasSuffix(key, "]") {
		return key, ""
	}
	return key[:open], key[open+1 : len(key)-1]
}

// # Client Query Builder

// Values serializes the descriptor bundle back into query-string form. It is
// the inverse of [Parse] for well-formed queries and is used by API consumers
// to build request URLs from typed state.
func (q Query) Values() url.Values {
	values := url.Values{}

	for _, filter := range q.Filters {
		key := fmt.Sprintf("%s[%s]", filter.Field, filter.Op)
		if filter.Op == OpEq {
			key = filter.Field // equality uses the bare-key shortcut
		}

		switch value := filter.Value.(type) {
		case []string:
			values.Set(key, strings.Join(value, ","))
		case [2]float64:
			values.Set(key, formatFloat(value[0])+","+formatFloat(value[1]))
		case float64:
			values.Set(key, formatFloat(value))
		default:
			values.Set(key, fmt.Sprint(value))
		}
	}

	if q.Sort.Field != "" {
		values.Set("sort", q.Sort.Field)
		values.Set("order", string(q.Sort.Dir))
	}
	if q.Sort.HasSecondary() {
		values.Set("secondarySort", q.Sort.SecondaryField)
		values.Set("secondaryOrder", string(q.Sort.SecondaryDir))
	}

	if q.Page.IsCursorMode() {
		values.Set("cursor", q.Page.Cursor)
		values.Set("cursorField", q.Page.CursorField)
		values.Set("limit", strconv.Itoa(q.Page.Size))
	} else {
		values.Set("page", strconv.Itoa(q.Page.Number))
		values.Set("limit", strconv.Itoa(q.Page.Size))
	}

	return values
}

// formatFloat renders a float without a trailing ".0" for integral values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
