// Copyright (c) 2026 Advora. All rights reserved.

package listparams_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk-solace/advora/pkg/listparams"
)

// testSchema mirrors the advocate registry shape without depending on the
// domain package.
func testSchema() listparams.Schema {
	return listparams.NewSchema(
		listparams.Field{
			Name:            "firstName",
			Kind:            listparams.KindText,
			Ops:             []listparams.Operation{listparams.OpEq, listparams.OpContains, listparams.OpStartsWith, listparams.OpEndsWith},
			Sortable:        true,
			CaseInsensitive: true,
		},
		listparams.Field{
			Name:     "degree",
			Kind:     listparams.KindExact,
			Ops:      []listparams.Operation{listparams.OpEq, listparams.OpIn},
			Sortable: true,
		},
		listparams.Field{
			Name:     "yearsOfExperience",
			Kind:     listparams.KindRange,
			Ops:      []listparams.Operation{listparams.OpEq, listparams.OpGt, listparams.OpGte, listparams.OpLt, listparams.OpLte, listparams.OpBetween},
			Sortable: true,
		},
		listparams.Field{
			Name: "specialty",
			Kind: listparams.KindArray,
			Ops:  []listparams.Operation{listparams.OpAny, listparams.OpAll},
		},
		listparams.Field{Name: "createdAt", Sortable: true},
	)
}

func parse(t *testing.T, rawQuery string) (listparams.Query, []listparams.Issue) {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	return listparams.Parse(values, testSchema(), listparams.DefaultPolicy)
}

/*
TestParse_Defaults verifies the descriptor bundle produced from an empty
query string.
*/
func TestParse_Defaults(t *testing.T) {
	query, issues := parse(t, "")

	assert.Empty(t, issues)
	assert.Equal(t, 1, query.Page.Number)
	assert.Equal(t, 10, query.Page.Size)
	assert.Equal(t, "id", query.Page.CursorField)
	assert.False(t, query.Page.IsCursorMode())
	assert.Equal(t, "createdAt", query.Sort.Field)
	assert.Equal(t, listparams.SortDesc, query.Sort.Dir)
	assert.False(t, query.Sort.HasSecondary())
	assert.Empty(t, query.Filters)
}

/*
TestParse_Pagination covers the page/limit fallback table.
*/
func TestParse_Pagination(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		wantPage   int
		wantSize   int
		wantIssues int
	}{
		{"valid", "page=3&limit=25", 3, 25, 0},
		{"single_row_pages", "page=2&limit=1", 2, 1, 0},
		{"limit_not_in_allowlist", "limit=30", 1, 10, 1},
		{"limit_not_numeric", "limit=abc", 1, 10, 1},
		{"page_not_numeric", "page=xyz", 1, 10, 1},
		{"page_below_one", "page=0", 1, 10, 1},
		{"page_negative", "page=-4", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, issues := parse(t, tt.rawQuery)
			assert.Equal(t, tt.wantPage, query.Page.Number)
			assert.Equal(t, tt.wantSize, query.Page.Size)
			assert.Len(t, issues, tt.wantIssues)
		})
	}
}

/*
TestParse_Sort covers primary fallback and secondary drop semantics: an
invalid secondary is removed entirely, never defaulted.
*/
func TestParse_Sort(t *testing.T) {
	t.Run("primary_and_secondary", func(t *testing.T) {
		query, issues := parse(t, "sort=yearsOfExperience&order=desc&secondarySort=firstName&secondaryOrder=asc")
		assert.Empty(t, issues)
		assert.Equal(t, "yearsOfExperience", query.Sort.Field)
		assert.Equal(t, listparams.SortDesc, query.Sort.Dir)
		assert.Equal(t, "firstName", query.Sort.SecondaryField)
		assert.Equal(t, listparams.SortAsc, query.Sort.SecondaryDir)
	})

	t.Run("invalid_primary_falls_back", func(t *testing.T) {
		query, issues := parse(t, "sort=specialty")
		assert.Equal(t, "createdAt", query.Sort.Field)
		assert.Len(t, issues, 1)
	})

	t.Run("invalid_order_falls_back", func(t *testing.T) {
		query, issues := parse(t, "order=sideways")
		assert.Equal(t, listparams.SortDesc, query.Sort.Dir)
		assert.Len(t, issues, 1)
	})

	t.Run("invalid_secondary_dropped", func(t *testing.T) {
		query, issues := parse(t, "sort=yearsOfExperience&secondarySort=bogus&secondaryOrder=asc")
		assert.False(t, query.Sort.HasSecondary())
		assert.Empty(t, query.Sort.SecondaryField)
		assert.Empty(t, string(query.Sort.SecondaryDir))
		assert.Len(t, issues, 1)
	})
}

/*
TestParse_Filters covers the equality shortcut and the operation-suffixed
value parsing rules.
*/
func TestParse_Filters(t *testing.T) {
	t.Run("bare_key_equality", func(t *testing.T) {
		query, _ := parse(t, "firstName=Jane")
		require.Len(t, query.Filters, 1)
		assert.Equal(t, listparams.Filter{Field: "firstName", Op: listparams.OpEq, Value: "Jane"}, query.Filters[0])
	})

	t.Run("set_operation_splits_and_trims", func(t *testing.T) {
		query, _ := parse(t, url.Values{"specialty[any]": {"Trauma, Anxiety ,"}}.Encode())
		require.Len(t, query.Filters, 1)
		assert.Equal(t, []string{"Trauma", "Anxiety"}, query.Filters[0].Value)
	})

	t.Run("between_requires_two_numeric_tokens", func(t *testing.T) {
		query, issues := parse(t, url.Values{"yearsOfExperience[between]": {"3,9"}}.Encode())
		require.Len(t, query.Filters, 1)
		assert.Equal(t, [2]float64{3, 9}, query.Filters[0].Value)
		assert.Empty(t, issues)

		query, issues = parse(t, url.Values{"yearsOfExperience[between]": {"3,nine"}}.Encode())
		assert.Empty(t, query.Filters)
		assert.Len(t, issues, 1)
	})

	t.Run("numeric_comparison_skips_unparseable", func(t *testing.T) {
		query, issues := parse(t, url.Values{"yearsOfExperience[gte]": {"5"}}.Encode())
		require.Len(t, query.Filters, 1)
		assert.Equal(t, float64(5), query.Filters[0].Value)
		assert.Empty(t, issues)

		query, issues = parse(t, url.Values{"yearsOfExperience[gte]": {"many"}}.Encode())
		assert.Empty(t, query.Filters)
		assert.Len(t, issues, 1)
	})

	t.Run("unknown_field_silently_dropped", func(t *testing.T) {
		query, issues := parse(t, "unknownField=value")
		assert.Empty(t, query.Filters)
		assert.Len(t, issues, 1)
	})

	t.Run("unsupported_operation_silently_dropped", func(t *testing.T) {
		query, issues := parse(t, url.Values{"degree[contains]": {"M"}}.Encode())
		assert.Empty(t, query.Filters)
		assert.Len(t, issues, 1)
	})
}

/*
TestQuery_Values verifies the client-side serialization is an inverse of
Parse for well-formed queries.
*/
func TestQuery_Values(t *testing.T) {
	original, issues := parse(t, url.Values{
		"firstName[contains]":    {"Jo"},
		"yearsOfExperience[gte]": {"5"},
		"specialty[any]":         {"Trauma,Anxiety"},
		"sort":                   {"yearsOfExperience"},
		"order":                  {"desc"},
		"page":                   {"2"},
		"limit":                  {"25"},
	}.Encode())
	require.Empty(t, issues)

	reparsed, issues := listparams.Parse(original.Values(), testSchema(), listparams.DefaultPolicy)
	require.Empty(t, issues)
	assert.Equal(t, original, reparsed)
}
