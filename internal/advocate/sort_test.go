// Copyright (c) 2026 Advora. All rights reserved.

package advocate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk-solace/advora/internal/advocate"
	"github.com/fk-solace/advora/pkg/listparams"
)

/*
TestBuildSortExpressions compiles sort descriptors into expression lists:
primary before secondary, invalid levels dropped without substitution.
*/
func TestBuildSortExpressions(t *testing.T) {
	t.Run("primary_and_secondary", func(t *testing.T) {
		expressions := advocate.BuildSortExpressions(listparams.Sort{
			Field:          advocate.FieldYearsOfExperience,
			Dir:            listparams.SortDesc,
			SecondaryField: advocate.FieldLastName,
			SecondaryDir:   listparams.SortAsc,
		})

		require.Len(t, expressions, 2)
		assert.Equal(t, advocate.FieldYearsOfExperience, expressions[0].Field)
		assert.True(t, expressions[0].Descending)
		assert.Equal(t, advocate.FieldLastName, expressions[1].Field)
		assert.False(t, expressions[1].Descending)
		assert.True(t, expressions[1].CaseInsensitive)
	})

	t.Run("non_sortable_secondary_dropped", func(t *testing.T) {
		expressions := advocate.BuildSortExpressions(listparams.Sort{
			Field:          advocate.FieldCreatedAt,
			Dir:            listparams.SortDesc,
			SecondaryField: advocate.FieldSpecialty,
			SecondaryDir:   listparams.SortAsc,
		})

		require.Len(t, expressions, 1)
		assert.Equal(t, advocate.FieldCreatedAt, expressions[0].Field)
	})

	t.Run("non_sortable_primary_yields_empty", func(t *testing.T) {
		expressions := advocate.BuildSortExpressions(listparams.Sort{
			Field: advocate.FieldSpecialty,
			Dir:   listparams.SortAsc,
		})
		assert.Empty(t, expressions)
	})
}

/*
TestSort_TwoLevels orders by experience descending, then last name ascending
within equal experience.
*/
func TestSort_TwoLevels(t *testing.T) {
	items := []*advocate.Advocate{
		{FirstName: "Ana", LastName: "young", YearsOfExperience: 5},
		{FirstName: "Bo", LastName: "Adams", YearsOfExperience: 9},
		{FirstName: "Cal", LastName: "Baker", YearsOfExperience: 5},
		{FirstName: "Di", LastName: "adler", YearsOfExperience: 5},
	}

	advocate.Sort(items, advocate.BuildSortExpressions(listparams.Sort{
		Field:          advocate.FieldYearsOfExperience,
		Dir:            listparams.SortDesc,
		SecondaryField: advocate.FieldLastName,
		SecondaryDir:   listparams.SortAsc,
	}))

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.LastName
	}
	// Within the 5-year group the collator folds case: adler < Baker < young.
	assert.Equal(t, []string{"Adams", "adler", "Baker", "young"}, got)
}

/*
TestSort_CaseInsensitiveNames verifies lowercase and uppercase names
interleave under the collator instead of splitting into case blocks.
*/
func TestSort_CaseInsensitiveNames(t *testing.T) {
	items := []*advocate.Advocate{
		{FirstName: "bob"},
		{FirstName: "Alice"},
		{FirstName: "carol"},
		{FirstName: "alex"},
	}

	advocate.Sort(items, advocate.BuildSortExpressions(listparams.Sort{
		Field: advocate.FieldFirstName,
		Dir:   listparams.SortAsc,
	}))

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.FirstName
	}
	assert.Equal(t, []string{"alex", "Alice", "bob", "carol"}, got)
}

/*
TestSort_StableOnTies verifies rows equal under every expression keep their
original relative order.
*/
func TestSort_StableOnTies(t *testing.T) {
	items := []*advocate.Advocate{
		{ID: "first", YearsOfExperience: 3},
		{ID: "second", YearsOfExperience: 3},
		{ID: "third", YearsOfExperience: 3},
	}

	advocate.Sort(items, advocate.BuildSortExpressions(listparams.Sort{
		Field: advocate.FieldYearsOfExperience,
		Dir:   listparams.SortAsc,
	}))

	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "second", items[1].ID)
	assert.Equal(t, "third", items[2].ID)
}

/*
TestSort_CreatedAt orders by timestamp in both directions.
*/
func TestSort_CreatedAt(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []*advocate.Advocate{
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
		{ID: "newest", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "oldest", CreatedAt: base},
	}

	advocate.Sort(items, advocate.BuildSortExpressions(listparams.Sort{
		Field: advocate.FieldCreatedAt,
		Dir:   listparams.SortDesc,
	}))

	assert.Equal(t, "newest", items[0].ID)
	assert.Equal(t, "oldest", items[2].ID)
}

/*
TestSort_NoExpressions leaves the slice untouched.
*/
func TestSort_NoExpressions(t *testing.T) {
	items := []*advocate.Advocate{{ID: "b"}, {ID: "a"}}
	advocate.Sort(items, nil)

	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}
