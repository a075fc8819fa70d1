// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fk-solace/advora/pkg/listparams"
)

// SortExpression is one compiled ordering level: the field to compare,
// the direction, and whether comparison folds case.
type SortExpression struct {
	Field           string
	Descending      bool
	CaseInsensitive bool
}

// BuildSortExpressions compiles the sort descriptor into an ordered
// expression list: primary first, then the secondary when present. Fields
// outside the sortable set produce no expression, so a fully invalid
// descriptor yields an empty list and the caller keeps natural order.
func BuildSortExpressions(descriptor listparams.Sort) []SortExpression {
	var expressions []SortExpression

	if field, ok := QuerySchema.Field(descriptor.Field); ok && field.Sortable {
		expressions = append(expressions, SortExpression{
			Field:           field.Name,
			Descending:      descriptor.Dir == listparams.SortDesc,
			CaseInsensitive: field.CaseInsensitive,
		})
	}

	if descriptor.HasSecondary() {
		if field, ok := QuerySchema.Field(descriptor.SecondaryField); ok && field.Sortable {
			expressions = append(expressions, SortExpression{
				Field:           field.Name,
				Descending:      descriptor.SecondaryDir == listparams.SortDesc,
				CaseInsensitive: field.CaseInsensitive,
			})
		}
	}

	return expressions
}

// Sort orders the advocates in place by the expression list. The sort is
// stable so rows equal under every expression keep their fetch order.
//
// Case-insensitive fields compare through a Unicode collator rather than a
// bytewise fold, matching how names with diacritics are expected to order.
func Sort(items []*Advocate, expressions []SortExpression) {
	if len(expressions) == 0 {
		return
	}

	// Collators buffer internal state, so each invocation gets its own.
	collator := collate.New(language.English, collate.IgnoreCase)

	sort.SliceStable(items, func(i, j int) bool {
		for _, expression := range expressions {
			cmp := compareField(collator, items[i], items[j], expression)
			if cmp == 0 {
				continue
			}
			if expression.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareField compares one field of two advocates, returning the usual
// negative/zero/positive contract.
func compareField(collator *collate.Collator, a, b *Advocate, expression SortExpression) int {
	left, okLeft := FieldValue(a, expression.Field)
	right, okRight := FieldValue(b, expression.Field)
	if !okLeft || !okRight {
		return 0
	}

	switch leftValue := left.(type) {
	case string:
		rightValue, _ := right.(string)
		if expression.CaseInsensitive {
			return collator.CompareString(leftValue, rightValue)
		}
		return strings.Compare(leftValue, rightValue)

	case int:
		rightValue, _ := right.(int)
		return leftValue - rightValue

	case int64:
		rightValue, _ := right.(int64)
		switch {
		case leftValue < rightValue:
			return -1
		case leftValue > rightValue:
			return 1
		}
		return 0

	case time.Time:
		rightValue, _ := right.(time.Time)
		return leftValue.Compare(rightValue)
	}

	return 0
}
