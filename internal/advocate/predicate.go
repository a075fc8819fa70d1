// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fk-solace/advora/pkg/listparams"
)

// Predicate is a single filter compiled against the advocate projection.
// The listing applies the conjunction of all successfully built predicates.
type Predicate func(*Advocate) bool

// BuildPredicate compiles one filter descriptor into a [Predicate] using the
// field's declared classification.
//
// An unknown field or an operation outside the field's declared set is a
// schema/parser disagreement: the error is returned for the caller to log,
// and the offending filter is skipped without failing the request.
func BuildPredicate(filter listparams.Filter) (Predicate, error) {
	field, ok := QuerySchema.Field(filter.Field)
	if !ok {
		return nil, fmt.Errorf("advocate: unknown filter field %q", filter.Field)
	}
	if !field.Supports(filter.Op) {
		return nil, fmt.Errorf("advocate: field %q does not support operation %q", filter.Field, filter.Op)
	}

	switch field.Kind {
	case listparams.KindText:
		return textPredicate(filter)
	case listparams.KindExact:
		return exactPredicate(filter)
	case listparams.KindRange:
		return rangePredicate(filter)
	case listparams.KindArray:
		return arrayPredicate(filter)
	case listparams.KindLocation:
		return locationPredicate(filter)
	}
	return nil, fmt.Errorf("advocate: field %q has no predicate family", filter.Field)
}

// BuildPredicates compiles every filter in the bundle, reporting the ones
// that could not be built so the caller can log them. The returned slice
// contains only successful compilations.
func BuildPredicates(filters []listparams.Filter) ([]Predicate, []error) {
	var predicates []Predicate
	var errs []error
	for _, filter := range filters {
		predicate, err := BuildPredicate(filter)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		predicates = append(predicates, predicate)
	}
	return predicates, errs
}

// Matches reports whether the advocate satisfies every predicate.
func Matches(a *Advocate, predicates []Predicate) bool {
	for _, predicate := range predicates {
		if !predicate(a) {
			return false
		}
	}
	return true
}

// # Predicate Families

// textPredicate covers first/last name: exact equality plus case-insensitive
// substring, prefix, and suffix matching.
func textPredicate(filter listparams.Filter) (Predicate, error) {
	want, ok := filter.Value.(string)
	if !ok {
		return nil, fmt.Errorf("advocate: text filter %q requires a string value", filter.Field)
	}
	wantFolded := strings.ToLower(want)
	fieldName := filter.Field

	switch filter.Op {
	case listparams.OpEq:
		return func(a *Advocate) bool { return textValue(a, fieldName) == want }, nil
	case listparams.OpContains:
		return func(a *Advocate) bool {
			return strings.Contains(strings.ToLower(textValue(a, fieldName)), wantFolded)
		}, nil
	case listparams.OpStartsWith:
		return func(a *Advocate) bool {
			return strings.HasPrefix(strings.ToLower(textValue(a, fieldName)), wantFolded)
		}, nil
	case listparams.OpEndsWith:
		return func(a *Advocate) bool {
			return strings.HasSuffix(strings.ToLower(textValue(a, fieldName)), wantFolded)
		}, nil
	}
	return nil, fmt.Errorf("advocate: text field %q does not support %q", filter.Field, filter.Op)
}

// textValue resolves the raw string behind a text-classified field.
func textValue(a *Advocate, field string) string {
	switch field {
	case FieldFirstName:
		return a.FirstName
	case FieldLastName:
		return a.LastName
	}
	return ""
}

// exactPredicate covers the degree code: equality and set membership.
func exactPredicate(filter listparams.Filter) (Predicate, error) {
	switch filter.Op {
	case listparams.OpEq:
		want, ok := filter.Value.(string)
		if !ok {
			return nil, fmt.Errorf("advocate: exact filter %q requires a string value", filter.Field)
		}
		return func(a *Advocate) bool { return a.Degree == want }, nil

	case listparams.OpIn:
		wanted, ok := filter.Value.([]string)
		if !ok {
			return nil, fmt.Errorf("advocate: in filter %q requires a value list", filter.Field)
		}
		return func(a *Advocate) bool {
			for _, candidate := range wanted {
				if a.Degree == candidate {
					return true
				}
			}
			return false
		}, nil
	}
	return nil, fmt.Errorf("advocate: exact field %q does not support %q", filter.Field, filter.Op)
}

// rangePredicate covers years of experience: direct comparisons plus the
// positional min/max pair for between.
func rangePredicate(filter listparams.Filter) (Predicate, error) {
	if filter.Op == listparams.OpBetween {
		bounds, ok := filter.Value.([2]float64)
		if !ok {
			return nil, fmt.Errorf("advocate: between filter %q requires a numeric pair", filter.Field)
		}
		return func(a *Advocate) bool {
			years := float64(a.YearsOfExperience)
			return years >= bounds[0] && years <= bounds[1]
		}, nil
	}

	want, err := numericValue(filter)
	if err != nil {
		return nil, err
	}

	switch filter.Op {
	case listparams.OpEq:
		return func(a *Advocate) bool { return float64(a.YearsOfExperience) == want }, nil
	case listparams.OpGt:
		return func(a *Advocate) bool { return float64(a.YearsOfExperience) > want }, nil
	case listparams.OpGte:
		return func(a *Advocate) bool { return float64(a.YearsOfExperience) >= want }, nil
	case listparams.OpLt:
		return func(a *Advocate) bool { return float64(a.YearsOfExperience) < want }, nil
	case listparams.OpLte:
		return func(a *Advocate) bool { return float64(a.YearsOfExperience) <= want }, nil
	}
	return nil, fmt.Errorf("advocate: range field %q does not support %q", filter.Field, filter.Op)
}

// numericValue extracts the comparison operand. Equality shortcuts arrive as
// raw strings from the parser, so both representations are accepted.
func numericValue(filter listparams.Filter) (float64, error) {
	switch value := filter.Value.(type) {
	case float64:
		return value, nil
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("advocate: range filter %q value %q is not numeric", filter.Field, value)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("advocate: range filter %q has unsupported value type", filter.Field)
}

// arrayPredicate covers specialties. `any` is an existential match; `all`
// requires the advocate's specialty set to be a superset of the request.
func arrayPredicate(filter listparams.Filter) (Predicate, error) {
	wanted, ok := filter.Value.([]string)
	if !ok {
		return nil, fmt.Errorf("advocate: array filter %q requires a value list", filter.Field)
	}

	switch filter.Op {
	case listparams.OpAny:
		return func(a *Advocate) bool {
			for _, name := range wanted {
				if hasSpecialty(a, name) {
					return true
				}
			}
			return false
		}, nil

	case listparams.OpAll:
		return func(a *Advocate) bool {
			matched := 0
			for _, name := range distinct(wanted) {
				if hasSpecialty(a, name) {
					matched++
				}
			}
			return matched == len(distinct(wanted))
		}, nil
	}
	return nil, fmt.Errorf("advocate: array field %q does not support %q", filter.Field, filter.Op)
}

// hasSpecialty reports membership in the advocate's specialty list.
func hasSpecialty(a *Advocate, name string) bool {
	for _, specialty := range a.Specialties {
		if specialty == name {
			return true
		}
	}
	return false
}

// distinct deduplicates the requested names so repeated tokens cannot
// inflate the required match count for `all`.
func distinct(names []string) []string {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}
	return unique
}

// locationPredicate covers the city, which lives on the associated location
// row and is flattened onto the projection before filtering.
func locationPredicate(filter listparams.Filter) (Predicate, error) {
	want, ok := filter.Value.(string)
	if !ok {
		return nil, fmt.Errorf("advocate: location filter %q requires a string value", filter.Field)
	}
	wantFolded := strings.ToLower(want)

	switch filter.Op {
	case listparams.OpEq:
		return func(a *Advocate) bool { return a.City == want }, nil
	case listparams.OpContains:
		return func(a *Advocate) bool {
			return strings.Contains(strings.ToLower(a.City), wantFolded)
		}, nil
	}
	return nil, fmt.Errorf("advocate: location field %q does not support %q", filter.Field, filter.Op)
}
