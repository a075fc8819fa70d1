// Copyright (c) 2026 Advora. All rights reserved.

package advocate

import (
	"fmt"

	"github.com/fk-solace/advora/pkg/listparams"
)

// QuerySchema is the declarative registry of queryable advocate fields: each
// entry carries its type classification and the exact operation set it
// accepts. Anything not declared here is silently dropped by the parser.
var QuerySchema = listparams.NewSchema(
	listparams.Field{
		Name:            FieldFirstName,
		Kind:            listparams.KindText,
		Ops:             textOps,
		Sortable:        true,
		CaseInsensitive: true,
	},
	listparams.Field{
		Name:            FieldLastName,
		Kind:            listparams.KindText,
		Ops:             textOps,
		Sortable:        true,
		CaseInsensitive: true,
	},
	listparams.Field{
		Name:     FieldDegree,
		Kind:     listparams.KindExact,
		Ops:      []listparams.Operation{listparams.OpEq, listparams.OpIn},
		Sortable: true,
	},
	listparams.Field{
		Name:     FieldYearsOfExperience,
		Kind:     listparams.KindRange,
		Ops:      rangeOps,
		Sortable: true,
	},
	// Shorthand for yearsOfExperience accepted in filter position only.
	listparams.Field{
		Name: FieldExperience,
		Kind: listparams.KindRange,
		Ops:  rangeOps,
	},
	listparams.Field{
		Name: FieldSpecialty,
		Kind: listparams.KindArray,
		Ops:  []listparams.Operation{listparams.OpAny, listparams.OpAll},
	},
	listparams.Field{
		Name: FieldCity,
		Kind: listparams.KindLocation,
		Ops:  []listparams.Operation{listparams.OpEq, listparams.OpContains},
	},
	listparams.Field{
		Name:     FieldCreatedAt,
		Sortable: true,
	},
)

var textOps = []listparams.Operation{
	listparams.OpEq,
	listparams.OpContains,
	listparams.OpStartsWith,
	listparams.OpEndsWith,
}

var rangeOps = []listparams.Operation{
	listparams.OpEq,
	listparams.OpGt,
	listparams.OpGte,
	listparams.OpLt,
	listparams.OpLte,
	listparams.OpBetween,
}

// init asserts schema/predicate consistency at startup: every declared
// field/operation pair must build a predicate, and every sortable field must
// resolve through [FieldValue]. A mismatch is a programming error, not a
// runtime condition, so it panics immediately.
func init() {
	probe := &Advocate{Specialties: []string{}}

	for _, field := range QuerySchema.Fields() {
		for _, op := range field.Ops {
			filter := listparams.Filter{Field: field.Name, Op: op, Value: probeValue(field, op)}
			if _, err := BuildPredicate(filter); err != nil {
				panic(fmt.Sprintf("advocate: schema declares unbuildable pair %s[%s]: %v", field.Name, op, err))
			}
		}
		if field.Sortable {
			if _, ok := FieldValue(probe, field.Name); !ok {
				panic(fmt.Sprintf("advocate: sortable field %q has no value resolver", field.Name))
			}
		}
	}
}

// probeValue yields a representative value of the shape the parser emits for
// the field/operation pair, used only by the startup consistency check.
func probeValue(field listparams.Field, op listparams.Operation) any {
	switch {
	case op.IsSetOp():
		return []string{"probe"}
	case op == listparams.OpBetween:
		return [2]float64{0, 1}
	case op.IsNumericOp():
		return float64(0)
	case field.Kind == listparams.KindRange:
		// The bare-key equality shortcut reaches the builder as a raw string
		// token, which must still parse as a number for range fields.
		return "1"
	}
	return "probe"
}
