// Package ordereval scores machine-extracted order/shipment records against
// human-labeled references. The single entry point is CompareWithLabeled,
// which yields a per-field match classification with mismatch diagnostics
// and a 0/1 aggregate accuracy score (APS).
//
// Everything here is a pure in-memory function of its inputs: no I/O, no
// shared state, safe to call from any number of goroutines.
package ordereval

import (
	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/evaluate"
)

type Record = api.Record
type ReferenceRecord = api.ReferenceRecord
type LineItem = api.LineItem
type ReferenceLineItem = api.ReferenceLineItem
type Ref = api.Ref
type MatchKey = api.MatchKey
type FieldResult = api.FieldResult
type ComparisonResult = api.ComparisonResult

const (
	MatchFull         = api.MatchFull
	MatchPartial      = api.MatchPartial
	MatchNo           = api.MatchNo
	MatchInapplicable = api.MatchInapplicable
)

// RefOf wraps a single acceptable labeled value.
func RefOf(value string) Ref { return api.RefOf(value) }

// RefAnyOf wraps a set of acceptable labeled values.
func RefAnyOf(values ...string) Ref { return api.RefAnyOf(values...) }

// Leeway is the per-attribute fractional tolerance table.
var Leeway = api.Leeway

// APSFields lists the attributes that feed the aggregate accuracy score.
var APSFields = api.APSFields

// CompareWithLabeled evaluates parsed against labeled and returns the full
// comparison report, APS included.
func CompareWithLabeled(parsed Record, labeled ReferenceRecord) ComparisonResult {
	return evaluate.CompareWithLabeled(parsed, labeled)
}
