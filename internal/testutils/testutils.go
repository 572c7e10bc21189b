// Package testutils provides record fixtures shared across test packages.
package testutils

import (
	"time"

	"github.com/datar-psa/ordereval/api"
)

// F returns a pointer to v.
func F(v float64) *float64 { return &v }

// S returns a pointer to v.
func S(v string) *string { return &v }

// T returns a pointer to v.
func T(v time.Time) *time.Time { return &v }

// MockRecord builds a parsed record with every field unset, then applies the
// given mutators.
func MockRecord(mutators ...func(*api.Record)) api.Record {
	var rec api.Record
	for _, mutate := range mutators {
		mutate(&rec)
	}
	return rec
}

// MockReference builds a labeled record with every field unset, then applies
// the given mutators.
func MockReference(mutators ...func(*api.ReferenceRecord)) api.ReferenceRecord {
	var rec api.ReferenceRecord
	for _, mutate := range mutators {
		mutate(&rec)
	}
	return rec
}
