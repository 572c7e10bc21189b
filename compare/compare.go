// Package compare implements the per-type comparison functions that judge a
// parsed value against its labeled reference. Every comparator is a pure
// function returning a MatchKey; absence is data, never an error.
package compare

import (
	"math"
	"time"

	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/normalize"
	"github.com/datar-psa/ordereval/trigram"
)

const (
	// maxWrongTrigrams bounds how many reference trigrams may be missing
	// from the parsed string before a partial string match is refused.
	maxWrongTrigrams = 5

	// allowedDateDifferenceHours is the partial-match window between the
	// raw timestamps, in whole hours.
	allowedDateDifferenceHours = 24
)

// Options tunes a comparator call.
type Options struct {
	// AllowPartial permits the Partial Match outcome.
	AllowPartial bool
	// Leeway is the fractional tolerance band around the labeled value
	// within which a numeric mismatch still counts as partial.
	Leeway float64
}

// Exact reports Full when the normalized forms of both values are equal,
// No otherwise. It is the base test used by every other comparator. Callers
// pass dereferenced values, or nil for an absent side.
func Exact(parsed, labeled any) api.MatchKey {
	if normalize.ForMatch(parsed) == normalize.ForMatch(labeled) {
		return api.MatchFull
	}
	return api.MatchNo
}

// Numerics compares two optional numbers. Under partial matching an absent
// side paired with a zero is tolerated, and a present pair is accepted when
// the parsed value falls within labeled ± labeled×leeway.
func Numerics(parsed, labeled *float64, opts Options) api.MatchKey {
	if parsed == nil && labeled == nil {
		return api.MatchInapplicable
	}
	if parsed == nil || labeled == nil {
		present := parsed
		if present == nil {
			present = labeled
		}
		if *present == 0 && opts.AllowPartial {
			return api.MatchPartial
		}
		return api.MatchNo
	}
	if Exact(*parsed, *labeled) == api.MatchFull {
		return api.MatchFull
	}
	if opts.AllowPartial && opts.Leeway > 0 {
		lower := *labeled - *labeled*opts.Leeway
		upper := *labeled + *labeled*opts.Leeway
		if lower > upper {
			lower, upper = upper, lower
		}
		if *parsed >= lower && *parsed <= upper {
			return api.MatchPartial
		}
	}
	return api.MatchNo
}

// Strings compares a parsed string against a labeled reference that may
// carry several acceptable answers. Any normalized-equal answer wins Full.
// Under partial matching, an answer whose trigram set is mostly covered by
// the parsed string (at most maxWrongTrigrams missing, at least one shared)
// yields Partial.
func Strings(parsed *string, labeled api.Ref, opts Options) api.MatchKey {
	if parsed == nil && labeled.Absent() {
		return api.MatchInapplicable
	}
	if parsed == nil || labeled.Absent() {
		return api.MatchNo
	}

	var accepted []string
	if one, ok := labeled.One(); ok {
		accepted = []string{one}
	} else if anyOf, ok := labeled.AnyOf(); ok {
		accepted = anyOf
	}

	for _, want := range accepted {
		if Exact(*parsed, want) == api.MatchFull {
			return api.MatchFull
		}
	}

	if !opts.AllowPartial {
		return api.MatchNo
	}

	parsedSet := trigram.Set(normalize.String(*parsed))
	for _, want := range accepted {
		missing, shared := 0, 0
		for gram := range trigram.Set(normalize.String(want)) {
			if _, ok := parsedSet[gram]; ok {
				shared++
			} else {
				missing++
			}
		}
		if missing <= maxWrongTrigrams && shared > 0 {
			return api.MatchPartial
		}
	}
	return api.MatchNo
}

// Dates compares two optional timestamps. Same calendar day is Full; under
// partial matching a raw difference of up to 24 whole hours is Partial.
func Dates(parsed, labeled *time.Time, opts Options) api.MatchKey {
	if parsed == nil && labeled == nil {
		return api.MatchInapplicable
	}
	if parsed == nil || labeled == nil {
		return api.MatchNo
	}
	if Exact(*parsed, *labeled) == api.MatchFull {
		return api.MatchFull
	}
	if opts.AllowPartial {
		hours := math.Trunc(math.Abs(parsed.Sub(*labeled).Hours()))
		if hours <= allowedDateDifferenceHours {
			return api.MatchPartial
		}
	}
	return api.MatchNo
}

// statusAbsent stands for an absent parsed status inside the override table.
const statusAbsent = ""

// statusAccepts maps a labeled order status to the parsed statuses accepted
// as equivalent.
var statusAccepts = map[string][]string{
	"order_delayed":         {"other", "order_in_transit"},
	"order_delivery_failed": {"other", "order_in_transit"},
	"other":                 {statusAbsent},
}

// OrderStatus compares order statuses with the fixed override table. There
// is no partial outcome for statuses.
func OrderStatus(parsed, labeled *string) api.MatchKey {
	if parsed == nil && labeled == nil {
		return api.MatchInapplicable
	}
	if parsed != nil && labeled != nil && *parsed == *labeled {
		return api.MatchFull
	}
	if labeled != nil {
		for _, accepted := range statusAccepts[*labeled] {
			if accepted == statusAbsent {
				if parsed == nil {
					return api.MatchFull
				}
				continue
			}
			if parsed != nil && *parsed == accepted {
				return api.MatchFull
			}
		}
	}
	return api.MatchNo
}
