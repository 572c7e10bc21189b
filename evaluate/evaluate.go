// Package evaluate turns comparator outcomes into per-field results with
// human-readable diagnostics, and assembles the full comparison report for
// one (parsed, labeled) record pair.
package evaluate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/compare"
	"github.com/datar-psa/ordereval/normalize"
)

// FormatValue renders a value for a diagnostic comment. Timestamps render as
// calendar days, numbers without a fixed precision, absent values as the
// empty string, and a multi-valued reference as its alternatives joined
// with " | ".
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case time.Time:
		return v.Format(normalize.DayFormat)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(normalize.DayFormat)
	case api.Ref:
		return strings.Join(v.Values(), " | ")
	}
	return fmt.Sprint(value)
}

// CreateMismatchComment renders the shared diagnostic line for a Partial or
// No outcome; a Full match renders as the empty string.
func CreateMismatchComment(match api.MatchKey, parsed, labeled any, prefix string) string {
	if match == api.MatchFull {
		return ""
	}
	got := " "
	if match == api.MatchPartial {
		got = " partial match "
	}
	comment := fmt.Sprintf("%s expected %q but got%s%q", prefix, FormatValue(labeled), got, FormatValue(parsed))
	return strings.TrimSpace(comment)
}

// fieldResult wraps a comparator outcome, attaching the mismatch comment for
// Partial and No outcomes.
func fieldResult(match api.MatchKey, parsed, labeled any) api.FieldResult {
	result := api.FieldResult{Match: match}
	if match == api.MatchNo || match == api.MatchPartial {
		result.Comments = []string{CreateMismatchComment(match, parsed, labeled, "")}
	}
	return result
}

func numericField(parsed, labeled *float64, opts compare.Options) api.FieldResult {
	return fieldResult(compare.Numerics(parsed, labeled, opts), parsed, labeled)
}

func stringField(parsed *string, labeled api.Ref, opts compare.Options) api.FieldResult {
	return fieldResult(compare.Strings(parsed, labeled, opts), parsed, labeled)
}

func dateField(parsed, labeled *time.Time, opts compare.Options) api.FieldResult {
	return fieldResult(compare.Dates(parsed, labeled, opts), parsed, labeled)
}

func statusField(parsed, labeled *string) api.FieldResult {
	return fieldResult(compare.OrderStatus(parsed, labeled), parsed, labeled)
}

func exactField(parsed, labeled *string) api.FieldResult {
	if parsed == nil && labeled == nil {
		return api.FieldResult{}
	}
	return fieldResult(compare.Exact(derefAny(parsed), derefAny(labeled)), parsed, labeled)
}

func derefAny(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// EvaluateArray compares two index-aligned lists element by element. Both
// lists absent is inapplicable; a length mismatch is an immediate No. With
// equal lengths, No dominates Partial dominates Full, every non-full index
// contributes a diagnostic, and inapplicable elements never penalize.
func EvaluateArray[P, L any](name string, parsed []P, labeled []L, comparator func(P, L) api.MatchKey) api.FieldResult {
	if parsed == nil && labeled == nil {
		return api.FieldResult{}
	}

	if len(parsed) != len(labeled) {
		return api.FieldResult{
			Match:    api.MatchNo,
			Comments: []string{lengthMismatchComment(len(labeled), len(parsed))},
		}
	}

	match := api.MatchFull
	var comments []string
	for i := range parsed {
		m := comparator(parsed[i], labeled[i])
		if m != api.MatchPartial && m != api.MatchNo {
			continue
		}
		comments = append(comments, CreateMismatchComment(m, parsed[i], labeled[i], fmt.Sprintf("%s[%d]", name, i)))
		if m == api.MatchNo {
			match = api.MatchNo
		} else if match == api.MatchFull {
			match = api.MatchPartial
		}
	}

	return api.FieldResult{Match: match, Comments: comments}
}

func lengthMismatchComment(labeledLen, parsedLen int) string {
	return fmt.Sprintf("expected %d results but got %d", labeledLen, parsedLen)
}

// stringArray evaluates index-aligned plain string lists with the string
// comparator.
func stringArray(name string, parsed, labeled []string, opts compare.Options) api.FieldResult {
	return EvaluateArray(name, parsed, labeled, func(p, l string) api.MatchKey {
		return compare.Strings(&p, api.RefOf(l), opts)
	})
}

// exactArray evaluates index-aligned plain string lists with the exact
// comparator only.
func exactArray(name string, parsed, labeled []string) api.FieldResult {
	return EvaluateArray(name, parsed, labeled, func(p, l string) api.MatchKey {
		return compare.Exact(p, l)
	})
}

// EvaluateCostsAddUp reconciles both sides' computed totals against the
// labeled total amount. Ground truth that is missing or internally
// inconsistent yields an inapplicable result with an explanatory comment
// rather than penalizing the parsed side.
func EvaluateCostsAddUp(parsed api.Record, labeled api.ReferenceRecord) api.FieldResult {
	labeledCosts := labeled.Costs()
	if labeledCosts.TotalAmount == nil || *labeledCosts.TotalAmount == 0 {
		return api.FieldResult{
			Match:    api.MatchInapplicable,
			Comments: []string{"labeled record has no total amount to reconcile against"},
		}
	}

	opts := compare.Options{AllowPartial: true, Leeway: api.Leeway.CostsAddUp}

	// The labeled side must reconcile with itself before the parsed side
	// is judged.
	labeledTotal := compare.CalculateOrderTotal(labeledCosts)
	if compare.Numerics(&labeledTotal, labeledCosts.TotalAmount, opts) == api.MatchNo {
		return api.FieldResult{
			Match:    api.MatchInapplicable,
			Comments: []string{"labeled costs do not add up to the labeled total amount"},
		}
	}

	parsedTotal := compare.CalculateOrderTotal(parsed.Costs())
	match := compare.Numerics(&parsedTotal, labeledCosts.TotalAmount, opts)
	result := api.FieldResult{Match: match}
	if match != api.MatchFull {
		result.Comments = []string{CreateMismatchComment(match, parsedTotal, *labeledCosts.TotalAmount, "")}
	}
	return result
}
