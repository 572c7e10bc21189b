package evaluate

import (
	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/compare"
)

// LineItemFieldResults pools one result per tracked line-item attribute
// across the whole collection.
type LineItemFieldResults struct {
	Name            api.FieldResult
	Color           api.FieldResult
	ProductID       api.FieldResult
	ProductImageURL api.FieldResult
	Quantity        api.FieldResult
	Size            api.FieldResult
	UnitPrice       api.FieldResult
	URL             api.FieldResult
}

// Per-attribute comparator configuration. Names and colors tolerate fuzzy
// matches; identifiers and URLs must hit an acceptable value exactly.
var (
	lineItemFuzzyOpts = compare.Options{AllowPartial: true}
	lineItemExactOpts = compare.Options{}
	unitPriceOpts     = compare.Options{AllowPartial: true, Leeway: api.Leeway.LineItemUnitPrice}
)

// defaultQuantity substitutes for an unset quantity on either side before
// comparison: an unlabeled quantity means "one of it".
const defaultQuantity = 1.0

// EvaluateLineItemFields projects each tracked attribute across both
// line-item collections and evaluates the two projections index-aligned.
// An attribute that is entirely unset on both sides stays inapplicable.
func EvaluateLineItemFields(parsed []api.LineItem, labeled []api.ReferenceLineItem) LineItemFieldResults {
	return LineItemFieldResults{
		Name: pooledRef("lineItemName", parsed, labeled,
			func(li api.LineItem) *string { return li.Name },
			func(li api.ReferenceLineItem) api.Ref { return li.Name },
			lineItemFuzzyOpts),
		Color: pooledString("lineItemColor", parsed, labeled,
			func(li api.LineItem) *string { return li.Color },
			func(li api.ReferenceLineItem) *string { return li.Color },
			lineItemFuzzyOpts),
		ProductID: pooledRef("lineItemProductId", parsed, labeled,
			func(li api.LineItem) *string { return li.ProductID },
			func(li api.ReferenceLineItem) api.Ref { return li.ProductID },
			lineItemExactOpts),
		ProductImageURL: pooledRef("lineItemProductImageUrl", parsed, labeled,
			func(li api.LineItem) *string { return li.ImageURL },
			func(li api.ReferenceLineItem) api.Ref { return li.ImageURL },
			lineItemExactOpts),
		Quantity: pooledQuantity("lineItemQuantity", parsed, labeled),
		Size: pooledString("lineItemSize", parsed, labeled,
			func(li api.LineItem) *string { return li.Size },
			func(li api.ReferenceLineItem) *string { return li.Size },
			lineItemFuzzyOpts),
		UnitPrice: pooledUnitPrice("lineItemUnitPrice", parsed, labeled),
		URL: pooledRef("lineItemUrl", parsed, labeled,
			func(li api.LineItem) *string { return li.URL },
			func(li api.ReferenceLineItem) api.Ref { return li.URL },
			lineItemExactOpts),
	}
}

// EvaluateLineItemCount compares collection sizes only.
func EvaluateLineItemCount(parsed []api.LineItem, labeled []api.ReferenceLineItem) api.FieldResult {
	if parsed == nil && labeled == nil {
		return api.FieldResult{}
	}
	if len(parsed) == len(labeled) {
		return api.FieldResult{Match: api.MatchFull}
	}
	return api.FieldResult{
		Match:    api.MatchNo,
		Comments: []string{lengthMismatchComment(len(labeled), len(parsed))},
	}
}

func pooledRef(
	name string,
	parsed []api.LineItem,
	labeled []api.ReferenceLineItem,
	get func(api.LineItem) *string,
	getRef func(api.ReferenceLineItem) api.Ref,
	opts compare.Options,
) api.FieldResult {
	parsedValues := make([]*string, len(parsed))
	for i, li := range parsed {
		parsedValues[i] = get(li)
	}
	labeledValues := make([]api.Ref, len(labeled))
	for i, li := range labeled {
		labeledValues[i] = getRef(li)
	}
	if allNilStrings(parsedValues) && allAbsentRefs(labeledValues) {
		return api.FieldResult{}
	}
	return EvaluateArray(name, parsedValues, labeledValues, func(p *string, l api.Ref) api.MatchKey {
		return compare.Strings(p, l, opts)
	})
}

func pooledString(
	name string,
	parsed []api.LineItem,
	labeled []api.ReferenceLineItem,
	get func(api.LineItem) *string,
	getLabeled func(api.ReferenceLineItem) *string,
	opts compare.Options,
) api.FieldResult {
	parsedValues := make([]*string, len(parsed))
	for i, li := range parsed {
		parsedValues[i] = get(li)
	}
	labeledValues := make([]*string, len(labeled))
	for i, li := range labeled {
		labeledValues[i] = getLabeled(li)
	}
	if allNilStrings(parsedValues) && allNilStrings(labeledValues) {
		return api.FieldResult{}
	}
	return EvaluateArray(name, parsedValues, labeledValues, func(p, l *string) api.MatchKey {
		return compare.Strings(p, refOfPtr(l), opts)
	})
}

func pooledQuantity(name string, parsed []api.LineItem, labeled []api.ReferenceLineItem) api.FieldResult {
	parsedRaw := make([]*float64, len(parsed))
	for i, li := range parsed {
		parsedRaw[i] = li.Quantity
	}
	labeledRaw := make([]*float64, len(labeled))
	for i, li := range labeled {
		labeledRaw[i] = li.Quantity
	}
	if allNilFloats(parsedRaw) && allNilFloats(labeledRaw) {
		return api.FieldResult{}
	}
	return EvaluateArray(name, withDefault(parsedRaw, defaultQuantity), withDefault(labeledRaw, defaultQuantity),
		func(p, l float64) api.MatchKey {
			return compare.Exact(p, l)
		})
}

func pooledUnitPrice(name string, parsed []api.LineItem, labeled []api.ReferenceLineItem) api.FieldResult {
	parsedValues := make([]*float64, len(parsed))
	for i, li := range parsed {
		parsedValues[i] = li.UnitPrice
	}
	labeledValues := make([]*float64, len(labeled))
	for i, li := range labeled {
		labeledValues[i] = li.UnitPrice
	}
	if allNilFloats(parsedValues) && allNilFloats(labeledValues) {
		return api.FieldResult{}
	}
	return EvaluateArray(name, parsedValues, labeledValues, func(p, l *float64) api.MatchKey {
		return compare.Numerics(p, l, unitPriceOpts)
	})
}

func withDefault(values []*float64, def float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = *v
		} else {
			out[i] = def
		}
	}
	return out
}

func refOfPtr(p *string) api.Ref {
	if p == nil {
		return api.Ref{}
	}
	return api.RefOf(*p)
}

func allNilStrings(values []*string) bool {
	for _, v := range values {
		if v != nil {
			return false
		}
	}
	return true
}

func allNilFloats(values []*float64) bool {
	for _, v := range values {
		if v != nil {
			return false
		}
	}
	return true
}

func allAbsentRefs(values []api.Ref) bool {
	for _, v := range values {
		if !v.Absent() {
			return false
		}
	}
	return true
}
