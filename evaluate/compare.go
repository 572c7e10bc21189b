package evaluate

import (
	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/compare"
)

// CompareWithLabeled evaluates a machine-extracted record against its
// human-labeled reference and returns per-field results plus the aggregate
// accuracy score. Pure: the same pair always yields the same result.
func CompareWithLabeled(parsed api.Record, labeled api.ReferenceRecord) api.ComparisonResult {
	fuzzy := compare.Options{AllowPartial: true}

	result := api.ComparisonResult{
		Status:   statusField(parsed.Status, labeled.Status),
		Currency: exactField(parsed.Currency, labeled.Currency),

		OrderDate:    dateField(parsed.OrderDate, labeled.OrderDate, fuzzy),
		OrderNumbers: exactArray("orderNumbers", parsed.OrderNumbers, labeled.OrderNumbers),

		Coupon:         numericField(parsed.Coupon, labeled.Coupon, compare.Options{AllowPartial: true, Leeway: api.Leeway.Coupon}),
		Discount:       numericField(parsed.Discount, labeled.Discount, compare.Options{AllowPartial: true, Leeway: api.Leeway.Discount}),
		GiftCard:       numericField(parsed.GiftCard, labeled.GiftCard, compare.Options{AllowPartial: true, Leeway: api.Leeway.GiftCard}),
		ShippingTotal:  numericField(parsed.ShippingTotal, labeled.ShippingTotal, compare.Options{AllowPartial: true, Leeway: api.Leeway.ShippingTotal}),
		TotalAmount:    numericField(parsed.TotalAmount, labeled.TotalAmount, compare.Options{AllowPartial: true, Leeway: api.Leeway.TotalAmount}),
		TotalTaxAmount: numericField(parsed.TotalTaxAmount, labeled.TotalTaxAmount, compare.Options{AllowPartial: true, Leeway: api.Leeway.TotalTaxAmount}),

		MerchantName:   stringField(parsed.MerchantName, labeled.MerchantName, fuzzy),
		MerchantDomain: stringField(parsed.MerchantDomain, refOfPtr(labeled.MerchantDomain), fuzzy),

		CostsAddUp: EvaluateCostsAddUp(parsed, labeled),

		Carriers:        stringArray("carriers", parsed.Carriers, labeled.Carriers, fuzzy),
		TrackingLinks:   stringArray("trackingLinks", parsed.TrackingLinks, labeled.TrackingLinks, fuzzy),
		TrackingNumbers: stringArray("trackingNumbers", parsed.TrackingNumbers, labeled.TrackingNumbers, fuzzy),

		LineItemCount: EvaluateLineItemCount(parsed.LineItems, labeled.LineItems),
	}

	lineItems := EvaluateLineItemFields(parsed.LineItems, labeled.LineItems)
	result.LineItemName = lineItems.Name
	result.LineItemColor = lineItems.Color
	result.LineItemProductID = lineItems.ProductID
	result.LineItemProductImageURL = lineItems.ProductImageURL
	result.LineItemQuantity = lineItems.Quantity
	result.LineItemSize = lineItems.Size
	result.LineItemUnitPrice = lineItems.UnitPrice
	result.LineItemURL = lineItems.URL

	result.APS = CalculateAPS(&result)
	return result
}
