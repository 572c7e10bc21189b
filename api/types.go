package api

import (
	"encoding/json"
	"time"
)

// MatchKey classifies the outcome of comparing one parsed value against its
// labeled reference.
type MatchKey string

const (
	MatchFull    MatchKey = "Full match"
	MatchPartial MatchKey = "Partial Match"
	MatchNo      MatchKey = "No match"

	// MatchInapplicable means both sides were unset and no judgment was
	// made. It is distinct from the three real outcomes and is the zero
	// value, so an untouched FieldResult reads as "not judged".
	MatchInapplicable MatchKey = ""
)

// FullOrPartial reports whether m is one of the two passing outcomes.
func (m MatchKey) FullOrPartial() bool {
	return m == MatchFull || m == MatchPartial
}

// FieldResult is the evaluation of a single attribute.
//
// Comments carry human-readable mismatch diagnostics. They are populated for
// Partial and No outcomes; costsAddUp additionally explains its inapplicable
// outcomes (missing or internally inconsistent ground truth).
type FieldResult struct {
	Match    MatchKey `json:"match,omitempty"`
	Comments []string `json:"comments,omitempty"`
}

// LineItem is one nested item of a parsed order. Every field is
// independently optional; nil means "not extracted".
type LineItem struct {
	Color     *string  `json:"color,omitempty"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
	Name      *string  `json:"name,omitempty"`
	ProductID *string  `json:"productId,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Size      *string  `json:"size,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	URL       *string  `json:"url,omitempty"`
}

// Record is a machine-extracted order/shipment snapshot. Every field is
// independently optional; nil means "not extracted", never an error.
type Record struct {
	Carriers        []string   `json:"carriers,omitempty"`
	Coupon          *float64   `json:"coupon,omitempty"`
	Currency        *string    `json:"currency,omitempty"`
	Discount        *float64   `json:"discount,omitempty"`
	GiftCard        *float64   `json:"giftCard,omitempty"`
	LineItems       []LineItem `json:"lineItems,omitempty"`
	MerchantDomain  *string    `json:"merchantDomain,omitempty"`
	MerchantName    *string    `json:"merchantName,omitempty"`
	OrderDate       *time.Time `json:"orderDate,omitempty"`
	OrderNumbers    []string   `json:"orderNumbers,omitempty"`
	ShippingTotal   *float64   `json:"shippingTotal,omitempty"`
	Status          *string    `json:"status,omitempty"`
	TotalAmount     *float64   `json:"totalAmount,omitempty"`
	TotalTaxAmount  *float64   `json:"totalTaxAmount,omitempty"`
	TrackingLinks   []string   `json:"trackingLinks,omitempty"`
	TrackingNumbers []string   `json:"trackingNumbers,omitempty"`
}

// ReferenceLineItem is the labeled counterpart of LineItem. The string-like
// fields hold a Ref because labelers may record several acceptable answers.
type ReferenceLineItem struct {
	Color     *string  `json:"color,omitempty"`
	ImageURL  Ref      `json:"imageUrl,omitzero"`
	Name      Ref      `json:"name,omitzero"`
	ProductID Ref      `json:"productId,omitzero"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Size      *string  `json:"size,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	URL       Ref      `json:"url,omitzero"`
}

// ReferenceRecord is the human-labeled ground truth a Record is evaluated
// against. It is shaped like Record except where labeling ambiguity is
// modeled with Ref.
type ReferenceRecord struct {
	Carriers        []string            `json:"carriers,omitempty"`
	Coupon          *float64            `json:"coupon,omitempty"`
	Currency        *string             `json:"currency,omitempty"`
	Discount        *float64            `json:"discount,omitempty"`
	GiftCard        *float64            `json:"giftCard,omitempty"`
	LineItems       []ReferenceLineItem `json:"lineItems,omitempty"`
	MerchantDomain  *string             `json:"merchantDomain,omitempty"`
	MerchantName    Ref                 `json:"merchantName,omitzero"`
	OrderDate       *time.Time          `json:"orderDate,omitempty"`
	OrderNumbers    []string            `json:"orderNumbers,omitempty"`
	ShippingTotal   *float64            `json:"shippingTotal,omitempty"`
	Status          *string             `json:"status,omitempty"`
	TotalAmount     *float64            `json:"totalAmount,omitempty"`
	TotalTaxAmount  *float64            `json:"totalTaxAmount,omitempty"`
	TrackingLinks   []string            `json:"trackingLinks,omitempty"`
	TrackingNumbers []string            `json:"trackingNumbers,omitempty"`
}

// Ref is a labeled reference value: absent, a single acceptable answer, or a
// set of acceptable answers. The three states are an explicit tagged union;
// callers branch via Absent / One / AnyOf rather than inspecting a scalar.
type Ref struct {
	value *string
	anyOf []string
}

// RefOf returns a Ref holding a single acceptable value.
func RefOf(value string) Ref {
	return Ref{value: &value}
}

// RefAnyOf returns a Ref holding a set of acceptable values. With no values
// it is absent; with one it collapses to the single-value form.
func RefAnyOf(values ...string) Ref {
	switch len(values) {
	case 0:
		return Ref{}
	case 1:
		return RefOf(values[0])
	default:
		anyOf := make([]string, len(values))
		copy(anyOf, values)
		return Ref{anyOf: anyOf}
	}
}

// Absent reports whether no value was labeled.
func (r Ref) Absent() bool {
	return r.value == nil && len(r.anyOf) == 0
}

// IsZero lets encoding/json treat an absent Ref as omittable under omitzero.
func (r Ref) IsZero() bool {
	return r.Absent()
}

// One returns the single acceptable value, if that is the active arm.
func (r Ref) One() (string, bool) {
	if r.value == nil {
		return "", false
	}
	return *r.value, true
}

// AnyOf returns the set of acceptable values, if that is the active arm.
func (r Ref) AnyOf() ([]string, bool) {
	if len(r.anyOf) == 0 {
		return nil, false
	}
	return r.anyOf, true
}

// Values flattens the union into the list of acceptable values; nil when
// absent.
func (r Ref) Values() []string {
	if v, ok := r.One(); ok {
		return []string{v}
	}
	if vs, ok := r.AnyOf(); ok {
		return vs
	}
	return nil
}

// MarshalJSON renders a single value as a JSON string, a set as a JSON
// array, and an absent Ref as null.
func (r Ref) MarshalJSON() ([]byte, error) {
	if v, ok := r.One(); ok {
		return json.Marshal(v)
	}
	if vs, ok := r.AnyOf(); ok {
		return json.Marshal(vs)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts null, a string, or an array of strings.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var vs []string
		if err := json.Unmarshal(data, &vs); err != nil {
			return err
		}
		*r = RefAnyOf(vs...)
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = RefOf(v)
	return nil
}

// LineItemCost is the cost-relevant slice of one line item.
type LineItemCost struct {
	Quantity  *float64
	UnitPrice *float64
}

// CostFields is the subset of a record that participates in order total
// reconciliation. Both record types project onto it so the reconciliation
// math is written once.
type CostFields struct {
	Currency       *string
	Coupon         *float64
	Discount       *float64
	GiftCard       *float64
	ShippingTotal  *float64
	TotalAmount    *float64
	TotalTaxAmount *float64
	LineItems      []LineItemCost
}

// Costs projects the parsed record onto its cost-relevant fields.
func (r Record) Costs() CostFields {
	var items []LineItemCost
	for _, li := range r.LineItems {
		items = append(items, LineItemCost{Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	return CostFields{
		Currency:       r.Currency,
		Coupon:         r.Coupon,
		Discount:       r.Discount,
		GiftCard:       r.GiftCard,
		ShippingTotal:  r.ShippingTotal,
		TotalAmount:    r.TotalAmount,
		TotalTaxAmount: r.TotalTaxAmount,
		LineItems:      items,
	}
}

// Costs projects the labeled record onto its cost-relevant fields.
func (r ReferenceRecord) Costs() CostFields {
	var items []LineItemCost
	for _, li := range r.LineItems {
		items = append(items, LineItemCost{Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	return CostFields{
		Currency:       r.Currency,
		Coupon:         r.Coupon,
		Discount:       r.Discount,
		GiftCard:       r.GiftCard,
		ShippingTotal:  r.ShippingTotal,
		TotalAmount:    r.TotalAmount,
		TotalTaxAmount: r.TotalTaxAmount,
		LineItems:      items,
	}
}

// ComparisonResult is the full evaluation of one (parsed, labeled) pair:
// one FieldResult per attribute, the derived line-item aggregates, and the
// 0/1 aggregate accuracy score.
type ComparisonResult struct {
	Carriers        FieldResult `json:"carriers"`
	CostsAddUp      FieldResult `json:"costsAddUp"`
	Coupon          FieldResult `json:"coupon"`
	Currency        FieldResult `json:"currency"`
	Discount        FieldResult `json:"discount"`
	GiftCard        FieldResult `json:"giftCard"`
	MerchantDomain  FieldResult `json:"merchantDomain"`
	MerchantName    FieldResult `json:"merchantName"`
	OrderDate       FieldResult `json:"orderDate"`
	OrderNumbers    FieldResult `json:"orderNumbers"`
	ShippingTotal   FieldResult `json:"shippingTotal"`
	Status          FieldResult `json:"status"`
	TotalAmount     FieldResult `json:"totalAmount"`
	TotalTaxAmount  FieldResult `json:"totalTaxAmount"`
	TrackingLinks   FieldResult `json:"trackingLinks"`
	TrackingNumbers FieldResult `json:"trackingNumbers"`

	LineItemCount           FieldResult `json:"lineItemCount"`
	LineItemColor           FieldResult `json:"lineItemColor"`
	LineItemName            FieldResult `json:"lineItemName"`
	LineItemProductID       FieldResult `json:"lineItemProductId"`
	LineItemProductImageURL FieldResult `json:"lineItemProductImageUrl"`
	LineItemQuantity        FieldResult `json:"lineItemQuantity"`
	LineItemSize            FieldResult `json:"lineItemSize"`
	LineItemUnitPrice       FieldResult `json:"lineItemUnitPrice"`
	LineItemURL             FieldResult `json:"lineItemUrl"`

	APS int `json:"APS"`
}

// Field looks up an attribute's result by its wire identifier. The switch is
// deliberately explicit so the attribute set stays statically checked.
func (r *ComparisonResult) Field(name string) (FieldResult, bool) {
	switch name {
	case "carriers":
		return r.Carriers, true
	case "costsAddUp":
		return r.CostsAddUp, true
	case "coupon":
		return r.Coupon, true
	case "currency":
		return r.Currency, true
	case "discount":
		return r.Discount, true
	case "giftCard":
		return r.GiftCard, true
	case "merchantDomain":
		return r.MerchantDomain, true
	case "merchantName":
		return r.MerchantName, true
	case "orderDate":
		return r.OrderDate, true
	case "orderNumbers":
		return r.OrderNumbers, true
	case "shippingTotal":
		return r.ShippingTotal, true
	case "status":
		return r.Status, true
	case "totalAmount":
		return r.TotalAmount, true
	case "totalTaxAmount":
		return r.TotalTaxAmount, true
	case "trackingLinks":
		return r.TrackingLinks, true
	case "trackingNumbers":
		return r.TrackingNumbers, true
	case "lineItemCount":
		return r.LineItemCount, true
	case "lineItemColor":
		return r.LineItemColor, true
	case "lineItemName":
		return r.LineItemName, true
	case "lineItemProductId":
		return r.LineItemProductID, true
	case "lineItemProductImageUrl":
		return r.LineItemProductImageURL, true
	case "lineItemQuantity":
		return r.LineItemQuantity, true
	case "lineItemSize":
		return r.LineItemSize, true
	case "lineItemUnitPrice":
		return r.LineItemUnitPrice, true
	case "lineItemUrl":
		return r.LineItemURL, true
	}
	return FieldResult{}, false
}
