package api

// LeewayTable holds the fractional tolerance applied per numeric attribute.
// A parsed value within labeled ± labeled×leeway still counts as a partial
// match.
type LeewayTable struct {
	Coupon            float64
	Discount          float64
	GiftCard          float64
	ShippingTotal     float64
	TotalAmount       float64
	TotalTaxAmount    float64
	CostsAddUp        float64
	LineItemUnitPrice float64
}

// Leeway is the process-wide tolerance configuration. It is immutable and
// safe to share across concurrent evaluations.
var Leeway = LeewayTable{
	Coupon:            0.05,
	Discount:          0.005,
	GiftCard:          0.05,
	ShippingTotal:     0.5,
	TotalAmount:       0.01,
	TotalTaxAmount:    0.02,
	CostsAddUp:        0.05,
	LineItemUnitPrice: 0.01,
}

// APSFields lists the attributes that feed the aggregate accuracy score, by
// wire identifier. trackingLinks is skipped at scoring time when both
// trackingNumbers and carriers already matched. Immutable.
var APSFields = []string{
	"carriers",
	"costsAddUp",
	"currency",
	"lineItemCount",
	"lineItemName",
	"lineItemProductImageUrl",
	"lineItemUnitPrice",
	"merchantName",
	"orderDate",
	"orderNumbers",
	"status",
	"totalAmount",
	"trackingLinks",
	"trackingNumbers",
}
