package evaluate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/datar-psa/ordereval/api"
	"github.com/datar-psa/ordereval/internal/testutils"
)

func TestEvaluateLineItemFields(t *testing.T) {
	t.Run("absent collections leave every attribute unjudged", func(t *testing.T) {
		got := EvaluateLineItemFields(nil, nil)
		if diff := cmp.Diff(LineItemFieldResults{}, got); diff != "" {
			t.Errorf("EvaluateLineItemFields(nil, nil) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("evaluates each tracked attribute", func(t *testing.T) {
		parsed := []api.LineItem{{
			Name:      testutils.S("success"),
			Color:     testutils.S("parsed"),
			ProductID: testutils.S("parsed"),
			ImageURL:  testutils.S("parsed"),
			Size:      testutils.S("parsed"),
			UnitPrice: testutils.F(1),
		}}
		labeled := []api.ReferenceLineItem{{
			Name:      api.RefOf("successful"),
			Color:     testutils.S("expected"),
			ProductID: api.RefOf("expected"),
			ImageURL:  api.RefOf("expected"),
			Quantity:  testutils.F(1),
			Size:      testutils.S("expected"),
			UnitPrice: testutils.F(1),
		}}

		got := EvaluateLineItemFields(parsed, labeled)

		wantMatches := map[string]api.MatchKey{
			"name":      api.MatchPartial,
			"color":     api.MatchNo,
			"productId": api.MatchNo,
			"imageUrl":  api.MatchNo,
			"quantity":  api.MatchFull, // parsed quantity defaults to 1
			"size":      api.MatchNo,
			"unitPrice": api.MatchFull,
			"url":       api.MatchInapplicable, // unset on both sides
		}
		gotMatches := map[string]api.MatchKey{
			"name":      got.Name.Match,
			"color":     got.Color.Match,
			"productId": got.ProductID.Match,
			"imageUrl":  got.ProductImageURL.Match,
			"quantity":  got.Quantity.Match,
			"size":      got.Size.Match,
			"unitPrice": got.UnitPrice.Match,
			"url":       got.URL.Match,
		}
		if diff := cmp.Diff(wantMatches, gotMatches); diff != "" {
			t.Errorf("attribute matches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("accepts any labeled alternative", func(t *testing.T) {
		parsed := []api.LineItem{{Name: testutils.S("Blue Runner Shoe")}}
		labeled := []api.ReferenceLineItem{{Name: api.RefAnyOf("Runner Shoe", "Blue Runner Shoe")}}

		got := EvaluateLineItemFields(parsed, labeled)
		if got.Name.Match != api.MatchFull {
			t.Errorf("Name.Match = %q, want %q", got.Name.Match, api.MatchFull)
		}
	})

	t.Run("substitutes the quantity default on both sides", func(t *testing.T) {
		parsed := []api.LineItem{{Quantity: testutils.F(1)}, {}}
		labeled := []api.ReferenceLineItem{{}, {Quantity: testutils.F(2)}}

		got := EvaluateLineItemFields(parsed, labeled)
		if got.Quantity.Match != api.MatchNo {
			t.Errorf("Quantity.Match = %q, want %q", got.Quantity.Match, api.MatchNo)
		}
		wantComments := []string{`lineItemQuantity[1] expected "2" but got "1"`}
		if diff := cmp.Diff(wantComments, got.Quantity.Comments); diff != "" {
			t.Errorf("Quantity.Comments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unit price tolerates one percent", func(t *testing.T) {
		parsed := []api.LineItem{{UnitPrice: testutils.F(100.5)}}
		labeled := []api.ReferenceLineItem{{UnitPrice: testutils.F(100)}}

		got := EvaluateLineItemFields(parsed, labeled)
		if got.UnitPrice.Match != api.MatchPartial {
			t.Errorf("UnitPrice.Match = %q, want %q", got.UnitPrice.Match, api.MatchPartial)
		}
	})

	t.Run("collection length mismatch propagates", func(t *testing.T) {
		parsed := []api.LineItem{{Name: testutils.S("foo")}}
		labeled := []api.ReferenceLineItem{{Name: api.RefOf("foo")}, {Name: api.RefOf("bar")}}

		got := EvaluateLineItemFields(parsed, labeled)
		want := api.FieldResult{
			Match:    api.MatchNo,
			Comments: []string{"expected 2 results but got 1"},
		}
		if diff := cmp.Diff(want, got.Name); diff != "" {
			t.Errorf("Name mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestEvaluateLineItemCount(t *testing.T) {
	tests := []struct {
		name    string
		parsed  []api.LineItem
		labeled []api.ReferenceLineItem
		want    api.FieldResult
	}{
		{
			name: "both absent",
			want: api.FieldResult{},
		},
		{
			name:    "equal counts",
			parsed:  []api.LineItem{{Name: testutils.S("foo")}},
			labeled: []api.ReferenceLineItem{{Name: api.RefOf("bar")}},
			want:    api.FieldResult{Match: api.MatchFull},
		},
		{
			name:    "different counts",
			parsed:  []api.LineItem{{Name: testutils.S("foo")}},
			labeled: []api.ReferenceLineItem{{Name: api.RefOf("bar")}, {Name: api.RefOf("baz")}},
			want: api.FieldResult{
				Match:    api.MatchNo,
				Comments: []string{"expected 2 results but got 1"},
			},
		},
		{
			name:   "empty versus absent",
			parsed: []api.LineItem{},
			want:   api.FieldResult{Match: api.MatchFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateLineItemCount(tt.parsed, tt.labeled)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("EvaluateLineItemCount() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
