package evaluate

import "github.com/datar-psa/ordereval/api"

// CalculateAPS derives the 0/1 aggregate accuracy score from the
// accuracy-relevant attributes. When tracking numbers and carriers both
// matched at least partially, trackingLinks is dropped from consideration
// as a redundant signal. Inapplicable and partial outcomes never
// disqualify; any remaining No does.
func CalculateAPS(result *api.ComparisonResult) int {
	skipTrackingLinks := result.TrackingNumbers.Match.FullOrPartial() &&
		result.Carriers.Match.FullOrPartial()

	for _, name := range api.APSFields {
		if name == "trackingLinks" && skipTrackingLinks {
			continue
		}
		if field, ok := result.Field(name); ok && field.Match == api.MatchNo {
			return 0
		}
	}
	return 1
}
