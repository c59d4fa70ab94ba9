package inventory

import "strings"

// Consolidate joins purchased items with predictions by case-insensitive
// exact name. The result has one record per purchased item, in the same
// order. The first matching prediction wins; unmatched items get a nil
// ExpirationDays.
func Consolidate(purchased []PurchasedItem, predicted []PredictedExpiry) []ConsolidatedItem {
	index := make(map[string]int, len(predicted))
	for i := len(predicted) - 1; i >= 0; i-- {
		index[strings.ToLower(predicted[i].Name)] = predicted[i].ExpirationDays
	}

	out := make([]ConsolidatedItem, 0, len(purchased))
	for _, p := range purchased {
		c := ConsolidatedItem{Name: p.Name, Quantity: p.Quantity, Price: p.Price}
		if days, ok := index[strings.ToLower(p.Name)]; ok {
			c.ExpirationDays = &days
		}
		out = append(out, c)
	}
	return out
}

// FromPredictions is used when a scan has no receipt: every prediction
// becomes one unit with no known price.
func FromPredictions(predicted []PredictedExpiry) []PurchasedItem {
	out := make([]PurchasedItem, 0, len(predicted))
	for _, p := range predicted {
		out = append(out, PurchasedItem{Name: p.Name, Quantity: 1})
	}
	return out
}

// Names lists purchased item names, in order, for the analysis request.
func Names(purchased []PurchasedItem) []string {
	out := make([]string, 0, len(purchased))
	for _, p := range purchased {
		out = append(out, p.Name)
	}
	return out
}
