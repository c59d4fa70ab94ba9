package freshness

// ExpiringSoonMaxDays is the highlight cutoff for listings. It is kept apart
// from the band bounds above on purpose: 5 days is "act now", while the
// meter still shows Average for 5 and 6.
const ExpiringSoonMaxDays = 5

func IsExpiringSoon(days int) bool {
	return days <= ExpiringSoonMaxDays
}

// Partition splits items into expiring-soon and other, keeping the input
// order in both halves. daysOf extracts the expiry of an element.
func Partition[T any](items []T, daysOf func(T) int) (soon, other []T) {
	soon = make([]T, 0, len(items))
	other = make([]T, 0, len(items))
	for _, it := range items {
		if IsExpiringSoon(daysOf(it)) {
			soon = append(soon, it)
		} else {
			other = append(other, it)
		}
	}
	return soon, other
}
