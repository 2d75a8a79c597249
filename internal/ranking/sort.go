// Package ranking provides the chronological ranking heuristic used to order resume entries.
package ranking

import "sort"

// SortByDateDesc returns a new slice ordered latest-first by the date rank of
// each item's date text. Unrankable entries keep their relative order after all
// ranked entries; equal ranks keep their original relative order. The input
// slice is not mutated.
func SortByDateDesc[T any](items []T, date func(T) string) []T {
	type ranked struct {
		item T
		rank Rank
	}

	decorated := make([]ranked, len(items))
	for i, item := range items {
		decorated[i] = ranked{item: item, rank: ParseDateRank(date(item))}
	}

	sort.SliceStable(decorated, func(i, j int) bool {
		a, b := decorated[i].rank, decorated[j].rank
		if !a.Known || !b.Known {
			// Ranked entries precede unranked ones; two unranked entries tie.
			return a.Known && !b.Known
		}
		return a.Value > b.Value
	})

	sorted := make([]T, len(decorated))
	for i, d := range decorated {
		sorted[i] = d.item
	}
	return sorted
}
