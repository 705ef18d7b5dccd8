package order

import (
	"slices"
)

// Partition splits orders into active and archived without reordering.
func Partition(orders []Order) (active, archived []Order) {
	for _, o := range orders {
		if o.Status.Active() {
			active = append(active, o)
		} else {
			archived = append(archived, o)
		}
	}
	return active, archived
}

// SortActive orders the working board: by status weight, then READY
// orders oldest first and everything else newest first.
func SortActive(orders []Order) {
	slices.SortStableFunc(orders, compareActive)
}

func compareActive(a, b Order) int {
	wa, wb := a.Status.Weight(), b.Status.Weight()
	if wa != wb {
		return wa - wb
	}
	if a.Status == StatusReady && b.Status == StatusReady {
		return a.CreatedAt.Compare(b.CreatedAt)
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

// SortArchived puts the most recent order first.
func SortArchived(orders []Order) {
	slices.SortStableFunc(orders, func(a, b Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

// Classify partitions and sorts in one step. The input slice is not modified.
func Classify(orders []Order) (active, archived []Order) {
	active, archived = Partition(orders)
	SortActive(active)
	SortArchived(archived)
	return active, archived
}
