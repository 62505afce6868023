package postgres

import "github.com/google/uuid"

// sameIDSet reports whether the requested reorder covers exactly the current
// child set, no more and no less. Duplicates in the request fail the check.
func sameIDSet(current, requested []uuid.UUID) bool {
	if len(current) != len(requested) {
		return false
	}
	seen := make(map[uuid.UUID]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	for _, id := range requested {
		if !seen[id] {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}
