package domain

import "strconv"

// HashString computes the deterministic 32-bit hash used for seeding
// card draws and orientation. The same string always yields the same
// value, which is what makes readings reproducible.
func HashString(s string) int {
	var h int32
	for _, r := range s {
		h = h*31 - h + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// DrawFromPool draws count cards from pool without replacement using the
// seeded index formula. The pool is copied, callers keep their slice.
func DrawFromPool(pool []Card, count, seed int) []Card {
	working := make([]Card, len(pool))
	copy(working, pool)

	if count > len(working) {
		count = len(working)
	}

	drawn := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		idx := (seed + i*1000 + i*i) % len(working)
		if idx < 0 {
			idx = -idx
		}
		drawn = append(drawn, working[idx])
		working = append(working[:idx], working[idx+1:]...)
	}
	return drawn
}

// IsReversed decides the orientation for a card within a reading.
// Roughly a quarter of all (input, cardID) pairs come out reversed,
// and the outcome is stable for the same pair.
func IsReversed(input string, cardID int) bool {
	h := HashString(input + strconv.Itoa(cardID))
	return h%100 < 25
}

// OrientationInput builds the per-position hash input so cards in the
// same reading do not all share one orientation roll.
func OrientationInput(question string, position int) string {
	return question + "#" + strconv.Itoa(position)
}
