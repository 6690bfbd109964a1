package application

import (
	"math/rand"
	"slices"
)

// drawWinners picks min(count, len(participants)) winners uniformly at
// random without replacement: shuffle a copy, keep the prefix. Every subset
// of that size is equally likely.
func drawWinners(participants []string, count int) []string {
	if len(participants) == 0 || count <= 0 {
		return nil
	}
	pool := slices.Clone(participants)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:min(count, len(pool))]
}
