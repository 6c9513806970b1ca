package game

import (
	"fmt"
	"math/rand"
)

// tableNames is the pool of names handed to auto-seated players.
var tableNames = []string{
	"Bob", "Alice", "Cali", "Arjun", "Bianca", "Kalyna",
	"Chen", "Zhu", "Cielo", "Eva", "Franco", "Lopa",
}

// TableNames returns n distinct names drawn from the pool in a random
// order. n may not exceed the pool size.
func TableNames(rng *rand.Rand, n int) ([]string, error) {
	if n > len(tableNames) {
		return nil, fmt.Errorf("requested %d names, pool holds %d", n, len(tableNames))
	}
	names := make([]string, len(tableNames))
	copy(names, tableNames)
	rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	return names[:n], nil
}

// UniquifyName returns name unchanged if it is not taken, otherwise the
// first untaken candidate in the sequence name-2, name-3, and so on.
// The result is deterministic for a given name and taken set.
func UniquifyName(name string, taken []string) string {
	inUse := make(map[string]bool, len(taken))
	for _, t := range taken {
		inUse[t] = true
	}
	if !inUse[name] {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", name, i)
		if !inUse[candidate] {
			return candidate
		}
	}
}
