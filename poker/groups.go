package poker

import "sort"

// groupByRank groups cards by rank, ordered by group size descending
// and then by rank descending. The first group is therefore the
// strongest repetition in the hand.
func groupByRank(cards []Card) [][]Card {
	byRank := make(map[Rank][]Card)
	for _, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	groups := make([][]Card, 0, len(byRank))
	for _, g := range byRank {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0].Rank > groups[j][0].Rank
	})
	return groups
}

// groupBySuit groups cards by suit, each group sorted by rank
// descending, groups ordered by size descending then by top rank.
func groupBySuit(cards []Card) [][]Card {
	bySuit := make(map[Suit][]Card)
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	groups := make([][]Card, 0, len(bySuit))
	for _, g := range bySuit {
		sort.Slice(g, func(i, j int) bool { return g[i].Rank > g[j].Rank })
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0].Rank > groups[j][0].Rank
	})
	return groups
}

// longestRun finds the longest run of consecutive unique ranks,
// returning one card per rank, sorted ascending. Ties between runs of
// equal length go to the higher run.
func longestRun(cards []Card) []Card {
	if len(cards) == 0 {
		return nil
	}
	byRank := make(map[Rank]Card, len(cards))
	for _, c := range cards {
		if _, ok := byRank[c.Rank]; !ok {
			byRank[c.Rank] = c
		}
	}
	ranks := make([]Rank, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	bestStart, bestLen := 0, 1
	start, length := 0, 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1]+1 {
			length++
		} else {
			start, length = i, 1
		}
		if length >= bestLen {
			bestStart, bestLen = start, length
		}
	}

	run := make([]Card, 0, bestLen)
	for _, r := range ranks[bestStart : bestStart+bestLen] {
		run = append(run, byRank[r])
	}
	return run
}

// SameSuit reports whether all cards share one suit. An empty set is
// vacuously same-suited.
func SameSuit(cards []Card) bool {
	if len(cards) == 0 {
		return true
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}
