package cribbage

import (
	"fmt"
	"math/bits"
	"strings"
)

// Result is the outcome of a single scoring rule.
type Result struct {
	Points      int
	Description string
}

// Scorer is a single scoring rule applied to a slice of cards.
type Scorer interface {
	Check(cards []Card) Result
}

// Scorers applied to the pegging pile after every play, in order.
var peggingScorers = []Scorer{
	ExactlyEquals{N: 15},
	RankGroup{},
	PlayRun{},
}

// ExactlyEquals scores 2 when the values of all cards add up to exactly N.
// It is used on the pegging pile for the count of fifteen.
type ExactlyEquals struct {
	N int
}

func (e ExactlyEquals) Check(cards []Card) Result {
	if len(cards) == 0 || sumValues(cards) != e.N {
		return Result{}
	}
	return Result{Points: 2, Description: fmt.Sprintf("%d count", e.N)}
}

// CountCombinations scores 2 for every distinct subset of cards whose values
// add up to N.
type CountCombinations struct {
	N int
}

func (c CountCombinations) Check(cards []Card) Result {
	count := 0
	for size := 1; size <= len(cards); size++ {
		for _, combo := range Combinations(cards, size) {
			if sumValues(combo) == c.N {
				count++
			}
		}
	}
	if count == 0 {
		return Result{}
	}
	return Result{Points: 2 * count, Description: fmt.Sprintf("%d unique %d-counts", count, c.N)}
}

// RankGroup scores a pair, pair royal or double pair royal formed by the most
// recently played cards of a pegging pile.
type RankGroup struct{}

func (RankGroup) Check(cards []Card) Result {
	if len(cards) < 2 {
		return Result{}
	}
	// most recent first
	last := make([]Card, 0, 4)
	for i := len(cards) - 1; i >= 0 && len(last) < 4; i-- {
		last = append(last, cards[i])
	}
	same := 0
	for size := len(last); size >= 2; size-- {
		if sameRank(last[:size]) {
			same = size
			break
		}
	}
	points := groupPoints(same)
	if points == 0 {
		return Result{}
	}
	return Result{Points: points, Description: groupName(same, cards[len(cards)-1])}
}

// RankTally scores every group of equal ranks among the cards regardless of
// their order. It is the show counterpart of RankGroup.
type RankTally struct{}

func (RankTally) Check(cards []Card) Result {
	var counts [14]int
	var order []Card
	for _, c := range cards {
		if counts[c.rank] == 0 {
			order = append(order, c)
		}
		counts[c.rank]++
	}
	var res Result
	var names []string
	for _, c := range order {
		if p := groupPoints(counts[c.rank]); p > 0 {
			res.Points += p
			names = append(names, groupName(counts[c.rank], c))
		}
	}
	res.Description = strings.Join(names, ", ")
	return res
}

// PlayRun scores the longest run formed by the most recently played cards of a
// pegging pile. The order in which the cards were played does not matter.
type PlayRun struct{}

func (PlayRun) Check(cards []Card) Result {
	for start := 0; len(cards)-start >= 3; start++ {
		if isRun(cards[start:]) {
			n := len(cards) - start
			return Result{Points: n, Description: fmt.Sprintf("%d-card run", n)}
		}
	}
	return Result{}
}

// HandRuns scores every maximal run in a show hand. Runs fully contained in a
// longer run do not count, but two runs over different cards of the same rank
// both count (a double run).
type HandRuns struct{}

func (HandRuns) Check(cards []Card) Result {
	var res Result
	var names []string
	for _, run := range enumerateRuns(cards) {
		n := bits.OnesCount(run)
		res.Points += n
		names = append(names, fmt.Sprintf("%d-card run", n))
	}
	res.Description = strings.Join(names, " ")
	return res
}

// enumerateRuns returns the maximal runs of cards as bitmasks over card positions.
func enumerateRuns(cards []Card) []uint {
	var runs []uint
	for size := 3; size <= len(cards); size++ {
		for _, idx := range combinationIndexes(len(cards), size) {
			if isRun(pick(cards, idx)) {
				runs = append(runs, mask(idx))
			}
		}
	}
	var maximal []uint
	for i, r := range runs {
		contained := false
		for j, o := range runs {
			if i != j && r != o && r&o == r {
				contained = true
				break
			}
		}
		if !contained {
			maximal = append(maximal, r)
		}
	}
	return maximal
}

// isRun reports whether cards hold at least three pairwise distinct,
// consecutive ranks.
func isRun(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	var seen [14]bool
	lo, hi := uint8(13), uint8(0)
	for _, c := range cards {
		if seen[c.rank] {
			return false
		}
		seen[c.rank] = true
		lo = min(lo, c.rank)
		hi = max(hi, c.rank)
	}
	return int(hi-lo)+1 == len(cards)
}

func sameRank(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.rank != cards[0].rank {
			return false
		}
	}
	return true
}

func groupPoints(n int) int {
	switch n {
	case 2:
		return 2
	case 3:
		return 6
	case 4:
		return 12
	}
	return 0
}

func groupName(n int, c Card) string {
	switch n {
	case 2:
		return fmt.Sprintf("Pair (%s)", c.Symbol())
	case 3:
		return fmt.Sprintf("Pair Royal (%s)", c.Symbol())
	default:
		return fmt.Sprintf("Double Pair Royal (%s)", c.Symbol())
	}
}

func mask(idx []int) uint {
	var m uint
	for _, i := range idx {
		m |= 1 << i
	}
	return m
}
