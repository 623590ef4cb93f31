package cribbage

// Combinations returns every k-sized subset of items. Each subset keeps the
// input order of its elements, and items that compare equal are still treated
// as distinct positions, so no subset is lost or repeated.
//
// k == 0 yields a single empty subset; k > len(items) yields none.
func Combinations[T any](items []T, k int) [][]T {
	indexes := combinationIndexes(len(items), k)
	if indexes == nil {
		return nil
	}
	out := make([][]T, len(indexes))
	for i, idx := range indexes {
		out[i] = pick(items, idx)
	}
	return out
}

// combinationIndexes enumerates the k-sized index subsets of [0, n) in
// lexicographic order.
func combinationIndexes(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	var out [][]int
	cur := make([]int, 0, k)
	var walk func(start int)
	walk = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int{}, cur...))
			return
		}
		for i := start; i <= n-(k-len(cur)); i++ {
			cur = append(cur, i)
			walk(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	walk(0)
	return out
}

func pick[T any](items []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
