package firefly

// rankCutoff is the range size below which Rank switches to insertion sort.
const rankCutoff = 12

// Rank sorts the index range [low, high] of p in place into ascending order
// by light value.  The x, y, and light slices are permuted together so each
// triple stays attached to its original fly.  Ties may reorder.  Out-of-range
// bounds are clamped and an empty or single-element range is a no-op.
//
// Ranking is not part of the movement loop; it is a primitive for elitism
// and analysis on top of the core algorithm.
func (p *Population) Rank(low, high int) {
	if low < 0 {
		low = 0
	}
	if high >= p.Len() {
		high = p.Len() - 1
	}
	p.quicksort(low, high)
}

// quicksort recurses into the smaller partition and loops on the larger so
// the stack stays O(log n) even on sorted or reverse-sorted input.
func (p *Population) quicksort(low, high int) {
	for high-low >= rankCutoff {
		pivot := p.partition(low, high, (low+high)/2)
		if pivot-low < high-pivot {
			p.quicksort(low, pivot-1)
			low = pivot + 1
		} else {
			p.quicksort(pivot+1, high)
			high = pivot - 1
		}
	}
	p.insertion(low, high)
}

// partition moves the pivot triple to high, sweeps [low, high) packing
// triples with light <= the pivot's into the low end, then swaps the pivot
// into its final slot and returns that index.
func (p *Population) partition(low, high, pivot int) int {
	intensity := p.Light[pivot]
	p.swap(pivot, high)

	idx := low
	for i := low; i < high; i++ {
		if p.Light[i] <= intensity {
			p.swap(i, idx)
			idx++
		}
	}

	p.swap(idx, high)
	return idx
}

func (p *Population) insertion(low, high int) {
	for i := low + 1; i <= high; i++ {
		for j := i; j > low && p.Light[j] < p.Light[j-1]; j-- {
			p.swap(j, j-1)
		}
	}
}

func (p *Population) swap(i, j int) {
	p.X[i], p.X[j] = p.X[j], p.X[i]
	p.Y[i], p.Y[j] = p.Y[j], p.Y[i]
	p.Light[i], p.Light[j] = p.Light[j], p.Light[i]
}
