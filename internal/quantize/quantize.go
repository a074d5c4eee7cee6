// Package quantize reduces an image's pixel population to a ranked
// set of candidate accent colors.
package quantize

import (
	"sort"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

// Candidate is one representative color with its pixel population.
type Candidate struct {
	Color      hct.ARGB
	Population int
}

type entry struct {
	color hct.ARGB
	count int
}

// Quantize runs median-cut over the pixel list, producing up to
// maxColors candidates. The result is fully deterministic for a fixed
// pixel list and bucket count: candidates come back sorted by
// descending population, ties broken by packed color value.
func Quantize(pixels []hct.ARGB, maxColors int) []Candidate {
	if len(pixels) == 0 || maxColors < 1 {
		return nil
	}

	hist := make(map[hct.ARGB]int, 256)
	for _, p := range pixels {
		hist[p]++
	}
	entries := make([]entry, 0, len(hist))
	for c, n := range hist {
		entries = append(entries, entry{color: c, count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].color < entries[j].color })

	boxes := [][]entry{entries}
	for len(boxes) < maxColors {
		idx := pickSplittable(boxes)
		if idx < 0 {
			break
		}
		left, right := splitBox(boxes[idx])
		boxes[idx] = left
		boxes = append(boxes, right)
	}

	out := make([]Candidate, 0, len(boxes))
	for _, box := range boxes {
		out = append(out, boxAverage(box))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Population != out[j].Population {
			return out[i].Population > out[j].Population
		}
		return out[i].Color < out[j].Color
	})
	return out
}

// pickSplittable returns the most populous box holding more than one
// distinct color, or -1 when no box can split further.
func pickSplittable(boxes [][]entry) int {
	best, bestPop := -1, 0
	for i, box := range boxes {
		if len(box) < 2 {
			continue
		}
		pop := 0
		for _, e := range box {
			pop += e.count
		}
		if pop > bestPop {
			best, bestPop = i, pop
		}
	}
	return best
}

func splitBox(box []entry) ([]entry, []entry) {
	ch := widestChannel(box)
	sorted := make([]entry, len(box))
	copy(sorted, box)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := channel(sorted[i].color, ch), channel(sorted[j].color, ch)
		if a != b {
			return a < b
		}
		return sorted[i].color < sorted[j].color
	})

	total := 0
	for _, e := range sorted {
		total += e.count
	}
	// Split at the median of the population, keeping at least one
	// entry on each side.
	acc := 0
	cut := 1
	for i, e := range sorted {
		acc += e.count
		if acc*2 >= total {
			cut = i + 1
			break
		}
	}
	if cut >= len(sorted) {
		cut = len(sorted) - 1
	}
	if cut < 1 {
		cut = 1
	}
	return sorted[:cut], sorted[cut:]
}

func widestChannel(box []entry) int {
	var min, max [3]int
	for i := range min {
		min[i], max[i] = 255, 0
	}
	for _, e := range box {
		for ch := 0; ch < 3; ch++ {
			v := channel(e.color, ch)
			if v < min[ch] {
				min[ch] = v
			}
			if v > max[ch] {
				max[ch] = v
			}
		}
	}
	widest, span := 0, -1
	for ch := 0; ch < 3; ch++ {
		if max[ch]-min[ch] > span {
			widest, span = ch, max[ch]-min[ch]
		}
	}
	return widest
}

func channel(c hct.ARGB, ch int) int {
	switch ch {
	case 0:
		return int(c.Red())
	case 1:
		return int(c.Green())
	default:
		return int(c.Blue())
	}
}

func boxAverage(box []entry) Candidate {
	var rSum, gSum, bSum, n uint64
	for _, e := range box {
		c := uint64(e.count)
		rSum += uint64(e.color.Red()) * c
		gSum += uint64(e.color.Green()) * c
		bSum += uint64(e.color.Blue()) * c
		n += c
	}
	return Candidate{
		Color: hct.ARGBFromRGB(
			uint8((rSum+n/2)/n),
			uint8((gSum+n/2)/n),
			uint8((bSum+n/2)/n),
		),
		Population: int(n),
	}
}
