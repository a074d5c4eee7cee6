package quantize

import (
	"math"
	"sort"

	"github.com/AvengeMedia/dankwall/internal/hct"
)

// Scoring weights: population proportion dominates, chroma distance
// from a pleasant target nudges the ranking. Near-gray and barely
// present candidates are cut before ranking.
const (
	targetChroma            = 48.0
	weightProportion        = 0.7
	weightChromaAbove       = 0.3
	weightChromaBelow       = 0.1
	cutoffChroma            = 5.0
	cutoffExcitedProportion = 0.01
)

// Score ranks candidates and returns the single best accent color.
// When every candidate falls below the chroma/population cutoffs (a
// monochrome image), the most populous candidate is returned so a
// valid, possibly near-gray accent always comes out.
func Score(candidates []Candidate) (hct.ARGB, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	total := 0
	for _, c := range candidates {
		total += c.Population
	}

	type scored struct {
		cand    Candidate
		hct     hct.Hct
		excited float64
	}
	all := make([]scored, 0, len(candidates))

	var hueProportion [360]float64
	for _, c := range candidates {
		h := hct.FromARGB(c.Color)
		all = append(all, scored{cand: c, hct: h})
		hue := int(math.Floor(h.Hue))
		hueProportion[hue] += float64(c.Population) / float64(total)
	}

	// Excited proportion sums population across a +-15 degree hue
	// neighborhood, so one dominant hue family wins over scattered
	// singletons.
	for i := range all {
		hue := int(math.Round(all[i].hct.Hue))
		for j := hue - 14; j < hue+16; j++ {
			all[i].excited += hueProportion[(j%360+360)%360]
		}
	}

	type ranked struct {
		cand  Candidate
		score float64
	}
	passing := make([]ranked, 0, len(all))
	for _, s := range all {
		if s.hct.Chroma < cutoffChroma || s.excited <= cutoffExcitedProportion {
			continue
		}
		proportionScore := s.excited * 100.0 * weightProportion
		chromaWeight := weightChromaBelow
		if s.hct.Chroma >= targetChroma {
			chromaWeight = weightChromaAbove
		}
		score := proportionScore + (s.hct.Chroma-targetChroma)*chromaWeight
		passing = append(passing, ranked{cand: s.cand, score: score})
	}

	if len(passing) == 0 {
		// Candidates arrive population-sorted; the first is the
		// dominant (near-gray) color.
		return candidates[0].Color, true
	}

	sort.SliceStable(passing, func(i, j int) bool {
		if passing[i].score != passing[j].score {
			return passing[i].score > passing[j].score
		}
		return passing[i].cand.Color < passing[j].cand.Color
	})
	return passing[0].cand.Color, true
}
