package scanner

import "math/rand"

// Result is a single health-check outcome. Overall and every category score
// are integers in [60, 100).
type Result struct {
	Overall   int            `json:"overall"`
	Breakdown map[string]int `json:"breakdown"`
}

// Categories reported in every breakdown, matching the report views.
var Categories = []string{"performance", "seo", "accessibility"}

// Scorer produces a health score for a normalized URL. The shipped
// implementation is simulated; a real auditing engine can be substituted
// without touching the scan service contract.
type Scorer interface {
	Score(url string) Result
}

type SimulatedScorer struct{}

func NewSimulatedScorer() *SimulatedScorer {
	return &SimulatedScorer{}
}

// Score ignores the URL entirely and draws a uniform overall score in
// [60, 100). Category scores are jittered around the overall value and
// clamped back into the same range.
func (s *SimulatedScorer) Score(url string) Result {
	overall := rand.Intn(40) + 60

	breakdown := make(map[string]int, len(Categories))

	for _, category := range Categories {
		score := overall + rand.Intn(17) - 8

		if score < 60 {
			score = 60
		}

		if score > 99 {
			score = 99
		}

		breakdown[category] = score
	}

	return Result{
		Overall:   overall,
		Breakdown: breakdown,
	}
}
