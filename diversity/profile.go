package diversity

// Profile holds every indicator for one distribution.
type Profile struct {
	Variety        int     `json:"variety" yaml:"variety"`
	Shannon        float64 `json:"shannon" yaml:"shannon"`
	Evenness       float64 `json:"evenness" yaml:"evenness"`
	Simpson        float64 `json:"simpson" yaml:"simpson"`
	InverseSimpson float64 `json:"inverse_simpson" yaml:"inverse_simpson"`
	GiniSimpson    float64 `json:"gini_simpson" yaml:"gini_simpson"`
	Brillouin      float64 `json:"brillouin" yaml:"brillouin"`
	Gini           float64 `json:"gini" yaml:"gini"`
}

// Summarize computes the full Profile of d.
func Summarize(d Distribution) Profile {
	return Profile{
		Variety:        CategoryCount(d),
		Shannon:        ShannonIndex(d),
		Evenness:       ShannonEvenness(d),
		Simpson:        SimpsonIndex(d),
		InverseSimpson: InverseSimpsonIndex(d),
		GiniSimpson:    GiniSimpsonIndex(d),
		Brillouin:      BrillouinIndex(d),
		Gini:           GiniCoefficient(d),
	}
}
