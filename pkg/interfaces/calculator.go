package interfaces

// Outcome is the result shape every calculator computation produces. The
// engine never inspects what a calculator computed, only that the shape is
// honoured, so rendering code can treat all calculators uniformly.
type Outcome struct {
	Values    map[string]float64 `json:"values"`
	Formatted map[string]string  `json:"formatted"`
	Summary   string             `json:"summary"`
	IsValid   bool               `json:"is_valid"`
	Errors    []string           `json:"errors,omitempty"`
}

// CalculateFunc is the pure computation contract supplied by each calculator
// module alongside its structural definition. Implementations must be free of
// side effects; values are keyed by input id and units by unit group.
type CalculateFunc func(values map[string]float64, units map[string]string) Outcome
