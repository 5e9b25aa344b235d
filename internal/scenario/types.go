package scenario

import "github.com/jub0bs/corsflow"

// Case is one request description and the verdict expected for it.
type Case struct {
	Method        string   `yaml:"method"`
	SameOrigin    bool     `yaml:"same_origin,omitempty"`
	CORSEnabled   bool     `yaml:"cors_enabled,omitempty"`
	CustomHeaders bool     `yaml:"custom_headers,omitempty"`
	Expect        string   `yaml:"expect"`
	Steps         []string `yaml:"steps,omitempty"`
}

// Scenario is a named collection of classification cases.
type Scenario struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// CaseResult is the outcome of evaluating one case.
type CaseResult struct {
	Index    int             `json:"index"`
	Passed   bool            `json:"passed"`
	Method   string          `json:"method"`
	Expected string          `json:"expected"`
	Actual   string          `json:"actual"`
	Steps    []corsflow.Step `json:"steps,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// RunResult is the outcome of running all cases in one scenario file.
type RunResult struct {
	File   string       `json:"file"`
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}
