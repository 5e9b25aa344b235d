package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jub0bs/corsflow"
	"github.com/jub0bs/corsflow/internal/util"
)

// Run classifies every case of s. Cases are independent of one another.
func Run(s *Scenario) *RunResult {
	result := &RunResult{
		Name:  s.Name,
		Total: len(s.Cases),
	}
	for i, c := range s.Cases {
		cr := runCase(c)
		cr.Index = i + 1
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

func runCase(c Case) CaseResult {
	cr := CaseResult{
		Method:   c.Method,
		Expected: c.Expect,
	}
	req, err := corsflow.NewRequest(c.Method, c.SameOrigin, c.CORSEnabled, c.CustomHeaders)
	if err != nil {
		cr.Actual = "error"
		cr.Reason = err.Error()
		return cr
	}
	o, err := corsflow.Classify(req)
	if err != nil {
		cr.Actual = "error"
		cr.Reason = err.Error()
		return cr
	}
	cr.Actual = o.Result().String()
	cr.Steps = o.Steps()
	if cr.Actual != c.Expect {
		cr.Reason = o.Explanation()
		return cr
	}
	if c.Steps != nil {
		got := make([]string, len(cr.Steps))
		for i, s := range cr.Steps {
			got[i] = s.String()
		}
		if !slices.Equal(got, c.Steps) {
			cr.Reason = "steps: got " + strings.Join(got, ",") +
				"; want " + strings.Join(c.Steps, ",")
			return cr
		}
	}
	cr.Passed = true
	return cr
}

// Parse decodes a scenario from YAML and checks that every key and token it
// contains is known. Problems found in several cases are joined.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Cases) == 0 {
		return util.Errorf("scenario %q has no cases", s.Name)
	}
	var errs []error
	for i, c := range s.Cases {
		if c.Method == "" {
			errs = append(errs, util.Errorf("case %d: missing method", i+1))
		}
		if _, err := corsflow.ParseResult(c.Expect); err != nil {
			errs = append(errs, err)
		}
		for _, step := range c.Steps {
			if _, err := corsflow.ParseStep(step); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// LoadAndRun loads a scenario YAML file and runs it.
func LoadAndRun(path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	result := Run(s)
	result.File = path
	return result, nil
}
