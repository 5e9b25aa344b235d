package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jub0bs/corsflow"
	"github.com/jub0bs/corsflow/internal/util"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return util.Errorf("unknown output format %q (want %q or %q)", format, formatText, formatJSON)
	}
}

// entry pairs a request with its outcome for JSON output.
type entry struct {
	Method        corsflow.Method  `json:"method"`
	SameOrigin    bool             `json:"sameOrigin"`
	CORSEnabled   bool             `json:"corsEnabled"`
	CustomHeaders bool             `json:"customHeaders"`
	Outcome       corsflow.Outcome `json:"outcome"`
	Topic         corsflow.Topic   `json:"topic"`
}

func classify(req corsflow.Request) (corsflow.Outcome, error) {
	o, err := corsflow.Classify(req)
	if err != nil {
		logger.Error("classification rejected", "request", req, "error", err)
		return o, err
	}
	logger.Debug("classified", "request", req, "result", o.Result(), "steps", len(o.Steps()))
	return o, nil
}

func classifyAll(reqs []corsflow.Request) ([]entry, error) {
	entries := make([]entry, 0, len(reqs))
	for _, req := range reqs {
		o, err := classify(req)
		if err != nil {
			return nil, err
		}
		e := entry{
			Method:        req.Method,
			SameOrigin:    req.SameOrigin,
			CORSEnabled:   req.CORSEnabled,
			CustomHeaders: req.CustomHeaders,
			Outcome:       o,
			Topic:         o.Topic(),
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func writeEntries(w io.Writer, format string, entries []entry) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeText(w, e)
	}
	return nil
}

func writeText(w io.Writer, e entry) {
	o := e.Outcome
	fmt.Fprintf(w, "%s %s  same-origin=%s cors=%s custom-headers=%s\n",
		o.Status(), e.Method, onOff(e.SameOrigin), onOff(e.CORSEnabled), onOff(e.CustomHeaders))
	fmt.Fprintf(w, "  result:       %s\n", o.Result())
	fmt.Fprintf(w, "  cross-origin: %s\n", yesNo(o.CrossOrigin()))
	fmt.Fprintf(w, "  preflight:    %s\n", yesNo(o.PreflightRequired()))
	var steps []string
	for s := range o.Cues() {
		steps = append(steps, s.String())
	}
	fmt.Fprintf(w, "  steps:        %s\n", strings.Join(steps, " -> "))
	fmt.Fprintf(w, "  topic:        %s\n", o.Topic())
	fmt.Fprintf(w, "  %s\n", o.Explanation())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
