package corsflow

import (
	"encoding/json"
	"iter"
	"log/slog"
	"slices"

	"github.com/jub0bs/corsflow/internal/methods"
)

// A Request describes a hypothetical browser request.
// Requests are plain values; build a fresh one for each classification.
type Request struct {
	// Method is the request's method.
	Method Method
	// SameOrigin reports whether the request's target shares its scheme,
	// host, and port with the document that issues the request.
	SameOrigin bool
	// CORSEnabled reports whether the server's response would carry
	// an Access-Control-Allow-Origin header that grants access to the
	// requesting origin.
	CORSEnabled bool
	// CustomHeaders reports whether the request would carry some header
	// that is not CORS-safelisted (e.g. Authorization).
	CustomHeaders bool
}

// NewRequest returns a Request whose method is named method.
// If method is not acceptable, NewRequest returns a non-nil error whose
// dynamic type is [*descerrors.UnacceptableMethodError].
func NewRequest(method string, sameOrigin, corsEnabled, customHeaders bool) (Request, error) {
	m, err := ParseMethod(method)
	if err != nil {
		return Request{}, err
	}
	req := Request{
		Method:        m,
		SameOrigin:    sameOrigin,
		CORSEnabled:   corsEnabled,
		CustomHeaders: customHeaders,
	}
	return req, nil
}

// LogValue implements [slog.LogValuer].
func (req Request) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("method", req.Method.String()),
		slog.Bool("same_origin", req.SameOrigin),
		slog.Bool("cors_enabled", req.CORSEnabled),
		slog.Bool("custom_headers", req.CustomHeaders),
	)
}

// isSimple reports whether req, if cross-origin, can be sent without
// preflight; custom headers disqualify even a safelisted method.
// HEAD is safelisted but never reaches this function.
func (req Request) isSimple() bool {
	return methods.IsSafelisted(req.Method.String()) && !req.CustomHeaders
}

// Classify determines how a browser would resolve req.
//
// If req.Method is not one of the declared Method constants,
// Classify returns the zero Outcome and a non-nil error whose dynamic type is
// [*descerrors.UnacceptableMethodError]; the error is nil otherwise.
// Classify has no side effects, and is safe for concurrent use by multiple
// goroutines.
func Classify(req Request) (Outcome, error) {
	if !req.Method.valid() {
		return Outcome{}, req.Method.unsupportedErr()
	}
	return Outcome{result: decide(req)}, nil
}

// decide is total over valid requests; the first matching rule wins.
func decide(req Request) Result {
	if req.SameOrigin {
		return ResultSameOriginAllowed
	}
	if req.isSimple() {
		if req.CORSEnabled {
			return ResultSimpleCORSAllowed
		}
		return ResultBlockedNoCORS
	}
	// Non-simple cross-origin requests always require preflight.
	if req.CORSEnabled {
		return ResultPreflightThenAllowed
	}
	return ResultPreflightThenBlocked
}

// An Outcome is the result of classifying a [Request].
// Every property of an Outcome is a function of its [Result];
// they therefore always agree with one another.
//
// Outcomes are comparable; the zero value is not a meaningful Outcome.
type Outcome struct {
	result Result
}

// A flow holds the properties derived from a Result.
type flow struct {
	steps       []Step // never exposed without copying
	explanation string
	preflight   bool
	blocked     bool
}

var flows = [...]flow{
	ResultSameOriginAllowed: {
		steps: []Step{
			StepLaunchMain,
			StepTravelMain,
			StepImpactSuccess,
			StepResponseTravel,
		},
		explanation: "Same origin request. No CORS check required. The browser allows the request directly.",
	},
	ResultSimpleCORSAllowed: {
		steps: []Step{
			StepLaunchMain,
			StepTravelMain,
			StepImpactSuccess,
			StepResponseTravel,
		},
		explanation: "Simple cross-origin request. Server sends CORS headers (Access-Control-Allow-Origin). Browser allows it.",
	},
	ResultBlockedNoCORS: {
		steps: []Step{
			StepLaunchMain,
			StepTravelMain,
			StepImpactBlocked,
		},
		explanation: "Simple cross-origin request. Server is missing CORS headers. Browser blocks the response.",
		blocked:     true,
	},
	ResultPreflightThenAllowed: {
		steps: []Step{
			StepLaunchPreflight,
			StepTravelPreflight,
			StepPreflightSuccess,
			StepLaunchMain,
			StepTravelMain,
			StepImpactSuccess,
			StepResponseTravel,
		},
		explanation: "Preflight required. Browser sends OPTIONS request. Server approves it. Browser then sends the actual request.",
		preflight:   true,
	},
	ResultPreflightThenBlocked: {
		steps: []Step{
			StepLaunchPreflight,
			StepTravelPreflight,
			StepPreflightBlocked,
		},
		explanation: "Preflight required. Browser sends OPTIONS request. Server REJECTS it (no CORS headers). Actual request is never sent.",
		preflight:   true,
		blocked:     true,
	},
}

func (o Outcome) flow() *flow {
	if !o.result.valid() {
		return &flows[0]
	}
	return &flows[o.result]
}

// Result returns o's verdict.
func (o Outcome) Result() Result {
	return o.result
}

// Steps returns the ordered cues of o.
// Each call returns a fresh slice, which the caller is free to modify.
func (o Outcome) Steps() []Step {
	return slices.Clone(o.flow().steps)
}

// Cues returns an iterator over the ordered cues of o.
// The iterator can be ranged over any number of times.
func (o Outcome) Cues() iter.Seq[Step] {
	return slices.Values(o.flow().steps)
}

// Explanation returns a human-readable description of o.
func (o Outcome) Explanation() string {
	return o.flow().explanation
}

// PreflightRequired reports whether the browser had to issue a
// preflight request.
func (o Outcome) PreflightRequired() bool {
	return o.flow().preflight
}

// WasBlocked reports whether the browser denies the script access to the
// response.
func (o Outcome) WasBlocked() bool {
	return o.flow().blocked
}

// CrossOrigin reports whether the classified request was cross-origin.
func (o Outcome) CrossOrigin() bool {
	return o.result.valid() && o.result != ResultSameOriginAllowed
}

// Status returns "BLOCKED" if o.WasBlocked(), and "ALLOWED" otherwise.
func (o Outcome) Status() string {
	if o.WasBlocked() {
		return "BLOCKED"
	}
	return "ALLOWED"
}

// Topic returns the documentation topic that best explains o.
func (o Outcome) Topic() Topic {
	switch {
	case o.PreflightRequired():
		return TopicPreflight
	case o.result == ResultSameOriginAllowed:
		return TopicSameOrigin
	default:
		return TopicIntro
	}
}

type outcomeJSON struct {
	Result            Result `json:"result"`
	Steps             []Step `json:"steps"`
	Explanation       string `json:"explanation"`
	PreflightRequired bool   `json:"preflightRequired"`
	WasBlocked        bool   `json:"wasBlocked"`
}

// MarshalJSON implements [json.Marshaler].
// The zero Outcome cannot be marshaled.
func (o Outcome) MarshalJSON() ([]byte, error) {
	f := o.flow()
	v := outcomeJSON{
		Result:            o.result,
		Steps:             f.steps,
		Explanation:       f.explanation,
		PreflightRequired: f.preflight,
		WasBlocked:        f.blocked,
	}
	return json.Marshal(v)
}
