package corsflow

import (
	"strconv"

	"github.com/jub0bs/corsflow/descerrors"
)

// A Result is the final verdict of a classification.
// The zero value is not a valid Result.
type Result uint8

const (
	// ResultSameOriginAllowed: the request is same-origin;
	// no CORS check takes place.
	ResultSameOriginAllowed Result = iota + 1
	// ResultSimpleCORSAllowed: the simple cross-origin request is sent
	// and the server grants access to its response.
	ResultSimpleCORSAllowed
	// ResultPreflightThenAllowed: the preflight succeeds,
	// then the actual request is sent and succeeds.
	ResultPreflightThenAllowed
	// ResultPreflightThenBlocked: the preflight fails;
	// the actual request is never sent.
	ResultPreflightThenBlocked
	// ResultBlockedNoCORS: the simple cross-origin request is sent
	// but the browser denies the script access to its response.
	ResultBlockedNoCORS
)

var resultNames = [...]string{
	ResultSameOriginAllowed:    "SAME_ORIGIN_ALLOWED",
	ResultSimpleCORSAllowed:    "SIMPLE_CORS_ALLOWED",
	ResultPreflightThenAllowed: "PREFLIGHT_THEN_ALLOWED",
	ResultPreflightThenBlocked: "PREFLIGHT_THEN_BLOCKED",
	ResultBlockedNoCORS:        "BLOCKED_NO_CORS",
}

// ParseResult returns the Result whose String method returns s.
// If there is none, ParseResult returns a non-nil error whose dynamic type
// is [*descerrors.UnknownTokenError].
func ParseResult(s string) (Result, error) {
	i, ok := lookup(resultNames[:], s)
	if !ok {
		return 0, &descerrors.UnknownTokenError{Value: s, Type: "result"}
	}
	return Result(i), nil
}

func (r Result) valid() bool {
	return ResultSameOriginAllowed <= r && r <= ResultBlockedNoCORS
}

// String returns r's token, e.g. "PREFLIGHT_THEN_BLOCKED".
func (r Result) String() string {
	if !r.valid() {
		return "Result(" + strconv.Itoa(int(r)) + ")"
	}
	return resultNames[r]
}

// MarshalText implements [encoding.TextMarshaler].
func (r Result) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, &descerrors.UnknownTokenError{Value: r.String(), Type: "result"}
	}
	return []byte(resultNames[r]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Result) UnmarshalText(text []byte) error {
	parsed, err := ParseResult(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// A Step is an animation cue: one stage of the journey of a request.
// The zero value is not a valid Step.
type Step uint8

const (
	StepLaunchMain      Step = iota + 1 // the actual request is issued
	StepTravelMain                      // the actual request reaches the server
	StepImpactSuccess                   // the server's response grants access
	StepImpactBlocked                   // the browser blocks the response
	StepLaunchPreflight                 // the preflight request is issued
	StepTravelPreflight                 // the preflight request reaches the server
	StepPreflightSuccess                // the preflight succeeds
	StepPreflightBlocked                // the preflight fails
	StepResponseTravel                  // the response makes its way back to the script
)

var stepNames = [...]string{
	StepLaunchMain:       "LAUNCH_MAIN",
	StepTravelMain:       "TRAVEL_MAIN",
	StepImpactSuccess:    "IMPACT_SUCCESS",
	StepImpactBlocked:    "IMPACT_BLOCKED",
	StepLaunchPreflight:  "LAUNCH_PREFLIGHT",
	StepTravelPreflight:  "TRAVEL_PREFLIGHT",
	StepPreflightSuccess: "PREFLIGHT_SUCCESS",
	StepPreflightBlocked: "PREFLIGHT_BLOCKED",
	StepResponseTravel:   "RESPONSE_TRAVEL",
}

// ParseStep returns the Step whose String method returns s.
// If there is none, ParseStep returns a non-nil error whose dynamic type
// is [*descerrors.UnknownTokenError].
func ParseStep(s string) (Step, error) {
	i, ok := lookup(stepNames[:], s)
	if !ok {
		return 0, &descerrors.UnknownTokenError{Value: s, Type: "step"}
	}
	return Step(i), nil
}

func (s Step) valid() bool {
	return StepLaunchMain <= s && s <= StepResponseTravel
}

// String returns s's token, e.g. "LAUNCH_PREFLIGHT".
func (s Step) String() string {
	if !s.valid() {
		return "Step(" + strconv.Itoa(int(s)) + ")"
	}
	return stepNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Step) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, &descerrors.UnknownTokenError{Value: s.String(), Type: "step"}
	}
	return []byte(stepNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Step) UnmarshalText(text []byte) error {
	parsed, err := ParseStep(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// A Topic identifies the section of accompanying documentation
// that best explains an outcome.
// The zero value is not a valid Topic.
type Topic uint8

const (
	TopicIntro      Topic = iota + 1 // CORS basics
	TopicSameOrigin                  // the same-origin policy
	TopicPreflight                   // preflight requests
)

var topicNames = [...]string{
	TopicIntro:      "intro",
	TopicSameOrigin: "sop",
	TopicPreflight:  "preflight",
}

// ParseTopic returns the Topic whose String method returns s.
// If there is none, ParseTopic returns a non-nil error whose dynamic type
// is [*descerrors.UnknownTokenError].
func ParseTopic(s string) (Topic, error) {
	i, ok := lookup(topicNames[:], s)
	if !ok {
		return 0, &descerrors.UnknownTokenError{Value: s, Type: "topic"}
	}
	return Topic(i), nil
}

func (t Topic) valid() bool {
	return TopicIntro <= t && t <= TopicPreflight
}

// String returns t's identifier, e.g. "preflight".
func (t Topic) String() string {
	if !t.valid() {
		return "Topic(" + strconv.Itoa(int(t)) + ")"
	}
	return topicNames[t]
}

// MarshalText implements [encoding.TextMarshaler].
func (t Topic) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, &descerrors.UnknownTokenError{Value: t.String(), Type: "topic"}
	}
	return []byte(topicNames[t]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Topic) UnmarshalText(text []byte) error {
	parsed, err := ParseTopic(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// lookup returns the index of s in names, ignoring names[0],
// which is reserved for the zero value.
func lookup(names []string, s string) (int, bool) {
	for i := 1; i < len(names); i++ {
		if names[i] == s {
			return i, true
		}
	}
	return 0, false
}
