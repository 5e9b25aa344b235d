package corsflow_test

import (
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/jub0bs/corsflow"
	"github.com/jub0bs/corsflow/descerrors"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		desc      string
		req       corsflow.Request
		want      corsflow.Result
		steps     []corsflow.Step
		preflight bool
		blocked   bool
	}{
		{
			desc: "same-origin GET",
			req: corsflow.Request{
				Method:      corsflow.MethodGet,
				SameOrigin:  true,
				CORSEnabled: true,
			},
			want: corsflow.ResultSameOriginAllowed,
			steps: []corsflow.Step{
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactSuccess,
				corsflow.StepResponseTravel,
			},
		}, {
			desc: "same-origin DELETE with custom headers and without CORS",
			req: corsflow.Request{
				Method:        corsflow.MethodDelete,
				SameOrigin:    true,
				CustomHeaders: true,
			},
			want: corsflow.ResultSameOriginAllowed,
			steps: []corsflow.Step{
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactSuccess,
				corsflow.StepResponseTravel,
			},
		}, {
			desc: "simple GET with CORS",
			req: corsflow.Request{
				Method:      corsflow.MethodGet,
				CORSEnabled: true,
			},
			want: corsflow.ResultSimpleCORSAllowed,
			steps: []corsflow.Step{
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactSuccess,
				corsflow.StepResponseTravel,
			},
		}, {
			desc: "simple POST without CORS",
			req: corsflow.Request{
				Method: corsflow.MethodPost,
			},
			want: corsflow.ResultBlockedNoCORS,
			steps: []corsflow.Step{
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactBlocked,
			},
			blocked: true,
		}, {
			desc: "PUT with custom headers without CORS",
			req: corsflow.Request{
				Method:        corsflow.MethodPut,
				CustomHeaders: true,
			},
			want: corsflow.ResultPreflightThenBlocked,
			steps: []corsflow.Step{
				corsflow.StepLaunchPreflight,
				corsflow.StepTravelPreflight,
				corsflow.StepPreflightBlocked,
			},
			preflight: true,
			blocked:   true,
		}, {
			desc: "POST with custom headers with CORS",
			req: corsflow.Request{
				Method:        corsflow.MethodPost,
				CORSEnabled:   true,
				CustomHeaders: true,
			},
			want: corsflow.ResultPreflightThenAllowed,
			steps: []corsflow.Step{
				corsflow.StepLaunchPreflight,
				corsflow.StepTravelPreflight,
				corsflow.StepPreflightSuccess,
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactSuccess,
				corsflow.StepResponseTravel,
			},
			preflight: true,
		}, {
			desc: "DELETE without custom headers with CORS",
			req: corsflow.Request{
				Method:      corsflow.MethodDelete,
				CORSEnabled: true,
			},
			want: corsflow.ResultPreflightThenAllowed,
			steps: []corsflow.Step{
				corsflow.StepLaunchPreflight,
				corsflow.StepTravelPreflight,
				corsflow.StepPreflightSuccess,
				corsflow.StepLaunchMain,
				corsflow.StepTravelMain,
				corsflow.StepImpactSuccess,
				corsflow.StepResponseTravel,
			},
			preflight: true,
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			o, err := corsflow.Classify(tc.req)
			if err != nil {
				t.Fatalf("got error %v; want nil", err)
			}
			if got := o.Result(); got != tc.want {
				t.Errorf("result: got %v; want %v", got, tc.want)
			}
			if got := o.Steps(); !slices.Equal(got, tc.steps) {
				t.Errorf("steps: got %v; want %v", got, tc.steps)
			}
			if got := o.PreflightRequired(); got != tc.preflight {
				t.Errorf("preflight required: got %t; want %t", got, tc.preflight)
			}
			if got := o.WasBlocked(); got != tc.blocked {
				t.Errorf("was blocked: got %t; want %t", got, tc.blocked)
			}
			if o.Explanation() == "" {
				t.Error("empty explanation")
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestClassifyRejectsUndeclaredMethods(t *testing.T) {
	for _, m := range []corsflow.Method{0, 5, 255} {
		req := corsflow.Request{Method: m, CORSEnabled: true}
		o, err := corsflow.Classify(req)
		var target *descerrors.UnacceptableMethodError
		if !errors.As(err, &target) {
			t.Errorf("%v: got error %v; want *descerrors.UnacceptableMethodError", m, err)
			continue
		}
		if target.Reason != "unsupported" {
			t.Errorf("%v: got reason %q; want %q", m, target.Reason, "unsupported")
		}
		if o != (corsflow.Outcome{}) {
			t.Errorf("%v: got non-zero outcome %v", m, o.Result())
		}
	}
}

func TestClassificationProperties(t *testing.T) {
	for req := range corsflow.Combinations() {
		o, err := corsflow.Classify(req)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", req, err)
		}
		checkProperties(t, req, o)
	}
}

func checkProperties(t *testing.T, req corsflow.Request, o corsflow.Outcome) {
	t.Helper()
	res := o.Result()
	simple := (req.Method == corsflow.MethodGet || req.Method == corsflow.MethodPost) &&
		!req.CustomHeaders
	switch {
	case req.SameOrigin:
		if res != corsflow.ResultSameOriginAllowed || o.WasBlocked() || o.PreflightRequired() {
			t.Errorf("%+v: got %v (blocked: %t, preflight: %t)", req, res, o.WasBlocked(), o.PreflightRequired())
		}
	case simple:
		want := corsflow.ResultBlockedNoCORS
		if req.CORSEnabled {
			want = corsflow.ResultSimpleCORSAllowed
		}
		if res != want || o.PreflightRequired() {
			t.Errorf("%+v: got %v (preflight: %t); want %v", req, res, o.PreflightRequired(), want)
		}
	default:
		want := corsflow.ResultPreflightThenBlocked
		if req.CORSEnabled {
			want = corsflow.ResultPreflightThenAllowed
		}
		if res != want || !o.PreflightRequired() {
			t.Errorf("%+v: got %v (preflight: %t); want %v", req, res, o.PreflightRequired(), want)
		}
	}

	blockedResult := res == corsflow.ResultBlockedNoCORS || res == corsflow.ResultPreflightThenBlocked
	if o.WasBlocked() != blockedResult {
		t.Errorf("%+v: %v: was blocked: got %t", req, res, o.WasBlocked())
	}

	steps := o.Steps()
	if len(steps) == 0 {
		t.Fatalf("%+v: no steps", req)
	}
	has := func(s corsflow.Step) bool { return slices.Contains(steps, s) }
	if has(corsflow.StepImpactBlocked) && has(corsflow.StepResponseTravel) {
		t.Errorf("%+v: steps %v contain both IMPACT_BLOCKED and RESPONSE_TRAVEL", req, steps)
	}
	if has(corsflow.StepPreflightBlocked) && has(corsflow.StepLaunchMain) {
		t.Errorf("%+v: steps %v contain both PREFLIGHT_BLOCKED and LAUNCH_MAIN", req, steps)
	}
	last := steps[len(steps)-1]
	if o.WasBlocked() {
		if last != corsflow.StepImpactBlocked && last != corsflow.StepPreflightBlocked {
			t.Errorf("%+v: blocked outcome ends with %v", req, last)
		}
		if has(corsflow.StepResponseTravel) {
			t.Errorf("%+v: blocked outcome has a response-travel cue", req)
		}
	} else if last != corsflow.StepResponseTravel {
		t.Errorf("%+v: allowed outcome ends with %v", req, last)
	}
	startsWithPreflight := len(steps) >= 2 &&
		steps[0] == corsflow.StepLaunchPreflight &&
		steps[1] == corsflow.StepTravelPreflight
	if o.PreflightRequired() != startsWithPreflight {
		t.Errorf("%+v: preflight required is %t but steps are %v", req, o.PreflightRequired(), steps)
	}
	if o.CrossOrigin() == req.SameOrigin {
		t.Errorf("%+v: cross-origin: got %t", req, o.CrossOrigin())
	}
}

func TestIdempotence(t *testing.T) {
	for req := range corsflow.Combinations() {
		o1, _ := corsflow.Classify(req)
		o2, _ := corsflow.Classify(req)
		if o1 != o2 {
			t.Errorf("%+v: got %v then %v", req, o1.Result(), o2.Result())
		}
		if !slices.Equal(o1.Steps(), o2.Steps()) {
			t.Errorf("%+v: got steps %v then %v", req, o1.Steps(), o2.Steps())
		}
	}
}

func TestThatStepsReturnsAFreshSlice(t *testing.T) {
	req := corsflow.Request{Method: corsflow.MethodPut, CORSEnabled: true}
	o, _ := corsflow.Classify(req)
	steps := o.Steps()
	want := slices.Clone(steps)
	steps[0] = corsflow.StepImpactBlocked
	if got := o.Steps(); !slices.Equal(got, want) {
		t.Errorf("mutating the result of Steps altered the outcome: got %v; want %v", got, want)
	}
}

func TestThatCuesIsRestartable(t *testing.T) {
	req := corsflow.Request{Method: corsflow.MethodPost, CustomHeaders: true}
	o, _ := corsflow.Classify(req)
	cues := o.Cues()
	first := slices.Collect(cues)
	second := slices.Collect(cues)
	if !slices.Equal(first, second) || !slices.Equal(first, o.Steps()) {
		t.Errorf("got %v then %v; want %v twice", first, second, o.Steps())
	}
	for s := range cues {
		if s != corsflow.StepLaunchPreflight {
			t.Errorf("first cue: got %v; want %v", s, corsflow.StepLaunchPreflight)
		}
		break
	}
}

func TestConcurrentClassification(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for req := range corsflow.Combinations() {
				o, err := corsflow.Classify(req)
				if err != nil {
					t.Errorf("%+v: unexpected error: %v", req, err)
					return
				}
				if o.Result() == 0 {
					t.Errorf("%+v: zero result", req)
				}
			}
		})
	}
	wg.Wait()
}

func TestOutcomeAccessors(t *testing.T) {
	cases := []struct {
		req         corsflow.Request
		status      string
		crossOrigin bool
		topic       corsflow.Topic
	}{
		{
			req:    corsflow.Request{Method: corsflow.MethodGet, SameOrigin: true},
			status: "ALLOWED",
			topic:  corsflow.TopicSameOrigin,
		}, {
			req:         corsflow.Request{Method: corsflow.MethodGet, CORSEnabled: true},
			status:      "ALLOWED",
			crossOrigin: true,
			topic:       corsflow.TopicIntro,
		}, {
			req:         corsflow.Request{Method: corsflow.MethodPost},
			status:      "BLOCKED",
			crossOrigin: true,
			topic:       corsflow.TopicIntro,
		}, {
			req:         corsflow.Request{Method: corsflow.MethodDelete},
			status:      "BLOCKED",
			crossOrigin: true,
			topic:       corsflow.TopicPreflight,
		},
	}
	for _, tc := range cases {
		o, err := corsflow.Classify(tc.req)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", tc.req, err)
		}
		if got := o.Status(); got != tc.status {
			t.Errorf("%+v: status: got %q; want %q", tc.req, got, tc.status)
		}
		if got := o.CrossOrigin(); got != tc.crossOrigin {
			t.Errorf("%+v: cross-origin: got %t; want %t", tc.req, got, tc.crossOrigin)
		}
		if got := o.Topic(); got != tc.topic {
			t.Errorf("%+v: topic: got %v; want %v", tc.req, got, tc.topic)
		}
	}
}

func TestZeroOutcome(t *testing.T) {
	var o corsflow.Outcome
	if o.Steps() != nil || o.Explanation() != "" || o.PreflightRequired() || o.WasBlocked() || o.CrossOrigin() {
		t.Error("zero Outcome has non-zero properties")
	}
	if _, err := json.Marshal(o); err == nil {
		t.Error("marshaling the zero Outcome succeeded, but should not have")
	}
}

func TestMarshalOutcomeToJSON(t *testing.T) {
	req := corsflow.Request{Method: corsflow.MethodPut, CustomHeaders: true}
	o, _ := corsflow.Classify(req)
	got, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"result":"PREFLIGHT_THEN_BLOCKED",` +
		`"steps":["LAUNCH_PREFLIGHT","TRAVEL_PREFLIGHT","PREFLIGHT_BLOCKED"],` +
		`"explanation":"Preflight required. Browser sends OPTIONS request. Server REJECTS it (no CORS headers). Actual request is never sent.",` +
		`"preflightRequired":true,"wasBlocked":true}`
	if string(got) != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestNewRequest(t *testing.T) {
	req, err := corsflow.NewRequest("DELETE", false, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := corsflow.Request{Method: corsflow.MethodDelete, CORSEnabled: true}
	if req != want {
		t.Errorf("got %+v; want %+v", req, want)
	}
	if _, err := corsflow.NewRequest("PATCH", false, true, false); err == nil {
		t.Error("got nil error for PATCH; want non-nil")
	}
}
