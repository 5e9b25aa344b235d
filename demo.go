package corsflow

import "iter"

// DemoScenarios returns, in presentation order, the requests of a short
// guided tour: a simple request that succeeds, a preflighted request that
// succeeds, and a preflighted request that fails.
func DemoScenarios() []Request {
	return []Request{
		{Method: MethodGet, CORSEnabled: true},
		{Method: MethodPost, CORSEnabled: true, CustomHeaders: true},
		{Method: MethodPut, CustomHeaders: true},
	}
}

// Combinations returns an iterator over every distinct Request.
// Requests are ordered by method (in the order of [Methods]),
// then by SameOrigin, CORSEnabled, and CustomHeaders, false before true.
func Combinations() iter.Seq[Request] {
	return func(yield func(Request) bool) {
		bools := [...]bool{false, true}
		for _, m := range Methods() {
			for _, sameOrigin := range bools {
				for _, cors := range bools {
					for _, custom := range bools {
						req := Request{
							Method:        m,
							SameOrigin:    sameOrigin,
							CORSEnabled:   cors,
							CustomHeaders: custom,
						}
						if !yield(req) {
							return
						}
					}
				}
			}
		}
	}
}
