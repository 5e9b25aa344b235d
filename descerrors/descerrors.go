/*
Package descerrors provides functionalities for programmatically handling
the errors produced by package [github.com/jub0bs/corsflow] when it rejects
a malformed request descriptor or an unknown token.

Most users of package [github.com/jub0bs/corsflow] have no use for this
package. However, front ends that let people type in request descriptors
(e.g. via a form or a scenario file) may find it useful: it allows them to
report mistakes with custom, human-friendly messages.
*/
package descerrors

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jub0bs/corsflow/internal/methods"
	"github.com/jub0bs/corsflow/internal/util"
)

// An UnacceptableMethodError indicates an unacceptable method.
// The Reason field may take one of three values:
//   - "invalid": the method is not a valid method token;
//   - "forbidden": the method is forbidden by [the Fetch standard];
//   - "unsupported": the method is valid but is not one of GET, POST, PUT,
//     and DELETE (method names are case-sensitive).
//
// For more details, see [github.com/jub0bs/corsflow.ParseMethod].
//
// [the Fetch standard]: https://fetch.spec.whatwg.org
type UnacceptableMethodError struct {
	Value  string // the unacceptable value that was specified
	Reason string // invalid | forbidden | unsupported
}

func (err *UnacceptableMethodError) Error() string {
	if err.Reason == "unsupported" {
		var sb strings.Builder
		fmt.Fprintf(&sb, "unsupported method %q (supported: ", err.Value)
		util.Join(&sb, methods.Supported[:])
		sb.WriteByte(')')
		return util.Prefix(sb.String())
	}
	const tmpl = "%s method %q"
	return util.Prefix(fmt.Sprintf(tmpl, err.Reason, err.Value))
}

// An UnknownTokenError indicates a textual token that does not name any
// member of the enumeration it was parsed as.
// The Type field may take one of three values:
//   - "result";
//   - "step";
//   - "topic".
type UnknownTokenError struct {
	Value string // the unknown value that was specified
	Type  string // result | step | topic
}

func (err *UnknownTokenError) Error() string {
	const tmpl = "unknown %s %q"
	return util.Prefix(fmt.Sprintf(tmpl, err.Type, err.Value))
}

// All returns an iterator over the errors contained in err's error tree.
// The order is unspecified and may change from one release to the next.
// All walks errors joined with [errors.Join] but does not unwrap errors
// wrapped with the %w verb of [fmt.Errorf]; such an error is yielded as is.
// All only supports error values returned by package
// [github.com/jub0bs/corsflow]; it should not be called on any other error
// value.
func All(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		every(err, yield)
	}
}

func every(err error, f func(error) bool) bool {
	switch err := err.(type) {
	// Single-error wrappers are leaves.
	case interface{ Unwrap() []error }:
		for _, err := range err.Unwrap() {
			if !every(err, f) {
				return false
			}
		}
		return true
	default:
		return f(err)
	}
}
