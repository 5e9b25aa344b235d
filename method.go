package corsflow

import (
	"net/http"
	"strconv"

	"github.com/jub0bs/corsflow/descerrors"
	"github.com/jub0bs/corsflow/internal/methods"
)

// A Method is the method of a simulated request.
// The zero value is not a valid Method.
type Method uint8

// The methods that a simulated request may use.
const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
)

var methodNames = [...]string{
	MethodGet:    http.MethodGet,
	MethodPost:   http.MethodPost,
	MethodPut:    http.MethodPut,
	MethodDelete: http.MethodDelete,
}

// ParseMethod returns the Method named name.
// Method names are case-sensitive: "get" is not a supported method.
//
// If name is not acceptable, ParseMethod returns a non-nil error whose
// dynamic type is [*descerrors.UnacceptableMethodError].
func ParseMethod(name string) (Method, error) {
	if !methods.IsValid(name) {
		err := &descerrors.UnacceptableMethodError{
			Value:  name,
			Reason: "invalid",
		}
		return 0, err
	}
	if methods.IsForbidden(name) {
		err := &descerrors.UnacceptableMethodError{
			Value:  name,
			Reason: "forbidden",
		}
		return 0, err
	}
	if !methods.IsSupported(name) {
		err := &descerrors.UnacceptableMethodError{
			Value:  name,
			Reason: "unsupported",
		}
		return 0, err
	}
	for m, s := range methodNames {
		if s == name {
			return Method(m), nil
		}
	}
	panic("unreachable")
}

// Methods returns the valid methods in display order.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodDelete}
}

func (m Method) valid() bool {
	return MethodGet <= m && m <= MethodDelete
}

// String returns m's name, e.g. "GET".
func (m Method) String() string {
	if !m.valid() {
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
	return methodNames[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, m.unsupportedErr()
	}
	return []byte(methodNames[m]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// It accepts the same names as [ParseMethod].
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Method) unsupportedErr() error {
	return &descerrors.UnacceptableMethodError{
		Value:  m.String(),
		Reason: "unsupported",
	}
}
