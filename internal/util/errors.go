package util

import (
	"fmt"
	"io"
	"strconv"
)

const pkgName = "corsflow"

// NewError is similar to [errors.New],
// but the message of the resulting error is prefixed with "corsflow: ".
func NewError(text string) error {
	return &prefixedError{
		pkgName: pkgName,
		msg:     text,
	}
}

// Errorf is similar to [fmt.Errorf],
// but the message of the resulting error is prefixed with "corsflow: ".
// Unlike [fmt.Errorf], it does not wrap any of its arguments.
func Errorf(format string, a ...any) error {
	return &prefixedError{
		pkgName: pkgName,
		msg:     fmt.Sprintf(format, a...),
	}
}

type prefixedError struct {
	pkgName string
	msg     string
}

func (e *prefixedError) Error() string {
	return fmt.Sprintf("%s: %s", e.pkgName, e.msg)
}

// Prefix prepends the package name to msg, as in the messages of the
// errors returned by [NewError] and [Errorf].
func Prefix(msg string) string {
	return pkgName + ": " + msg
}

// Join joins the elements of strs in a human-friendly way
// and writes the result to w.
func Join(w io.StringWriter, strs []string) {
	// Errors are deliberately ignored.
	switch len(strs) {
	case 0:
	case 1:
		w.WriteString(strconv.Quote(strs[0]))
	case 2:
		w.WriteString(strconv.Quote(strs[0]))
		w.WriteString(" and ")
		w.WriteString(strconv.Quote(strs[1]))
	default:
		w.WriteString(strconv.Quote(strs[0]))
		for i := 1; i < len(strs)-1; i++ {
			w.WriteString(", ")
			w.WriteString(strconv.Quote(strs[i]))
		}
		w.WriteString(", and ")
		w.WriteString(strconv.Quote(strs[len(strs)-1]))
	}
}
