package methods

import (
	"net/http"

	"github.com/jub0bs/corsflow/internal/util"
	"golang.org/x/net/http/httpguts"
)

// IsValid reports whether name is a valid method, [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#concept-method
func IsValid(name string) bool {
	// Note: the production is identical to that of header names.
	return httpguts.ValidHeaderFieldName(name)
}

// IsForbidden reports whether name is a forbidden method,
// [per the Fetch standard].
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#forbidden-method
func IsForbidden(name string) bool {
	return byteLowercasedForbiddenMethods.Contains(util.ByteLowercase(name))
}

var byteLowercasedForbiddenMethods = util.NewSet(
	"connect",
	"trace",
	"track",
)

// IsSafelisted reports whether name is a safelisted method,
// [per the Fetch standard].
// Method names are case-sensitive.
//
// [per the Fetch standard]: https://fetch.spec.whatwg.org/#cors-safelisted-method
func IsSafelisted(name string) bool {
	return safelistedMethods.Contains(name)
}

var safelistedMethods = util.NewSet(
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
)

// Supported lists, in display order, the methods that a simulated request
// may use.
var Supported = [...]string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// IsSupported reports whether name is one of the methods listed in
// [Supported]. Method names are case-sensitive.
func IsSupported(name string) bool {
	return supportedMethods.Contains(name)
}

var supportedMethods = util.NewSet(Supported[:]...)
