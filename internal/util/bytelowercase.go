package util

import "strings"

// ByteLowercase returns a [byte-lowercase] version of str;
// only ASCII upper-case letters are affected.
// If str contains no such letter, str itself is returned.
//
// [byte-lowercase]: https://infra.spec.whatwg.org/#byte-lowercase
func ByteLowercase(str string) string {
	if strings.IndexFunc(str, isASCIIUpper) < 0 {
		return str
	}
	return strings.Map(toASCIILower, str)
}

func isASCIIUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
