package utils

import "strings"

// MaxPathnameLength bounds the counter key; anything longer is rejected
// rather than truncated.
const MaxPathnameLength = 512

// NormalizePathname validates an untrusted candidate value into a canonical
// counter key. Only strings are accepted; the value is trimmed and must be a
// "/"-prefixed path of at most MaxPathnameLength characters. No
// percent-decoding or query stripping happens here: clients are expected to
// send location.pathname, which is already a clean path.
func NormalizePathname(input any) (string, bool) {
	s, ok := input.(string)
	if !ok {
		return "", false
	}

	pathname := strings.TrimSpace(s)
	if !strings.HasPrefix(pathname, "/") {
		return "", false
	}
	if len(pathname) > MaxPathnameLength {
		return "", false
	}

	return pathname, true
}
