package exceptions

import "errors"

// IsMulti reports whether err matches any of targetList.
func IsMulti(err error, targetList ...error) bool {
	for _, target := range targetList {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
