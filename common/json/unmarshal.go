// Package json decodes configuration files: encoding/json with comments and
// positioned syntax errors.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

var (
	Marshal    = json.Marshal
	Unmarshal  = json.Unmarshal
	NewEncoder = json.NewEncoder
)

type SyntaxError = json.SyntaxError

// UnmarshalExtended decodes content after stripping comments. Unknown fields
// are rejected.
func UnmarshalExtended[T any](content []byte) (T, error) {
	content = StripComments(content)
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	var value T
	err := decoder.Decode(&value)
	if err == nil {
		return value, nil
	}
	var zero T
	var syntaxError *SyntaxError
	if errors.As(err, &syntaxError) {
		prefix := string(content[:min(int(syntaxError.Offset), len(content))])
		row := strings.Count(prefix, "\n") + 1
		column := len(prefix) - strings.LastIndex(prefix, "\n") - 1
		return zero, E.Cause(syntaxError, "row ", row, ", column ", column)
	}
	return zero, err
}
