// ABOUTME: Strict JSON decoding for structured generations
// ABOUTME: Rejects unknown fields and delegates required-field checks to the target type
package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeStrict parses a generated JSON document into out. Unknown
// fields are a hard failure, and if out implements Validate the
// decoded value must pass it. Trailing garbage after the document is
// also rejected.
func DecodeStrict(content string, out any) error {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	if err := dec.Decode(out); err != nil {
		return &SchemaValidationError{Err: err}
	}
	if dec.More() {
		return &SchemaValidationError{Err: fmt.Errorf("trailing data after JSON document")}
	}

	if v, ok := out.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return &SchemaValidationError{Err: err}
		}
	}
	return nil
}
