// internal/decode/errors.go
package decode

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. Both indicate a schema/device mismatch and are not retryable.
var (
	ErrBufferTooShort   = errors.New("decode: buffer too short")
	ErrInvalidTimestamp = errors.New("decode: invalid timestamp")
)

// BufferTooShortError reports the first field that does not fit the buffer.
type BufferTooShortError struct {
	Field    string
	Required int
	Actual   int
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf(
		"decode: buffer too short for field %q: need %d registers, have %d",
		e.Field, e.Required, e.Actual,
	)
}

func (e *BufferTooShortError) Is(target error) bool {
	return target == ErrBufferTooShort
}

// InvalidTimestampError reports a packed date-time that is not a calendar date/time.
type InvalidTimestampError struct {
	Field  string
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (e *InvalidTimestampError) Error() string {
	field := ""
	if e.Field != "" {
		field = fmt.Sprintf(" in field %q", e.Field)
	}
	return fmt.Sprintf(
		"decode: invalid timestamp%s: %04d-%02d-%02d %02d:%02d:%02d",
		field, e.Year, e.Month, e.Day, e.Hour, e.Minute, e.Second,
	)
}

func (e *InvalidTimestampError) Is(target error) bool {
	return target == ErrInvalidTimestamp
}
