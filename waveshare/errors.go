// waveshare/errors.go
package waveshare

import "errors"

// Local validation and decode failures. Transport errors and device
// exceptions are never converted into these; they pass through from
// the link untouched (see buslink.ExceptionCode for telling the two
// apart).
var (
	ErrInvalidChannel     = errors.New("waveshare: channel out of range")
	ErrInvalidControlMode = errors.New("waveshare: invalid control mode")
	ErrInvalidAction      = errors.New("waveshare: invalid action code")
	ErrInvalidBaud        = errors.New("waveshare: invalid baud rate code")
	ErrInvalidParity      = errors.New("waveshare: invalid parity code")
	ErrInvalidAddress     = errors.New("waveshare: device address out of range")
)
