// buslink/errors.go
package buslink

import (
	"errors"

	"github.com/goburrow/modbus"
)

// ErrShortResponse means the transport delivered fewer bits or
// registers than the request asked for.
var ErrShortResponse = errors.New("buslink: response shorter than requested quantity")

// ExceptionCode reports the exception code a device attached to err,
// if any. Transport failures (I/O errors, timeouts) return ok=false;
// they are passed through this package unmodified and carry no code.
func ExceptionCode(err error) (code byte, ok bool) {
	var me *modbus.ModbusError
	if errors.As(err, &me) {
		return me.ExceptionCode, true
	}
	return 0, false
}
