package errors

import (
	"reflect"
)

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors without a registered code are reported as internal, and
	// outside of debug mode their message is hidden.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response for the given
// error. Only registered errors expose their message unless debug is set.
func ABCIInfo(err error, debug bool) (uint32, string) {
	switch code := abciCode(err); {
	case code == SuccessABCICode:
		return SuccessABCICode, ""
	case code != internalABCICode || debug:
		return code, err.Error()
	default:
		return internalABCICode, internalABCILog
	}
}

// ABCIError turns the code and log of an ABCI response back into an
// error. A registered code maps to its root error, so Is works on the
// client side.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	if e, ok := usedCodes[code]; ok && e != nil {
		return Wrap(e, log)
	}
	return Wrapf(usedCodes[internalABCICode], "code %d: %s", code, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode unwraps err until it finds a registered code.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = c.Cause()
	}
}

// errIsNil also treats a typed nil pointer as no error.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
