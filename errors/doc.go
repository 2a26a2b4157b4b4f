/*
Package errors provides coded errors that travel from a handler to the
client as an ABCI result code.

Each root error is created once with Register and owns a unique code.
Codes below 20 are generic and defined here. Extensions register their own
errors in their package using the ranges

	20-29 x/sigs
	30-39 x/token
	40-49 x/offer

Add context at the point of failure with Wrap or Wrapf, and test the kind
of an error with the Is method of the root error, never by comparing
messages:

	if errors.ErrNotFound.Is(err) {
		...
	}

Wrapping records a stack trace the first time only. Format with %s for the
message and %+v for the message with the stack trace. ABCIInfo turns any
error into the code and log returned to the client, hiding unregistered
errors unless debug mode is on.
*/
package errors
