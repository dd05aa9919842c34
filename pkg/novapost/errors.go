package novapost

import (
	"errors"
	"fmt"
)

// TransportError reports that a call never produced a usable carrier envelope:
// the request could not be built or sent, the HTTP status was unexpected, or
// the response body was not valid JSON.
type TransportError struct {
	Op    string // "Model.method" of the attempted call
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("novapost transport error (%s): %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// CarrierError reports a well-formed carrier response with success=false.
// Errors holds the carrier's diagnostic payload verbatim.
type CarrierError struct {
	Model  string
	Method string
	Errors []any
}

// Error implements the error interface.
func (e *CarrierError) Error() string {
	return fmt.Sprintf("novapost: %s.%s rejected by carrier: %v", e.Model, e.Method, e.Errors)
}

// Is matches any CarrierError for the same model and method.
func (e *CarrierError) Is(target error) bool {
	t, ok := target.(*CarrierError)
	if !ok {
		return false
	}
	return e.Model == t.Model && e.Method == t.Method
}

// Sentinel errors for result and resolution failures.
var (
	// ErrEmptyResult indicates success=true with zero records where one was
	// expected. Distinct from CarrierError: the carrier can answer a search
	// successfully with no matches.
	ErrEmptyResult = errors.New("no data returned")

	// ErrCityNotFound indicates a city name resolved to zero references.
	ErrCityNotFound = errors.New("city not found")

	// ErrWarehouseNotFound indicates a warehouse number absent from its city's list.
	ErrWarehouseNotFound = errors.New("warehouse not found")

	// ErrNoRecipientTarget indicates a recipient address without exactly one
	// of warehouse number, pochtomat number, or street address.
	ErrNoRecipientTarget = errors.New("recipient address must specify exactly one target")

	// ErrNoCargo indicates a shipment with an empty cargo list.
	ErrNoCargo = errors.New("shipment needs at least one cargo")
)

// IsCarrierRejection reports whether err stems from a success=false response,
// as opposed to a transport failure. Creation calls rejected by the carrier
// must not be blindly retried.
func IsCarrierRejection(err error) bool {
	var carrierErr *CarrierError
	return errors.As(err, &carrierErr)
}

// IsTransport reports whether err stems from a network/HTTP/JSON failure.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
