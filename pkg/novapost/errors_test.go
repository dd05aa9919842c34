package novapost_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parcelbridge/novapost/pkg/novapost"
)

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &novapost.TransportError{Op: "AddressGeneral.getCities", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "AddressGeneral.getCities")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCarrierError_Is(t *testing.T) {
	err := &novapost.CarrierError{
		Model:  "InternetDocument",
		Method: "save",
		Errors: []any{"RecipientsPhone is invalid"},
	}

	assert.ErrorIs(t, err, &novapost.CarrierError{Model: "InternetDocument", Method: "save"})
	assert.NotErrorIs(t, err, &novapost.CarrierError{Model: "InternetDocument", Method: "delete"})
	assert.Contains(t, err.Error(), "RecipientsPhone is invalid")
}

func TestIsCarrierRejection_Wrapped(t *testing.T) {
	inner := &novapost.CarrierError{Model: "InternetDocument", Method: "save"}
	wrapped := fmt.Errorf("creating shipment: %w", inner)

	assert.True(t, novapost.IsCarrierRejection(wrapped))
	assert.False(t, novapost.IsTransport(wrapped))
}

func TestIsTransport_Wrapped(t *testing.T) {
	inner := &novapost.TransportError{Op: "AddressGeneral.getCities", Cause: errors.New("timeout")}
	wrapped := fmt.Errorf("resolving city: %w", inner)

	assert.True(t, novapost.IsTransport(wrapped))
	assert.False(t, novapost.IsCarrierRejection(wrapped))
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{
		novapost.ErrEmptyResult,
		novapost.ErrCityNotFound,
		novapost.ErrWarehouseNotFound,
		novapost.ErrNoRecipientTarget,
		novapost.ErrNoCargo,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a, b)
		}
	}
}
