package novapost_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelbridge/novapost/pkg/novapost"
)

func TestResponse_First_SingleRecord(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		return envelopeWith(t, novapost.City{Ref: "city-ref-1", Description: "Одеса"}), nil
	}
	client := newTestClient(mockAPI)

	resp, err := client.GetCities(context.Background(), "Одеса")
	require.NoError(t, err)

	city, err := resp.First()
	require.NoError(t, err)
	assert.Equal(t, "city-ref-1", city.Ref)
}

func TestResponse_First_EmptyData(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		// success=true with no matches: a valid answer, not a rejection.
		return &novapost.Envelope{Success: true, Errors: []any{"City not resolved"}}, nil
	}
	client := newTestClient(mockAPI)

	resp, err := client.GetCities(context.Background(), "Атлантида")
	require.NoError(t, err)
	assert.Empty(t, resp.Data)

	_, err = resp.First()
	require.Error(t, err)
	assert.ErrorIs(t, err, novapost.ErrEmptyResult)
	assert.Contains(t, err.Error(), "City not resolved")
}

func TestDecode_ElementFailureFailsCall(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		return &novapost.Envelope{
			Success: true,
			Data: []json.RawMessage{
				json.RawMessage(`{"Ref": "city-ref-1"}`),
				json.RawMessage(`{"Ref": 42}`), // wrong type for a string field
			},
		}, nil
	}
	client := newTestClient(mockAPI)

	_, err := client.GetCities(context.Background(), "Київ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "data[1]")
}

func TestDecode_WarningsPreserved(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		env := envelopeWith(t, novapost.City{Ref: "city-ref-1"})
		env.Warnings = []any{"Deprecated method property"}
		return env, nil
	}
	client := newTestClient(mockAPI)

	resp, err := client.GetCities(context.Background(), "Київ")

	require.NoError(t, err)
	assert.Equal(t, []any{"Deprecated method property"}, resp.Warnings)
}
