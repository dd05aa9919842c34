package novapost_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelbridge/novapost/pkg/novapost"
)

func TestAddress_Constructors(t *testing.T) {
	assert.Equal(t, novapost.ServiceWarehouseWarehouse, novapost.AtWarehouse(14).ServiceType())
	assert.Equal(t, novapost.ServiceWarehouseWarehouse, novapost.AtPochtomat(88).ServiceType())
	assert.Equal(t, novapost.ServiceWarehouseDoors, novapost.AtStreet("вул. Сумська", "25", "7").ServiceType())
}

func findCall(t *testing.T, calls []novapost.RecordedCall, method string) novapost.RecordedCall {
	t.Helper()
	for _, call := range calls {
		if call.Method == method {
			return call
		}
	}
	t.Fatalf("no recorded call for method %s", method)
	return novapost.RecordedCall{}
}

func TestDispatch_WarehouseToWarehouse(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	client := newTestClient(mockAPI)

	doc, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1", Phone: "380501234567"},
		novapost.Recipient{
			CityName: "Харків",
			FullName: "Петренко Іван",
			Phone:    "380671112233",
			Address:  novapost.AtWarehouse(14),
		},
		[]novapost.Cargo{
			{Cost: 150, Seat: novapost.Seat{Weight: 0.5}, CashOnDelivery: true, Description: "Книги"},
			{Cost: 250, Seat: novapost.Seat{Weight: 1.5}, Description: "Одяг"},
		},
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.NotEmpty(t, doc.IntDocNumber)
	assert.NotEmpty(t, doc.Ref)

	// City, counterparty, contact person, warehouse, then the save.
	calls := mockAPI.Calls()
	assert.Len(t, calls, 5)

	props := properties(t, findCall(t, calls, "save"))
	assert.Equal(t, "8d5a980d-391c-11dd-90d9-001a92567626", props["CitySender"])
	assert.NotEmpty(t, props["Sender"])
	assert.NotEmpty(t, props["SenderAddress"])
	assert.NotEmpty(t, props["ContactSender"])
	assert.Equal(t, "380501234567", props["SendersPhone"])
	assert.Equal(t, "Харків", props["RecipientCityName"])
	assert.Equal(t, "14", props["RecipientAddressName"])
	assert.Equal(t, "Петренко Іван", props["RecipientName"])
	assert.Equal(t, "WarehouseWarehouse", props["ServiceType"])
	assert.Equal(t, "Sender", props["PayerType"])
	assert.Equal(t, "2", props["SeatsAmount"])
	assert.Equal(t, "2", props["Weight"])
	assert.Equal(t, "400", props["Cost"])
	assert.Equal(t, "Одяг", props["Description"])
	assert.Equal(t, "5.3.2024", props["DateTime"])

	// Only the flagged cargo's cost is collected.
	backward := props["BackwardDeliveryData"].([]any)
	require.Len(t, backward, 1)
	assert.Equal(t, "150", backward[0].(map[string]any)["RedeliveryString"])
}

func TestDispatch_RecipientPays(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1", Phone: "380501234567"},
		novapost.Recipient{
			CityName: "Харків",
			FullName: "Петренко Іван",
			Phone:    "380671112233",
			IsPayer:  true,
			Address:  novapost.AtWarehouse(14),
		},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat(), Description: "Книги"}},
		time.Now(),
	)

	require.NoError(t, err)
	props := properties(t, findCall(t, mockAPI.Calls(), "save"))
	assert.Equal(t, "Recipient", props["PayerType"])
	// No cash on delivery, no backward delivery instruction.
	assert.NotContains(t, props, "BackwardDeliveryData")
}

func TestDispatch_Pochtomat(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		switch model + "." + method {
		case "AddressGeneral.getCities":
			return envelopeWith(t, novapost.City{Ref: "kyiv-city-ref", Description: "Київ"}), nil
		case "AddressGeneral.getWarehouses":
			wp := props.(novapost.WarehouseProperties)
			if wp.CityName == "Харків" {
				return envelopeWith(t,
					novapost.Warehouse{Ref: "pochtomat-ref-88", Number: "88", TypeOfWarehouse: "f9316480-5f2d-425d-bc2c-ac7cd29decf0"},
				), nil
			}
			return envelopeWith(t, novapost.Warehouse{Ref: "kyiv-wh-ref-1", Number: "1"}), nil
		case "Counterparty.getCounterparties":
			return envelopeWith(t, novapost.Counterparty{Ref: "cp-ref-1"}), nil
		case "Counterparty.getCounterpartyContactPersons":
			return envelopeWith(t, novapost.ContactPerson{Ref: "ct-ref-1"}), nil
		case "InternetDocument.save":
			return envelopeWith(t, novapost.CreatedDocument{IntDocNumber: "20450000000007", Ref: "doc-ref-1"}), nil
		}
		return nil, fmt.Errorf("unexpected call %s.%s", model, method)
	}
	client := newTestClient(mockAPI)

	doc, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1", Phone: "380501234567"},
		novapost.Recipient{
			CityName: "Харків",
			FullName: "Петренко Іван",
			Phone:    "380671112233",
			Address:  novapost.AtPochtomat(88),
		},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat(), Description: "Книги"}},
		time.Now(),
	)

	require.NoError(t, err)
	assert.Equal(t, "20450000000007", doc.IntDocNumber)

	props := properties(t, findCall(t, mockAPI.Calls(), "save"))
	assert.Equal(t, "pochtomat-ref-88", props["RecipientAddress"])
	assert.Empty(t, props["RecipientAddressName"])
	assert.Equal(t, "WarehouseWarehouse", props["ServiceType"])
}

func TestDispatch_CityNotFound(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.OnCall = func(ctx context.Context, model, method string, props any) (*novapost.Envelope, error) {
		switch model + "." + method {
		case "AddressGeneral.getCities":
			return &novapost.Envelope{Success: true}, nil
		case "AddressGeneral.getWarehouses":
			return envelopeWith(t, novapost.Warehouse{Ref: "wh-ref-1", Number: "1"}), nil
		case "Counterparty.getCounterparties":
			return envelopeWith(t, novapost.Counterparty{Ref: "cp-ref-1"}), nil
		case "Counterparty.getCounterpartyContactPersons":
			return envelopeWith(t, novapost.ContactPerson{Ref: "ct-ref-1"}), nil
		}
		return &novapost.Envelope{Success: true}, nil
	}
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Атлантида", WarehouseNumber: "1"},
		novapost.Recipient{CityName: "Харків", Address: novapost.AtWarehouse(14)},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat()}},
		time.Now(),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, novapost.ErrCityNotFound)
	assert.Contains(t, err.Error(), "Атлантида")
}

func TestDispatch_WarehouseNotFound(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "999"},
		novapost.Recipient{CityName: "Харків", Address: novapost.AtWarehouse(14)},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat()}},
		time.Now(),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, novapost.ErrWarehouseNotFound)
	assert.Contains(t, err.Error(), "999")
	assert.Contains(t, err.Error(), "Київ")
}

func TestDispatch_NoRecipientTarget(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1"},
		novapost.Recipient{CityName: "Харків"},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat()}},
		time.Now(),
	)

	assert.ErrorIs(t, err, novapost.ErrNoRecipientTarget)
	// Validation happens before any network traffic.
	assert.Zero(t, mockAPI.CallCount())
}

func TestDispatch_NoCargo(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1"},
		novapost.Recipient{CityName: "Харків", Address: novapost.AtWarehouse(14)},
		nil,
		time.Now(),
	)

	assert.ErrorIs(t, err, novapost.ErrNoCargo)
	assert.Zero(t, mockAPI.CallCount())
}

func TestDispatch_TransportError(t *testing.T) {
	mockAPI := novapost.NewMockAPIClient()
	mockAPI.SimulateErrors = true
	client := newTestClient(mockAPI)

	_, err := client.Dispatch(context.Background(),
		novapost.Sender{CityName: "Київ", WarehouseNumber: "1"},
		novapost.Recipient{CityName: "Харків", Address: novapost.AtWarehouse(14)},
		[]novapost.Cargo{{Cost: 100, Seat: novapost.DefaultSeat()}},
		time.Now(),
	)

	require.Error(t, err)
	assert.True(t, novapost.IsTransport(err))
}
