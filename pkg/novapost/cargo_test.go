package novapost_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parcelbridge/novapost/pkg/novapost"
)

func TestAggregateCargo(t *testing.T) {
	totals := novapost.AggregateCargo([]novapost.Cargo{
		{Cost: 100, Seat: novapost.Seat{Weight: 0.5}, CashOnDelivery: true, Description: "Книги"},
		{Cost: 250, Seat: novapost.Seat{Weight: 1.2}, Description: "Одяг"},
		{Cost: 50, Seat: novapost.Seat{Weight: 0.3}, CashOnDelivery: true, Description: "Кабель"},
	})

	assert.Equal(t, 3, totals.Seats)
	assert.InDelta(t, 2.0, totals.Weight, 1e-9)
	assert.Equal(t, 400, totals.Cost)
	// Only flagged cargos contribute to collection.
	assert.Equal(t, 150, totals.CashOnDelivery)
	// The last description wins; the waybill has one description field.
	assert.Equal(t, "Кабель", totals.Description)
}

func TestAggregateCargo_NoCashOnDelivery(t *testing.T) {
	totals := novapost.AggregateCargo([]novapost.Cargo{
		{Cost: 100, Seat: novapost.DefaultSeat(), Description: "Книги"},
	})

	assert.Equal(t, 1, totals.Seats)
	assert.Equal(t, 100, totals.Cost)
	assert.Zero(t, totals.CashOnDelivery)
}

func TestAggregateCargo_Empty(t *testing.T) {
	totals := novapost.AggregateCargo(nil)

	assert.Zero(t, totals.Seats)
	assert.Zero(t, totals.Cost)
	assert.Empty(t, totals.Description)
}

func TestDefaultSeat(t *testing.T) {
	seat := novapost.DefaultSeat()

	assert.Equal(t, 0.5, seat.Volume)
	assert.Equal(t, 20.0, seat.Width)
	assert.Equal(t, 20.0, seat.Length)
	assert.Equal(t, 5.0, seat.Height)
	assert.Equal(t, 0.5, seat.Weight)
}

func TestFormatDate(t *testing.T) {
	// Single-digit components stay unpadded.
	assert.Equal(t, "5.3.2024", novapost.FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "25.12.2024", novapost.FormatDate(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
}

func TestBackwardDeliveryMoney(t *testing.T) {
	backward := novapost.BackwardDeliveryMoney(150)

	assert.Len(t, backward, 1)
	assert.Equal(t, "Recipient", backward[0].PayerType)
	assert.Equal(t, "Money", backward[0].CargoType)
	assert.Equal(t, "150", backward[0].RedeliveryString)
}
