package novapost

import (
	"fmt"
	"strconv"
	"time"
)

// Seat describes one parcel's dimensions. Values are centimeters, cubic
// meters, and kilograms, matching the carrier's units.
type Seat struct {
	Volume float64
	Width  float64
	Length float64
	Height float64
	Weight float64
}

// DefaultSeat is the carrier's smallest standard parcel, up to half a kilogram.
func DefaultSeat() Seat {
	return Seat{Volume: 0.5, Width: 20, Length: 20, Height: 5, Weight: 0.5}
}

// toOptionsSeat renders the seat in the carrier's string-typed wire form.
func (s Seat) toOptionsSeat() OptionsSeat {
	return OptionsSeat{
		VolumetricVolume: formatFloat(s.Volume),
		VolumetricWidth:  formatFloat(s.Width),
		VolumetricLength: formatFloat(s.Length),
		VolumetricHeight: formatFloat(s.Height),
		Weight:           formatFloat(s.Weight),
	}
}

// Cargo is one item of a shipment. Cost is in integer currency units.
// CashOnDelivery marks the cost for collection from the recipient.
type Cargo struct {
	Cost           int
	Seat           Seat
	CashOnDelivery bool
	Description    string
}

// CargoTotals is the single shipment line a cargo list aggregates into.
type CargoTotals struct {
	Seats          int
	Weight         float64
	Cost           int
	CashOnDelivery int
	Description    string
}

// AggregateCargo folds a cargo list into one shipment line: seat count is the
// cargo count, weight and cost are sums, cash-on-delivery is the sum of costs
// of flagged cargos. The description of the last cargo wins; the carrier's
// waybill carries a single description field.
func AggregateCargo(cargos []Cargo) CargoTotals {
	var totals CargoTotals
	totals.Seats = len(cargos)
	for _, c := range cargos {
		totals.Weight += c.Seat.Weight
		totals.Cost += c.Cost
		totals.Description = c.Description
		if c.CashOnDelivery {
			totals.CashOnDelivery += c.Cost
		}
	}
	return totals
}

// FormatDate renders a date in the carrier's required textual form:
// day.month.year with no leading zeros.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
