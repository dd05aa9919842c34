package novapost

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sender identifies the sending side by human-facing values: a city name and
// a warehouse number within that city. Dispatch resolves both to carrier
// references and picks the account's default Sender counterparty.
type Sender struct {
	CityName        string
	WarehouseNumber string
	Phone           string
}

// Address is the human-facing recipient delivery target. Exactly one of the
// three kinds must be set; the kind decides the shipment's service type.
type Address struct {
	WarehouseNumber string
	PochtomatNumber string
	Street          *StreetAddress
}

// AtWarehouse targets a carrier branch by its city-scoped number.
func AtWarehouse(number int) Address {
	return Address{WarehouseNumber: strconv.Itoa(number)}
}

// AtPochtomat targets a parcel locker by its city-scoped number. Pochtomats
// are warehouses in the carrier's schema; delivery stays warehouse-to-warehouse.
func AtPochtomat(number int) Address {
	return Address{PochtomatNumber: strconv.Itoa(number)}
}

// AtStreet targets a street address for door delivery.
func AtStreet(street, house, flat string) Address {
	return Address{Street: &StreetAddress{Street: street, House: house, Flat: flat}}
}

// ServiceType returns the carrier service type the target kind implies.
func (a Address) ServiceType() ServiceType {
	if a.Street != nil {
		return ServiceWarehouseDoors
	}
	return ServiceWarehouseWarehouse
}

func (a Address) validate() error {
	count := 0
	if a.WarehouseNumber != "" {
		count++
	}
	if a.PochtomatNumber != "" {
		count++
	}
	if a.Street != nil {
		count++
	}
	if count != 1 {
		return ErrNoRecipientTarget
	}
	return nil
}

// Recipient identifies the receiving side. IsPayer shifts the delivery fee to
// the recipient.
type Recipient struct {
	CityName string
	FullName string
	Phone    string
	IsPayer  bool
	Address  Address
}

// Dispatch creates a shipment end-to-end from human-facing inputs. It
// validates the recipient target before any network call, resolves the sender
// city, default counterparty plus contact person, and warehouse concurrently,
// resolves the pochtomat number if used, aggregates the cargo list, and
// issues one document creation.
//
// Dispatch applies no timeout or retry of its own; the document creation is
// not idempotent, so callers own the retry policy.
func (c *Client) Dispatch(ctx context.Context, sender Sender, recipient Recipient, cargos []Cargo, date time.Time) (*CreatedDocument, error) {
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "novapost.Dispatch")
		defer span.End()
	}

	if err := recipient.Address.validate(); err != nil {
		return nil, err
	}
	if len(cargos) == 0 {
		return nil, ErrNoCargo
	}

	var (
		cityRef         string
		counterpartyRef string
		contactRef      string
		warehouseRef    string
	)

	// The three sender-side lookups are independent; the warehouse listing
	// goes by city name, so it does not wait for the city reference.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ref, err := c.resolveCity(gctx, sender.CityName)
		if err != nil {
			return err
		}
		cityRef = ref
		return nil
	})
	g.Go(func() error {
		cpRef, ctRef, err := c.resolveSenderContact(gctx)
		if err != nil {
			return err
		}
		counterpartyRef, contactRef = cpRef, ctRef
		return nil
	})
	g.Go(func() error {
		ref, err := c.resolveWarehouse(gctx, sender.CityName, sender.WarehouseNumber)
		if err != nil {
			return err
		}
		warehouseRef = ref
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var target RecipientTarget
	switch addr := recipient.Address; {
	case addr.WarehouseNumber != "":
		target.WarehouseNumber = addr.WarehouseNumber
	case addr.PochtomatNumber != "":
		ref, err := c.resolveWarehouse(ctx, recipient.CityName, addr.PochtomatNumber)
		if err != nil {
			return nil, err
		}
		target.PochtomatRef = ref
	case addr.Street != nil:
		target.Street = addr.Street
	}

	totals := AggregateCargo(cargos)

	payer := PayerSender
	if recipient.IsPayer {
		payer = PayerRecipient
	}

	var backward []BackwardDelivery
	if totals.CashOnDelivery > 0 {
		backward = BackwardDeliveryMoney(totals.CashOnDelivery)
	}

	resp, err := c.CreateDocument(ctx, &DocumentSpec{
		PayerType:         payer,
		PaymentMethod:     PaymentCash,
		CargoType:         CargoParcel,
		ServiceType:       recipient.Address.ServiceType(),
		Weight:            totals.Weight,
		SeatsAmount:       totals.Seats,
		Description:       totals.Description,
		Cost:              totals.Cost,
		CitySender:        cityRef,
		Sender:            counterpartyRef,
		SenderAddress:     warehouseRef,
		ContactSender:     contactRef,
		SendersPhone:      sender.Phone,
		RecipientCityName: recipient.CityName,
		RecipientTarget:   target,
		RecipientName:     recipient.FullName,
		RecipientsPhone:   recipient.Phone,
		Date:              date,
		BackwardDelivery:  backward,
	})
	if err != nil {
		return nil, err
	}

	doc, err := resp.First()
	if err != nil {
		return nil, err
	}

	c.logger.Info("Shipment dispatched",
		zap.String("ttn", doc.IntDocNumber),
		zap.String("ref", doc.Ref),
		zap.String("estimated_delivery", doc.EstimatedDeliveryDate),
	)
	return &doc, nil
}

// resolveCity resolves a city name to its carrier reference via fuzzy search,
// taking the best match. Zero matches is a resolution failure, distinct from
// a transport failure.
func (c *Client) resolveCity(ctx context.Context, name string) (string, error) {
	resp, err := c.GetCities(ctx, name)
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: %q", ErrCityNotFound, name)
	}
	return resp.Data[0].Ref, nil
}

// resolveSenderContact picks the account's default Sender counterparty and
// its first contact person, two dependent lookups.
func (c *Client) resolveSenderContact(ctx context.Context) (counterpartyRef, contactRef string, err error) {
	counterparties, err := c.SearchCounterparties(ctx, "", CounterpartySender)
	if err != nil {
		return "", "", err
	}
	counterparty, err := counterparties.First()
	if err != nil {
		return "", "", fmt.Errorf("resolving sender counterparty: %w", err)
	}

	contacts, err := c.GetCounterpartyContactPersons(ctx, counterparty.Ref)
	if err != nil {
		return "", "", err
	}
	contact, err := contacts.First()
	if err != nil {
		return "", "", fmt.Errorf("resolving sender contact person: %w", err)
	}
	return counterparty.Ref, contact.Ref, nil
}

// resolveWarehouse resolves a warehouse number within a city to its carrier
// reference by listing the city's warehouses and scanning for the number.
// Linear scan is fine at the list sizes involved.
func (c *Client) resolveWarehouse(ctx context.Context, city, number string) (string, error) {
	resp, err := c.GetWarehouses(ctx, city, "")
	if err != nil {
		return "", err
	}
	for _, warehouse := range resp.Data {
		if warehouse.Number == number {
			return warehouse.Ref, nil
		}
	}
	return "", fmt.Errorf("%w: warehouse %s in city %s", ErrWarehouseNotFound, number, city)
}
