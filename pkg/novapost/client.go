// Package novapost provides a typed client for the Nova Poshta JSON API:
// addresses, warehouses, counterparties, shipment documents, pricing,
// tracking, and scan sheets.
package novapost

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parcelbridge/novapost/internal/telemetry"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config holds client configuration. The API key and endpoint are explicit;
// the client keeps no other state between calls, so one instance is safe for
// concurrent use.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	UseMock bool               // when true, uses a mock API client
	Metrics *telemetry.Metrics // optional, production transport only
}

// Client is the typed API client. It delegates transport to the underlying
// APIClient (mock or HTTP) and owns the per-operation property building and
// result decoding.
type Client struct {
	config Config
	api    APIClient
	logger *otelzap.Logger
	tracer trace.Tracer
}

// New creates a new client. If cfg.UseMock is true, it uses a mock API client
// for testing. Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var api APIClient

	if cfg.UseMock {
		api = NewMockAPIClient()
	} else {
		api = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
			Metrics: cfg.Metrics,
		})
	}

	return &Client{
		config: cfg,
		api:    api,
		logger: logger,
		tracer: tracer,
	}
}

// NewWithAPIClient creates a new client with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, api APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config: cfg,
		api:    api,
		logger: logger,
		tracer: tracer,
	}
}

// call runs one request/response round trip and decodes the result records.
func call[T any](ctx context.Context, c *Client, model, method string, props any) (*Response[T], error) {
	env, err := c.api.Call(ctx, model, method, props)
	if err != nil {
		c.logger.Error("API call failed",
			zap.String("model", model),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}

	resp, err := decodeResponse[T](model, method, env)
	if err != nil {
		c.logger.Error("API response rejected",
			zap.String("model", model),
			zap.String("method", method),
			zap.Error(err),
		)
		return nil, err
	}
	return resp, nil
}

// GetCities searches cities by free text. An empty query returns the default
// page of all cities.
func (c *Client) GetCities(ctx context.Context, query string) (*Response[City], error) {
	return call[City](ctx, c, ModelAddress, "getCities", CityProperties{FindByString: query})
}

// GetWarehouses lists warehouses. The city may be a carrier reference or a
// plain name; a reference-shaped value selects CityRef, anything else
// CityName, since the carrier distinguishes the two keys. An optional query
// narrows the list by text search.
func (c *Client) GetWarehouses(ctx context.Context, city, query string) (*Response[Warehouse], error) {
	props := WarehouseProperties{FindByString: query}
	if city != "" {
		if isRef(city) {
			props.CityRef = city
		} else {
			props.CityName = city
		}
	}
	return call[Warehouse](ctx, c, ModelAddress, "getWarehouses", props)
}

// isRef reports whether s looks like a carrier reference id (UUID-shaped).
func isRef(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// SearchCounterparties searches the account's counterparties of one role.
// The property is required; the query may be empty to list all.
func (c *Client) SearchCounterparties(ctx context.Context, query string, property CounterpartyProperty) (*Response[Counterparty], error) {
	if property == "" {
		return nil, errors.New("novapost: counterparty property is required")
	}
	return call[Counterparty](ctx, c, ModelCounterparty, "getCounterparties", CounterpartySearchProperties{
		FindByString:         query,
		CounterpartyProperty: string(property),
	})
}

// GetCounterpartyContactPersons lists the contact persons of one counterparty.
func (c *Client) GetCounterpartyContactPersons(ctx context.Context, counterpartyRef string) (*Response[ContactPerson], error) {
	return call[ContactPerson](ctx, c, ModelCounterparty, "getCounterpartyContactPersons", ContactPersonListProperties{Ref: counterpartyRef})
}

// CounterpartySpec are the fields for creating a private-person counterparty.
type CounterpartySpec struct {
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Email      string
	Property   CounterpartyProperty
}

// CreateCounterparty registers a private-person counterparty. The response
// record embeds the created contact person as a nested envelope.
func (c *Client) CreateCounterparty(ctx context.Context, spec CounterpartySpec) (*Response[Counterparty], error) {
	c.logger.Info("Creating counterparty",
		zap.String("property", string(spec.Property)),
	)
	return call[Counterparty](ctx, c, ModelCounterparty, "save", CounterpartyCreateProperties{
		FirstName:            spec.FirstName,
		MiddleName:           spec.MiddleName,
		LastName:             spec.LastName,
		Phone:                spec.Phone,
		Email:                spec.Email,
		CounterpartyType:     "PrivatePerson",
		CounterpartyProperty: string(spec.Property),
	})
}

// ContactPersonSpec are the fields for creating a contact person.
type ContactPersonSpec struct {
	CounterpartyRef string
	FirstName       string
	MiddleName      string
	LastName        string
	Phone           string
}

// CreateContactPerson attaches a contact person to a counterparty.
// Usually unnecessary: CreateCounterparty already embeds one.
func (c *Client) CreateContactPerson(ctx context.Context, spec ContactPersonSpec) (*Response[ContactPerson], error) {
	return call[ContactPerson](ctx, c, ModelContact, "save", ContactPersonCreateProperties{
		CounterpartyRef: spec.CounterpartyRef,
		FirstName:       spec.FirstName,
		MiddleName:      spec.MiddleName,
		LastName:        spec.LastName,
		Phone:           spec.Phone,
	})
}

// StreetAddress is a door-delivery target.
type StreetAddress struct {
	Street string
	House  string
	Flat   string
}

// RecipientTarget is the delivery target of a document: exactly one of a
// warehouse number (within the recipient city), a resolved pochtomat
// reference, or a street address.
type RecipientTarget struct {
	WarehouseNumber string
	PochtomatRef    string
	Street          *StreetAddress
}

func (t RecipientTarget) validate() error {
	count := 0
	if t.WarehouseNumber != "" {
		count++
	}
	if t.PochtomatRef != "" {
		count++
	}
	if t.Street != nil {
		count++
	}
	if count != 1 {
		return ErrNoRecipientTarget
	}
	return nil
}

// DocumentSpec are the fields for creating a shipment document. All reference
// ids must already be resolved; Dispatch does that resolution from
// human-facing inputs.
type DocumentSpec struct {
	PayerType     PayerType
	PaymentMethod PaymentMethod
	CargoType     CargoType
	ServiceType   ServiceType
	Weight        float64
	SeatsAmount   int
	Description   string
	Cost          int

	CitySender    string
	Sender        string
	SenderAddress string
	ContactSender string
	SendersPhone  string

	RecipientCityName string
	RecipientTarget   RecipientTarget
	RecipientName     string
	RecipientsPhone   string

	Date             time.Time
	Seats            []Seat // optional per-seat dimensions
	BackwardDelivery []BackwardDelivery
}

// CreateDocument creates a shipment document (TTN). The recipient target kind
// decides which address properties are populated; the rest stay empty as the
// carrier expects. Not idempotent: the carrier may create a duplicate document
// on retry.
func (c *Client) CreateDocument(ctx context.Context, spec *DocumentSpec) (*Response[CreatedDocument], error) {
	if err := spec.RecipientTarget.validate(); err != nil {
		return nil, err
	}

	props := DocumentProperties{
		NewAddress:           "1",
		PayerType:            string(spec.PayerType),
		PaymentMethod:        string(spec.PaymentMethod),
		CargoType:            string(spec.CargoType),
		Weight:               formatFloat(spec.Weight),
		ServiceType:          string(spec.ServiceType),
		SeatsAmount:          strconv.Itoa(spec.SeatsAmount),
		Description:          spec.Description,
		Cost:                 strconv.Itoa(spec.Cost),
		CitySender:           spec.CitySender,
		Sender:               spec.Sender,
		SenderAddress:        spec.SenderAddress,
		ContactSender:        spec.ContactSender,
		SendersPhone:         spec.SendersPhone,
		RecipientCityName:    spec.RecipientCityName,
		RecipientName:        spec.RecipientName,
		RecipientType:        "PrivatePerson",
		RecipientsPhone:      spec.RecipientsPhone,
		DateTime:             FormatDate(spec.Date),
		BackwardDeliveryData: spec.BackwardDelivery,
	}

	switch target := spec.RecipientTarget; {
	case target.WarehouseNumber != "":
		props.RecipientAddressName = target.WarehouseNumber
	case target.PochtomatRef != "":
		props.RecipientAddress = target.PochtomatRef
	case target.Street != nil:
		props.RecipientAddressName = target.Street.Street
		props.RecipientHouse = target.Street.House
		props.RecipientFlat = target.Street.Flat
	}

	for _, seat := range spec.Seats {
		props.OptionsSeat = append(props.OptionsSeat, seat.toOptionsSeat())
	}

	c.logger.Info("Creating shipment document",
		zap.String("recipient_city", spec.RecipientCityName),
		zap.String("service_type", string(spec.ServiceType)),
		zap.Int("seats", spec.SeatsAmount),
	)

	return call[CreatedDocument](ctx, c, ModelDocument, "save", props)
}

// DeleteDocuments deletes shipment documents by reference.
func (c *Client) DeleteDocuments(ctx context.Context, documentRefs []string) (*Response[DeletedDocument], error) {
	c.logger.Info("Deleting shipment documents", zap.Int("count", len(documentRefs)))
	return call[DeletedDocument](ctx, c, ModelDocument, "delete", DocumentDeleteProperties{DocumentRefs: documentRefs})
}

// ListDocuments lists the account's documents created within the date range.
func (c *Client) ListDocuments(ctx context.Context, from, to time.Time, page int) (*Response[DocumentListItem], error) {
	props := DocumentListProperties{
		DateTimeFrom: FormatDate(from),
		DateTimeTo:   FormatDate(to),
	}
	if page > 0 {
		props.Page = strconv.Itoa(page)
	}
	return call[DocumentListItem](ctx, c, ModelDocument, "getDocumentList", props)
}

// PriceSpec are the fields for a delivery price estimate. RedeliveryAmount,
// when positive, adds cash-on-delivery collection to the estimate.
type PriceSpec struct {
	CitySender       string
	CityRecipient    string
	Weight           float64
	ServiceType      ServiceType
	Cost             int
	CargoType        CargoType
	SeatsAmount      int
	Date             *time.Time
	RedeliveryAmount int
}

// GetDocumentPrice estimates the delivery cost of a prospective shipment.
func (c *Client) GetDocumentPrice(ctx context.Context, spec PriceSpec) (*Response[DocumentPrice], error) {
	props := PriceProperties{
		CitySender:    spec.CitySender,
		CityRecipient: spec.CityRecipient,
		Weight:        formatFloat(spec.Weight),
		ServiceType:   string(spec.ServiceType),
		Cost:          strconv.Itoa(spec.Cost),
		CargoType:     string(spec.CargoType),
		SeatsAmount:   strconv.Itoa(spec.SeatsAmount),
	}
	if spec.Date != nil {
		props.DateTime = FormatDate(*spec.Date)
	}
	if spec.RedeliveryAmount > 0 {
		props.RedeliveryCalculate = &RedeliveryCalculate{
			CargoType: BackwardCargoMoney,
			Amount:    strconv.Itoa(spec.RedeliveryAmount),
		}
	}
	return call[DocumentPrice](ctx, c, ModelDocument, "getDocumentPrice", props)
}

// GetDocumentDeliveryDate estimates the delivery date for a send date and route.
func (c *Client) GetDocumentDeliveryDate(ctx context.Context, sendDate time.Time, serviceType ServiceType, citySenderRef, cityRecipientRef string) (*Response[EstimatedDate], error) {
	return call[EstimatedDate](ctx, c, ModelDocument, "getDocumentDeliveryDate", DeliveryDateProperties{
		DateTime:      FormatDate(sendDate),
		ServiceType:   string(serviceType),
		CitySender:    citySenderRef,
		CityRecipient: cityRecipientRef,
	})
}

// TrackDocuments fetches the status of up to 100 documents in one call.
func (c *Client) TrackDocuments(ctx context.Context, documents []DocumentNumber) (*Response[TrackingStatus], error) {
	return call[TrackingStatus](ctx, c, ModelTracking, "getStatusDocuments", TrackingProperties{Documents: documents})
}

// InsertScanSheetDocuments batches documents onto a scan sheet. An empty
// sheetRef opens a new sheet.
func (c *Client) InsertScanSheetDocuments(ctx context.Context, documentRefs []string, sheetRef string) (*Response[ScanSheet], error) {
	return call[ScanSheet](ctx, c, ModelScanSheet, "insertDocuments", ScanSheetInsertProperties{
		DocumentRefs: documentRefs,
		Ref:          sheetRef,
	})
}

// DeleteScanSheets deletes scan sheets by reference; their documents return
// to the unbatched pool.
func (c *Client) DeleteScanSheets(ctx context.Context, scanSheetRefs []string) (*Response[ScanSheetDeleted], error) {
	return call[ScanSheetDeleted](ctx, c, ModelScanSheet, "deleteScanSheet", ScanSheetRefsProperties{ScanSheetRefs: scanSheetRefs})
}

// RemoveScanSheetDocuments removes documents from their scan sheets.
func (c *Client) RemoveScanSheetDocuments(ctx context.Context, documentRefs []string) (*Response[RemovedDocument], error) {
	return call[RemovedDocument](ctx, c, ModelScanSheet, "removeDocuments", ScanSheetRefsProperties{DocumentRefs: documentRefs})
}

// ListScanSheets lists the account's scan sheets.
func (c *Client) ListScanSheets(ctx context.Context) (*Response[ScanSheetListItem], error) {
	return call[ScanSheetListItem](ctx, c, ModelScanSheet, "getScanSheetList", EmptyProperties{})
}

// PrintScanSheet fetches the printable scan sheet document via the printFull
// protocol variant. The result is the raw document bytes, not JSON.
func (c *Client) PrintScanSheet(ctx context.Context, scanSheetRef string) ([]byte, error) {
	c.logger.Info("Printing scan sheet", zap.String("scan_sheet_ref", scanSheetRef))
	return c.api.PrintScanSheet(ctx, NewPrintRequest(scanSheetRef))
}

// GetCargoTypes lists the carrier's cargo type directory.
func (c *Client) GetCargoTypes(ctx context.Context) (*Response[DirectoryEntry], error) {
	return call[DirectoryEntry](ctx, c, ModelCommon, "getCargoTypes", EmptyProperties{})
}

// GetServiceTypes lists the carrier's service type directory.
func (c *Client) GetServiceTypes(ctx context.Context) (*Response[DirectoryEntry], error) {
	return call[DirectoryEntry](ctx, c, ModelCommon, "getServiceTypes", EmptyProperties{})
}

// GetTypesOfPayers lists the carrier's payer type directory.
func (c *Client) GetTypesOfPayers(ctx context.Context) (*Response[DirectoryEntry], error) {
	return call[DirectoryEntry](ctx, c, ModelCommon, "getTypesOfPayers", EmptyProperties{})
}

// DocumentPrintURL returns the URL of the printable waybill for one or more
// document references. Pure string formatting, no network call.
func (c *Client) DocumentPrintURL(documentRefs ...string) string {
	var b strings.Builder
	b.WriteString("https://my.novaposhta.ua/orders/printDocument")
	for _, ref := range documentRefs {
		b.WriteString("/orders[]/")
		b.WriteString(ref)
	}
	b.WriteString("/type/pdf/apiKey/")
	b.WriteString(c.config.APIKey)
	return b.String()
}
