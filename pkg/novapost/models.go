package novapost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// ServiceType selects the delivery legs of a shipment.
type ServiceType string

const (
	ServiceWarehouseWarehouse ServiceType = "WarehouseWarehouse"
	ServiceWarehouseDoors     ServiceType = "WarehouseDoors"
	ServiceDoorsWarehouse     ServiceType = "DoorsWarehouse"
	ServiceDoorsDoors         ServiceType = "DoorsDoors"
)

// PayerType names the party paying for delivery.
type PayerType string

const (
	PayerSender    PayerType = "Sender"
	PayerRecipient PayerType = "Recipient"
)

// PaymentMethod names how the payer settles.
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentNonCash PaymentMethod = "NonCash"
)

// CargoType describes the shipment contents.
type CargoType string

const (
	CargoParcel    CargoType = "Parcel"
	CargoDocuments CargoType = "Documents"
)

// BackwardCargoMoney is the backward-delivery cargo type for cash collection.
const BackwardCargoMoney = "Money"

// CounterpartyProperty scopes a counterparty search to one role.
type CounterpartyProperty string

const (
	CounterpartySender    CounterpartyProperty = "Sender"
	CounterpartyRecipient CounterpartyProperty = "Recipient"
)

// Int decodes a carrier numeric field that arrives as either a JSON number or
// a string-typed number. The documentation promises integers; the responses
// do not always agree. An unparseable value fails the decode of the whole
// record, which fails the whole call.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	var num int
	if err := json.Unmarshal(b, &num); err == nil {
		*n = Int(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("numeric field: %s", b)
	}
	if strings.TrimSpace(s) == "" {
		*n = 0
		return nil
	}
	num, err := cast.ToIntE(s)
	if err != nil {
		return fmt.Errorf("numeric field %q: %w", s, err)
	}
	*n = Int(num)
	return nil
}

// Float is the floating-point counterpart of Int.
type Float float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	var num float64
	if err := json.Unmarshal(b, &num); err == nil {
		*f = Float(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("numeric field: %s", b)
	}
	if strings.TrimSpace(s) == "" {
		*f = 0
		return nil
	}
	num, err := cast.ToFloat64E(s)
	if err != nil {
		return fmt.Errorf("numeric field %q: %w", s, err)
	}
	*f = Float(num)
	return nil
}

// Result records, one per operation. The carrier's schema is not formally
// guaranteed: every field it may omit decodes to its zero value and never
// aborts decoding.

// City is one AddressGeneral getCities record.
type City struct {
	Ref            string `json:"Ref"`
	Description    string `json:"Description"`
	DescriptionRu  string `json:"DescriptionRu"`
	Area           string `json:"Area"`
	SettlementType string `json:"SettlementTypeDescription"`
	CityID         string `json:"CityID"`
}

// Warehouse is one AddressGeneral getWarehouses record. Pochtomats are
// warehouses with their own type description in this schema.
type Warehouse struct {
	Ref                   string `json:"Ref"`
	Description           string `json:"Description"`
	ShortAddress          string `json:"ShortAddress"`
	Number                string `json:"Number"`
	CityRef               string `json:"CityRef"`
	CityDescription       string `json:"CityDescription"`
	Phone                 string `json:"Phone"`
	TypeOfWarehouse       string `json:"TypeOfWarehouse"`
	Longitude             Float  `json:"Longitude"`
	Latitude              Float  `json:"Latitude"`
	PlaceMaxWeightAllowed Float  `json:"PlaceMaxWeightAllowed"`
	TotalMaxWeightAllowed Float  `json:"TotalMaxWeightAllowed"`
}

// Counterparty is one Counterparty record. For Counterparty save responses
// the created contact person arrives as a nested envelope on the record.
type Counterparty struct {
	Ref              string                 `json:"Ref"`
	Description      string                 `json:"Description"`
	FirstName        string                 `json:"FirstName"`
	MiddleName       string                 `json:"MiddleName"`
	LastName         string                 `json:"LastName"`
	Phones           string                 `json:"Phones"`
	EDRPOU           string                 `json:"EDRPOU"`
	CounterpartyType string                 `json:"CounterpartyType"`
	ContactPerson    *ContactPersonEnvelope `json:"ContactPerson,omitempty"`
}

// ContactPersonEnvelope is the envelope Counterparty save nests under the
// created record.
type ContactPersonEnvelope struct {
	Success bool            `json:"success"`
	Data    []ContactPerson `json:"data"`
	Errors  []any           `json:"errors"`
}

// First returns the embedded contact person.
func (e *ContactPersonEnvelope) First() (ContactPerson, error) {
	if e == nil || len(e.Data) == 0 {
		return ContactPerson{}, fmt.Errorf("%w (embedded contact person)", ErrEmptyResult)
	}
	return e.Data[0], nil
}

// ContactPerson is one Counterparty getCounterpartyContactPersons record.
type ContactPerson struct {
	Ref         string `json:"Ref"`
	Description string `json:"Description"`
	FirstName   string `json:"FirstName"`
	MiddleName  string `json:"MiddleName"`
	LastName    string `json:"LastName"`
	Phones      string `json:"Phones"`
}

// CreatedDocument is the InternetDocument save record: the carrier-assigned
// waybill. Never mutated by this client after creation.
type CreatedDocument struct {
	IntDocNumber          string `json:"IntDocNumber"`
	Ref                   string `json:"Ref"`
	CostOnSite            Int    `json:"CostOnSite"`
	EstimatedDeliveryDate string `json:"EstimatedDeliveryDate"`
	TypeDocument          string `json:"TypeDocument"`
}

// DeletedDocument is one InternetDocument delete record.
type DeletedDocument struct {
	Ref string `json:"Ref"`
}

// DocumentListItem is one InternetDocument getDocumentList record.
type DocumentListItem struct {
	Ref                      string `json:"Ref"`
	IntDocNumber             string `json:"IntDocNumber"`
	CitySenderDescription    string `json:"CitySenderDescription"`
	CityRecipientDescription string `json:"CityRecipientDescription"`
	Cost                     Float  `json:"Cost"`
	CostOnSite               Float  `json:"CostOnSite"`
	CreateTime               string `json:"CreateTime"`
	EstimatedDeliveryDate    string `json:"EstimatedDeliveryDate"`
	StateName                string `json:"StateName"`
	RecipientContactPhone    string `json:"RecipientContactPhone"`
}

// DocumentPrice is the InternetDocument getDocumentPrice record.
type DocumentPrice struct {
	Cost           Int `json:"Cost"`
	CostRedelivery Int `json:"CostRedelivery"`
	AssessedCost   Int `json:"AssessedCost"`
}

// EstimatedDate is the InternetDocument getDocumentDeliveryDate record.
type EstimatedDate struct {
	DeliveryDate DateValue `json:"DeliveryDate"`
}

// DateValue is the carrier's nested date object.
type DateValue struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`
}

// TrackingStatus is one TrackingDocument getStatusDocuments record. Most
// fields appear only when the matching phone number was supplied.
type TrackingStatus struct {
	Number                   string `json:"Number"`
	Status                   string `json:"Status"`
	StatusCode               string `json:"StatusCode"`
	DateCreated              string `json:"DateCreated"`
	ScheduledDeliveryDate    string `json:"ScheduledDeliveryDate"`
	RecipientDateTime        string `json:"RecipientDateTime"`
	DocumentWeight           Float  `json:"DocumentWeight"`
	CheckWeight              Float  `json:"CheckWeight"`
	DocumentCost             Float  `json:"DocumentCost"`
	AmountToPay              Float  `json:"AmountToPay"`
	AmountPaid               Float  `json:"AmountPaid"`
	RedeliverySum            Int    `json:"RedeliverySum"`
	PayerType                string `json:"PayerType"`
	PaymentMethod            string `json:"PaymentMethod"`
	CargoType                string `json:"CargoType"`
	CargoDescriptionString   string `json:"CargoDescriptionString"`
	ServiceType              string `json:"ServiceType"`
	CitySender               string `json:"CitySender"`
	CityRecipient            string `json:"CityRecipient"`
	WarehouseRecipient       string `json:"WarehouseRecipient"`
	WarehouseRecipientNumber Int    `json:"WarehouseRecipientNumber"`
	RecipientFullName        string `json:"RecipientFullName"`
	RecipientAddress         string `json:"RecipientAddress"`
	PhoneRecipient           string `json:"PhoneRecipient"`
	UndeliveryReasons        string `json:"UndeliveryReasons"`
}

// ScanSheet is the ScanSheet insertDocuments record.
type ScanSheet struct {
	Ref    string `json:"Ref"`
	Number string `json:"Number"`
	Date   string `json:"Date"`
}

// ScanSheetListItem is one ScanSheet getScanSheetList record.
type ScanSheetListItem struct {
	Ref      string `json:"Ref"`
	Number   string `json:"Number"`
	DateTime string `json:"DateTime"`
	Printed  string `json:"Printed"`
}

// ScanSheetDeleted is one ScanSheet deleteScanSheet record; per-sheet failures
// come back inline rather than as envelope errors.
type ScanSheetDeleted struct {
	ScanSheetRefsDelete DeletedScanSheet `json:"ScanSheetRefsDelete"`
}

// DeletedScanSheet identifies one deleted sheet.
type DeletedScanSheet struct {
	Ref    string `json:"Ref"`
	Number string `json:"Number"`
	Error  string `json:"Error"`
}

// RemovedDocument is one ScanSheet removeDocuments record.
type RemovedDocument struct {
	Ref    string `json:"Ref"`
	Number string `json:"Number"`
	Error  string `json:"Error"`
}

// DirectoryEntry is one Common get* reference record.
type DirectoryEntry struct {
	Ref         string `json:"Ref"`
	Description string `json:"Description"`
}
