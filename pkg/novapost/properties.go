package novapost

import "strconv"

// Per-operation outbound property sets. Each operation owns its struct, so a
// call can never pick up stale fields meant for another method. Field names
// match the carrier's property keys exactly; values the carrier types as
// strings stay strings here.

// CityProperties is the property set for AddressGeneral getCities.
type CityProperties struct {
	FindByString string `json:"FindByString,omitempty"`
	Page         string `json:"Page,omitempty"`
	Limit        string `json:"Limit,omitempty"`
}

// WarehouseProperties is the property set for AddressGeneral getWarehouses.
// Exactly one of CityRef and CityName is set per call.
type WarehouseProperties struct {
	CityRef      string `json:"CityRef,omitempty"`
	CityName     string `json:"CityName,omitempty"`
	FindByString string `json:"FindByString,omitempty"`
	Page         string `json:"Page,omitempty"`
	Limit        string `json:"Limit,omitempty"`
}

// CounterpartySearchProperties is the property set for Counterparty getCounterparties.
type CounterpartySearchProperties struct {
	FindByString         string `json:"FindByString,omitempty"`
	CounterpartyProperty string `json:"CounterpartyProperty"`
	Page                 string `json:"Page,omitempty"`
}

// ContactPersonListProperties is the property set for Counterparty getCounterpartyContactPersons.
type ContactPersonListProperties struct {
	Ref  string `json:"Ref"`
	Page string `json:"Page,omitempty"`
}

// CounterpartyCreateProperties is the property set for Counterparty save.
type CounterpartyCreateProperties struct {
	FirstName            string `json:"FirstName"`
	MiddleName           string `json:"MiddleName,omitempty"`
	LastName             string `json:"LastName"`
	Phone                string `json:"Phone"`
	Email                string `json:"Email,omitempty"`
	CounterpartyType     string `json:"CounterpartyType"`
	CounterpartyProperty string `json:"CounterpartyProperty"`
}

// ContactPersonCreateProperties is the property set for ContactPerson save.
type ContactPersonCreateProperties struct {
	CounterpartyRef string `json:"CounterpartyRef"`
	FirstName       string `json:"FirstName"`
	MiddleName      string `json:"MiddleName"`
	LastName        string `json:"LastName"`
	Phone           string `json:"Phone"`
}

// DocumentProperties is the property set for InternetDocument save, the most
// property-heavy call. The recipient target fields are populated by exactly
// one address kind; the carrier expects the unused ones empty.
type DocumentProperties struct {
	NewAddress           string             `json:"NewAddress"`
	PayerType            string             `json:"PayerType"`
	PaymentMethod        string             `json:"PaymentMethod"`
	CargoType            string             `json:"CargoType"`
	Weight               string             `json:"Weight"`
	ServiceType          string             `json:"ServiceType"`
	SeatsAmount          string             `json:"SeatsAmount"`
	Description          string             `json:"Description"`
	Cost                 string             `json:"Cost"`
	CitySender           string             `json:"CitySender"`
	Sender               string             `json:"Sender"`
	SenderAddress        string             `json:"SenderAddress"`
	ContactSender        string             `json:"ContactSender"`
	SendersPhone         string             `json:"SendersPhone"`
	RecipientCityName    string             `json:"RecipientCityName"`
	RecipientArea        string             `json:"RecipientArea"`
	RecipientAreaRegions string             `json:"RecipientAreaRegions"`
	RecipientAddress     string             `json:"RecipientAddress,omitempty"`
	RecipientAddressName string             `json:"RecipientAddressName"`
	RecipientHouse       string             `json:"RecipientHouse"`
	RecipientFlat        string             `json:"RecipientFlat"`
	RecipientName        string             `json:"RecipientName"`
	RecipientType        string             `json:"RecipientType"`
	RecipientsPhone      string             `json:"RecipientsPhone"`
	DateTime             string             `json:"DateTime"`
	OptionsSeat          []OptionsSeat      `json:"OptionsSeat,omitempty"`
	BackwardDeliveryData []BackwardDelivery `json:"BackwardDeliveryData,omitempty"`
}

// OptionsSeat describes one seat's dimensions for InternetDocument save.
type OptionsSeat struct {
	VolumetricVolume string `json:"volumetricVolume"`
	VolumetricWidth  string `json:"volumetricWidth"`
	VolumetricLength string `json:"volumetricLength"`
	VolumetricHeight string `json:"volumetricHeight"`
	Weight           string `json:"weight"`
}

// BackwardDelivery instructs the carrier to collect cash on delivery and
// redeliver it to the sender. Attached only when the cash-on-delivery
// amount is positive.
type BackwardDelivery struct {
	PayerType        string `json:"PayerType"`
	CargoType        string `json:"CargoType"`
	RedeliveryString string `json:"RedeliveryString"`
}

// BackwardDeliveryMoney builds the standard money-collection instruction.
func BackwardDeliveryMoney(amount int) []BackwardDelivery {
	return []BackwardDelivery{{
		PayerType:        string(PayerRecipient),
		CargoType:        BackwardCargoMoney,
		RedeliveryString: strconv.Itoa(amount),
	}}
}

// DocumentDeleteProperties is the property set for InternetDocument delete.
type DocumentDeleteProperties struct {
	DocumentRefs []string `json:"DocumentRefs"`
}

// DocumentListProperties is the property set for InternetDocument getDocumentList.
type DocumentListProperties struct {
	DateTimeFrom string `json:"DateTimeFrom,omitempty"`
	DateTimeTo   string `json:"DateTimeTo,omitempty"`
	Page         string `json:"Page,omitempty"`
	GetFullList  string `json:"GetFullList,omitempty"`
}

// PriceProperties is the property set for InternetDocument getDocumentPrice.
type PriceProperties struct {
	CitySender          string               `json:"CitySender"`
	CityRecipient       string               `json:"CityRecipient"`
	Weight              string               `json:"Weight"`
	ServiceType         string               `json:"ServiceType"`
	Cost                string               `json:"Cost"`
	CargoType           string               `json:"CargoType"`
	SeatsAmount         string               `json:"SeatsAmount"`
	DateTime            string               `json:"DateTime,omitempty"`
	RedeliveryCalculate *RedeliveryCalculate `json:"RedeliveryCalculate,omitempty"`
}

// RedeliveryCalculate adds cash-on-delivery collection to a price estimate.
type RedeliveryCalculate struct {
	CargoType string `json:"CargoType"`
	Amount    string `json:"Amount"`
}

// DeliveryDateProperties is the property set for InternetDocument getDocumentDeliveryDate.
type DeliveryDateProperties struct {
	DateTime      string `json:"DateTime"`
	ServiceType   string `json:"ServiceType"`
	CitySender    string `json:"CitySender"`
	CityRecipient string `json:"CityRecipient"`
}

// DocumentNumber identifies one tracked document; Phone unlocks the extended
// status fields.
type DocumentNumber struct {
	DocumentNumber string `json:"DocumentNumber"`
	Phone          string `json:"Phone,omitempty"`
}

// TrackingProperties is the property set for TrackingDocument getStatusDocuments.
type TrackingProperties struct {
	Documents []DocumentNumber `json:"Documents"`
}

// ScanSheetInsertProperties is the property set for ScanSheet insertDocuments.
// Ref, when set, adds documents to an existing sheet instead of opening a new one.
type ScanSheetInsertProperties struct {
	DocumentRefs []string `json:"DocumentRefs"`
	Ref          string   `json:"Ref,omitempty"`
}

// ScanSheetRefsProperties is the property set for ScanSheet deleteScanSheet
// and removeDocuments.
type ScanSheetRefsProperties struct {
	ScanSheetRefs []string `json:"ScanSheetRefs,omitempty"`
	DocumentRefs  []string `json:"DocumentRefs,omitempty"`
}

// EmptyProperties is the property set for parameterless directory methods.
type EmptyProperties struct{}
