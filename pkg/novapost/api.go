package novapost

import (
	"context"
)

// Model names the API groups its methods under.
const (
	ModelAddress      = "AddressGeneral"
	ModelCounterparty = "Counterparty"
	ModelContact      = "ContactPerson"
	ModelDocument     = "InternetDocument"
	ModelTracking     = "TrackingDocument"
	ModelScanSheet    = "ScanSheet"
	ModelCommon       = "Common"
)

// APIClient defines the transport for API operations. This abstraction allows
// for mock implementations during testing and real implementations in
// production. Call covers every method speaking the generic envelope;
// PrintScanSheet covers the printFull protocol variant, which returns the
// printable document bytes instead of JSON.
type APIClient interface {
	Call(ctx context.Context, model, method string, props any) (*Envelope, error)
	PrintScanSheet(ctx context.Context, req *PrintRequest) ([]byte, error)
}

// PrintRequest is the printFull wire shape. It is a distinct request-building
// path: the method name, property keys, and response (a binary stream) all
// differ from the generic envelope.
type PrintRequest struct {
	CalledMethod     string          `json:"calledMethod"`
	ModelName        string          `json:"modelName"`
	MethodProperties PrintProperties `json:"methodProperties"`
	APIKey           string          `json:"apiKey"`
}

// PrintProperties holds the printFull property set.
type PrintProperties struct {
	PrintForm        string   `json:"printForm"`
	ScanSheetRefs    []string `json:"ScanSheetRefs"`
	Type             string   `json:"Type"`
	PrintOrientation string   `json:"PrintOrientation"`
}

// NewPrintRequest builds a printFull request for one scan sheet. The transport
// fills in the API key.
func NewPrintRequest(scanSheetRef string) *PrintRequest {
	return &PrintRequest{
		CalledMethod: "printFull",
		ModelName:    ModelScanSheet,
		MethodProperties: PrintProperties{
			PrintForm:        "ScanSheet",
			ScanSheetRefs:    []string{scanSheetRef},
			Type:             "pdf",
			PrintOrientation: "landscape",
		},
	}
}
