package novapost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecordedCall is one transport invocation captured by the mock. Properties
// holds the marshaled outbound property set, so tests can assert the exact
// property map an operation builds.
type RecordedCall struct {
	Model      string
	Method     string
	Properties json.RawMessage
}

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCall           func(ctx context.Context, model, method string, props any) (*Envelope, error)
	OnPrintScanSheet func(ctx context.Context, req *PrintRequest) ([]byte, error)

	mu    sync.Mutex
	calls []RecordedCall
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Calls returns every invocation recorded so far.
func (m *MockAPIClient) Calls() []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of recorded invocations.
func (m *MockAPIClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *MockAPIClient) record(model, method string, props any) {
	raw, err := json.Marshal(props)
	if err != nil {
		raw = json.RawMessage(fmt.Sprintf("%q", err.Error()))
	}
	m.mu.Lock()
	m.calls = append(m.calls, RecordedCall{Model: model, Method: method, Properties: raw})
	m.mu.Unlock()
}

// Call records the invocation and returns canned data for the (model, method)
// pair unless a hook overrides it.
func (m *MockAPIClient) Call(ctx context.Context, model, method string, props any) (*Envelope, error) {
	m.record(model, method, props)

	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &TransportError{Op: model + "." + method, Cause: errors.New("simulated transport error")}
	}

	if m.OnCall != nil {
		return m.OnCall(ctx, model, method, props)
	}

	return m.defaultEnvelope(model, method), nil
}

// PrintScanSheet records the invocation and returns mock document bytes.
func (m *MockAPIClient) PrintScanSheet(ctx context.Context, req *PrintRequest) ([]byte, error) {
	m.record(req.ModelName, req.CalledMethod, req.MethodProperties)

	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &TransportError{Op: req.ModelName + "." + req.CalledMethod, Cause: errors.New("simulated transport error")}
	}

	if m.OnPrintScanSheet != nil {
		return m.OnPrintScanSheet(ctx, req)
	}

	return []byte("%PDF-1.4 mock scan sheet"), nil
}

func (m *MockAPIClient) defaultEnvelope(model, method string) *Envelope {
	key := model + "." + method
	switch key {
	case "AddressGeneral.getCities":
		return successEnvelope(
			City{Ref: "8d5a980d-391c-11dd-90d9-001a92567626", Description: "Київ", Area: "Київська"},
			City{Ref: "db5c88e0-391c-11dd-90d9-001a92567626", Description: "Харків", Area: "Харківська"},
		)
	case "AddressGeneral.getWarehouses":
		return successEnvelope(
			Warehouse{
				Ref:             "wh-" + uuid.New().String()[:8],
				Number:          "1",
				ShortAddress:    "Київ, вул. Пирогівський шлях, 135",
				CityRef:         "8d5a980d-391c-11dd-90d9-001a92567626",
				CityDescription: "Київ",
			},
			Warehouse{
				Ref:             "wh-" + uuid.New().String()[:8],
				Number:          "2",
				ShortAddress:    "Київ, вул. Богатирська, 11",
				CityRef:         "8d5a980d-391c-11dd-90d9-001a92567626",
				CityDescription: "Київ",
			},
		)
	case "Counterparty.getCounterparties", "Counterparty.save":
		return successEnvelope(Counterparty{
			Ref:         "cp-" + uuid.New().String()[:8],
			Description: "Тестовий Відправник",
			FirstName:   "Тестовий",
			LastName:    "Відправник",
		})
	case "Counterparty.getCounterpartyContactPersons", "ContactPerson.save":
		return successEnvelope(ContactPerson{
			Ref:         "ct-" + uuid.New().String()[:8],
			Description: "Тестовий Відправник",
			Phones:      "380501234567",
		})
	case "InternetDocument.save":
		return successEnvelope(CreatedDocument{
			IntDocNumber:          fmt.Sprintf("%d", 20450000000000+time.Now().UnixNano()%10000000),
			Ref:                   "doc-" + uuid.New().String()[:8],
			CostOnSite:            70,
			EstimatedDeliveryDate: time.Now().AddDate(0, 0, 2).Format("02.01.2006"),
		})
	case "InternetDocument.delete":
		return successEnvelope(DeletedDocument{Ref: "doc-" + uuid.New().String()[:8]})
	case "InternetDocument.getDocumentList":
		return successEnvelope(DocumentListItem{
			Ref:          "doc-" + uuid.New().String()[:8],
			IntDocNumber: "20450000000001",
			StateName:    "Нова Пошта прийняла відправлення",
		})
	case "InternetDocument.getDocumentPrice":
		return successEnvelope(DocumentPrice{Cost: 70, CostRedelivery: 20, AssessedCost: 150})
	case "InternetDocument.getDocumentDeliveryDate":
		return successEnvelope(EstimatedDate{DeliveryDate: DateValue{
			Date:     time.Now().AddDate(0, 0, 2).Format("2006-01-02 15:04:05"),
			Timezone: "Europe/Kiev",
		}})
	case "TrackingDocument.getStatusDocuments":
		return successEnvelope(TrackingStatus{
			Number:     "20450000000001",
			Status:     "Відправлення прямує до міста одержувача",
			StatusCode: "5",
		})
	case "ScanSheet.insertDocuments":
		return successEnvelope(ScanSheet{
			Ref:    "sheet-" + uuid.New().String()[:8],
			Number: "105-00001",
			Date:   time.Now().Format("2006-01-02 15:04:05"),
		})
	case "ScanSheet.deleteScanSheet":
		return successEnvelope(ScanSheetDeleted{ScanSheetRefsDelete: DeletedScanSheet{
			Ref:    "sheet-" + uuid.New().String()[:8],
			Number: "105-00001",
		}})
	case "ScanSheet.removeDocuments":
		return successEnvelope(RemovedDocument{Ref: "doc-" + uuid.New().String()[:8], Number: "20450000000001"})
	case "ScanSheet.getScanSheetList":
		return successEnvelope(ScanSheetListItem{
			Ref:      "sheet-" + uuid.New().String()[:8],
			Number:   "105-00001",
			DateTime: time.Now().Format("2006-01-02 15:04:05"),
			Printed:  "0",
		})
	case "Common.getCargoTypes", "Common.getServiceTypes", "Common.getTypesOfPayers":
		return successEnvelope(
			DirectoryEntry{Ref: "Parcel", Description: "Посилка"},
			DirectoryEntry{Ref: "Documents", Description: "Документи"},
		)
	default:
		return &Envelope{Success: true}
	}
}

// successEnvelope wraps records in a success wire envelope the way the real
// carrier would return them.
func successEnvelope[T any](records ...T) *Envelope {
	data := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		raw, err := json.Marshal(r)
		if err != nil {
			panic(err)
		}
		data = append(data, raw)
	}
	return &Envelope{Success: true, Data: data, Errors: []any{}, Warnings: []any{}}
}

var _ APIClient = (*MockAPIClient)(nil)
