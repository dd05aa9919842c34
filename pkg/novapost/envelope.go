package novapost

import (
	"encoding/json"
	"fmt"
)

// Request is the outbound wire envelope shared by every API method.
type Request struct {
	CalledMethod     string `json:"calledMethod"`
	ModelName        string `json:"modelName"`
	MethodProperties any    `json:"methodProperties"`
	APIKey           string `json:"apiKey"`
}

// Envelope is the generic inbound wire envelope. Data stays raw until the
// operation that issued the call decodes each element into its result record.
// Data is always a sequence, even for single-record operations.
type Envelope struct {
	Success  bool              `json:"success"`
	Data     []json.RawMessage `json:"data"`
	Errors   []any             `json:"errors"`
	Warnings []any             `json:"warnings"`
}

// Response is a decoded envelope carrying the operation's typed records.
type Response[T any] struct {
	Data     []T
	Errors   []any
	Warnings []any
}

// decodeResponse decodes every element of the envelope's data into T.
// success=false yields a CarrierError without attempting a typed decode.
// A decode failure for any element fails the whole call: the carrier's
// inconsistent field typing makes partial results untrustworthy.
func decodeResponse[T any](model, method string, env *Envelope) (*Response[T], error) {
	if !env.Success {
		return nil, &CarrierError{Model: model, Method: method, Errors: env.Errors}
	}

	out := &Response[T]{
		Data:     make([]T, 0, len(env.Data)),
		Errors:   env.Errors,
		Warnings: env.Warnings,
	}
	for i, raw := range env.Data {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decoding %s.%s data[%d]: %w", model, method, i, err)
		}
		out.Data = append(out.Data, record)
	}
	return out, nil
}

// First returns the first record, or an ErrEmptyResult-wrapped error carrying
// the envelope's error list when the carrier answered with no records.
func (r *Response[T]) First() (T, error) {
	if len(r.Data) == 0 {
		var zero T
		return zero, fmt.Errorf("%w (carrier errors: %v)", ErrEmptyResult, r.Errors)
	}
	return r.Data[0], nil
}
