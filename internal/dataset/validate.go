package dataset

import (
	"encoding/json"
	"errors"
	"fmt"

	"investment-dashboard/internal/model"
)

// ErrUnexpectedShape means the payload parsed as JSON but is missing the
// result.records nesting. No partial extraction is attempted.
var ErrUnexpectedShape = errors.New("unexpected response structure")

// ErrNoRecords means the shape was correct but the record set is empty.
// Distinct from ErrUnexpectedShape so "no data" is never reported as "bad
// response".
var ErrNoRecords = errors.New("response contains no records")

// DecodeError means the payload is not valid JSON at all.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("payload is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Validate parses a raw datastore payload and extracts the record sequence.
// Exactly one of four outcomes occurs: *DecodeError, ErrUnexpectedShape,
// ErrNoRecords, or the records unchanged with order preserved. Per-record
// validation is deliberately left to the normalization step.
func Validate(payload []byte) ([]model.RawRecord, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil {
		if !json.Valid(payload) {
			return nil, &DecodeError{Err: err}
		}
		// Valid JSON, but not an object.
		return nil, ErrUnexpectedShape
	}

	resultRaw, ok := root["result"]
	if !ok {
		return nil, ErrUnexpectedShape
	}

	var result map[string]json.RawMessage
	if err := json.Unmarshal(resultRaw, &result); err != nil {
		return nil, ErrUnexpectedShape
	}

	recordsRaw, ok := result["records"]
	if !ok {
		return nil, ErrUnexpectedShape
	}

	var records []model.RawRecord
	if err := json.Unmarshal(recordsRaw, &records); err != nil {
		return nil, ErrUnexpectedShape
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}
