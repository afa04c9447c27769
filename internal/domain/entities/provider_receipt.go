package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnexpectedProviderResponse marks responses the provider contract does not
// allow: a non-JSON body, an undecodable envelope, or a transport failure that
// left no envelope at all. Surfaced to callers as an internal error.
var ErrUnexpectedProviderResponse = errors.New("unexpected provider response")

// ProviderReceipt is the normalized outcome of one provider call.
//
// MoneyUnify payload:
//   - DataRaw keeps the original `data` object (JSON) untouched so callers see
//     exactly what the provider said (transaction_id, status, ...).
//   - Data is the parsed representation used to build the response envelope.

type ProviderReceipt struct {
	Message string
	DataRaw json.RawMessage
	Data    map[string]interface{}
}

// ProviderDeclinedError carries a business rejection reported by the provider
// (isError flag set or a non-success HTTP status on payment initiation). The
// provider's own message is preserved for passthrough to the caller.
type ProviderDeclinedError struct {
	Message string
}

func (e *ProviderDeclinedError) Error() string {
	return fmt.Sprintf("provider declined: %s", e.Message)
}
