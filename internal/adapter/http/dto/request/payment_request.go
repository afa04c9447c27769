package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PaymentInitiationRequest is the payload for POST /create-mobile-money-payment.
//
// `amount` is accepted as a JSON string ("50.00") or number (50) because
// client SDKs disagree on which one they send; FlexAmount normalizes both to
// the textual form the usecase validates.

type PaymentInitiationRequest struct {
	FromPayer string     `json:"from_payer"`
	Amount    FlexAmount `json:"amount"`
}

// PaymentVerificationRequest is the payload for POST /verify-mobile-money-payment.
type PaymentVerificationRequest struct {
	TransactionID string `json:"transaction_id"`
}

func (r PaymentVerificationRequest) ResolveTransactionID() string {
	return strings.TrimSpace(r.TransactionID)
}

// FlexAmount carries an amount that may arrive as a JSON string or number.
type FlexAmount string

func (a *FlexAmount) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*a = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*a = FlexAmount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*a = FlexAmount(n.String())
	return nil
}

func (a FlexAmount) String() string {
	return string(a)
}
