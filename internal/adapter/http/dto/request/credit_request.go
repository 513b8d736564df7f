package request

import "strings"

// CreditValidationRequest asks whether an import of the given value fits the
// client's remaining credit.
type CreditValidationRequest struct {
	ClientID       string  `json:"client_id" binding:"required"`
	ImportValueBRL float64 `json:"import_value_brl" binding:"required"`
}

func (r CreditValidationRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}
