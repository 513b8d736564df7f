package response

import (
	"importfacil/internal/domain/creditledger"
	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase"
)

type CreditResponse struct {
	ClientID           string  `json:"client_id"`
	ApprovedLimit      float64 `json:"approved_limit"`
	UsedAmount         float64 `json:"used_amount"`
	AvailableCredit    float64 `json:"available_credit"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	AdminFeePercent    float64 `json:"admin_fee_percent"`
}

func FromCreditSnapshot(s entities.CreditSnapshot) CreditResponse {
	return CreditResponse{
		ClientID:           s.ClientID,
		ApprovedLimit:      s.ApprovedLimit,
		UsedAmount:         s.UsedAmount,
		AvailableCredit:    s.AvailableCredit(),
		DownPaymentPercent: s.DownPaymentPercent,
		AdminFeePercent:    s.AdminFeePercent,
	}
}

type CreditDecisionResponse struct {
	Approved        bool    `json:"approved"`
	ClientID        string  `json:"client_id"`
	ImportValueBRL  float64 `json:"import_value_brl"`
	FinancedAmount  float64 `json:"financed_amount_brl"`
	AvailableCredit float64 `json:"available_credit"`
}

func FromCreditDecision(d usecase.CreditDecision) CreditDecisionResponse {
	return CreditDecisionResponse{
		Approved:        true,
		ClientID:        d.ClientID,
		ImportValueBRL:  d.ImportValueBRL,
		FinancedAmount:  d.FinancedAmount,
		AvailableCredit: d.AvailableCredit,
	}
}

// CreditRejectionResponse is returned with 409 when the financed amount does
// not fit the client's remaining credit.
type CreditRejectionResponse struct {
	Code            string  `json:"code"`
	Approved        bool    `json:"approved"`
	ClientID        string  `json:"client_id"`
	ImportValueBRL  float64 `json:"import_value_brl"`
	FinancedAmount  float64 `json:"financed_amount_brl"`
	AvailableCredit float64 `json:"available_credit"`
	ShortfallBRL    float64 `json:"shortfall_brl"`
}

func FromInsufficientCredit(clientID string, importValueBRL float64, err *creditledger.InsufficientCreditError) CreditRejectionResponse {
	return CreditRejectionResponse{
		Code:            "INSUFFICIENT_CREDIT",
		ClientID:        clientID,
		ImportValueBRL:  importValueBRL,
		FinancedAmount:  err.FinancedAmount,
		AvailableCredit: err.AvailableCredit,
		ShortfallBRL:    err.Shortfall,
	}
}
