package entities

// CreditSnapshot is the approved credit line state read before an import is
// allowed to draw against it. Serializing credit checks per credit line is the
// calling layer's responsibility (see the credit repository's conditional
// reservation).

type CreditSnapshot struct {
	ClientID           string  `json:"client_id"`
	ApprovedLimit      float64 `json:"approved_limit"`
	UsedAmount         float64 `json:"used_amount"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	AdminFeePercent    float64 `json:"admin_fee_percent"`
}

// AvailableCredit is approved limit minus used amount, clamped at zero.
func (s CreditSnapshot) AvailableCredit() float64 {
	available := s.ApprovedLimit - s.UsedAmount
	if available < 0 {
		return 0
	}
	return available
}
