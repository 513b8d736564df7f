package creditledger

import (
	"errors"
	"fmt"

	"importfacil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidDownPaymentPercent = errors.New("invalid down payment percent")

// InsufficientCreditError rejects an import whose financed portion exceeds the
// credit line's remaining capacity. Shortfall carries the computed gap for the
// caller to render.
type InsufficientCreditError struct {
	FinancedAmount  float64
	AvailableCredit float64
	Shortfall       float64
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: financed %.2f exceeds available %.2f by %.2f",
		e.FinancedAmount, e.AvailableCredit, e.Shortfall)
}

// FinancedAmount is the portion of the import value not covered by the down
// payment.
func FinancedAmount(importValueBRL, downPaymentPercent float64) (float64, error) {
	if downPaymentPercent < 0 || downPaymentPercent > 100 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDownPaymentPercent, downPaymentPercent)
	}
	value := decimal.NewFromFloat(importValueBRL)
	retained := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(downPaymentPercent).Div(decimal.NewFromInt(100)))
	return value.Mul(retained).Round(2).InexactFloat64(), nil
}

// Validate accepts when the financed amount fits the remaining credit,
// comparing cent-exact: equality passes, a single cent over fails. It does not
// reserve credit; that is the calling layer's write.
func Validate(financedAmount float64, snapshot entities.CreditSnapshot) error {
	financed := decimal.NewFromFloat(financedAmount)
	available := decimal.NewFromFloat(snapshot.AvailableCredit())

	if financed.GreaterThan(available) {
		return &InsufficientCreditError{
			FinancedAmount:  financedAmount,
			AvailableCredit: snapshot.AvailableCredit(),
			Shortfall:       financed.Sub(available).Round(2).InexactFloat64(),
		}
	}
	return nil
}
