package request

import (
	"errors"
	"strings"

	"importfacil/internal/domain/entities"
)

var (
	ErrNoLineItems     = errors.New("at least one purchase item is required")
	ErrInvalidCurrency = errors.New("invalid currency")
)

type PurchaseItemRequest struct {
	Quantity     int     `json:"quantity" binding:"required"`
	UnitPriceUSD float64 `json:"unit_price_usd" binding:"required"`
}

type CustomCostRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Kind     string  `json:"kind" binding:"required"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount" binding:"required"`
}

// CostSimulationRequest is the pricing payload shared by the simulation
// endpoint and import creation.
type CostSimulationRequest struct {
	Items                   []PurchaseItemRequest `json:"items" binding:"required"`
	Incoterm                string                `json:"incoterm"`
	InternationalFreightUSD float64               `json:"international_freight_usd"`
	InsuranceUSD            float64               `json:"insurance_usd"`
	DeclaredFOBPercent      float64               `json:"declared_fob_percent"`
	USDToBRLRate            float64               `json:"usd_to_brl_rate" binding:"required"`
	CustomCosts             []CustomCostRequest   `json:"custom_costs"`
}

// ResolveCostInput normalizes the payload into the engine's input. Incoterm
// defaults to FOB and an omitted declared percentage means fully declared.
func (r CostSimulationRequest) ResolveCostInput() (entities.CostInput, error) {
	if len(r.Items) == 0 {
		return entities.CostInput{}, ErrNoLineItems
	}

	incoterm := entities.Incoterm(strings.ToUpper(strings.TrimSpace(r.Incoterm)))
	if incoterm == "" {
		incoterm = entities.IncotermFOB
	}

	declared := r.DeclaredFOBPercent
	if declared == 0 {
		declared = 100
	}
	if declared > 100 {
		declared = 100
	}
	if declared < 1 {
		declared = 1
	}

	items := make([]entities.PurchaseLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.PurchaseLineItem{Quantity: it.Quantity, UnitPriceUSD: it.UnitPriceUSD})
	}

	custom := make([]entities.CostLineItem, 0, len(r.CustomCosts))
	for _, cc := range r.CustomCosts {
		currency := entities.Currency(strings.ToUpper(strings.TrimSpace(cc.Currency)))
		if currency == "" {
			currency = entities.CurrencyBRL
		}
		if !currency.Valid() {
			return entities.CostInput{}, ErrInvalidCurrency
		}
		custom = append(custom, entities.CostLineItem{
			Name:     strings.TrimSpace(cc.Name),
			Category: entities.CostCategory(strings.ToLower(strings.TrimSpace(cc.Category))),
			Kind:     entities.CostKind(strings.ToLower(strings.TrimSpace(cc.Kind))),
			Currency: currency,
			Amount:   cc.Amount,
		})
	}

	return entities.CostInput{
		LineItems:               items,
		Incoterm:                incoterm,
		InternationalFreightUSD: r.InternationalFreightUSD,
		InsuranceUSD:            r.InsuranceUSD,
		DeclaredFOBPercent:      declared,
		USDToBRLRate:            r.USDToBRLRate,
		CustomCosts:             custom,
	}, nil
}
