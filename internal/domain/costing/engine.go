package costing

import (
	"errors"
	"fmt"

	"importfacil/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRate     = errors.New("invalid exchange rate")
	ErrInvalidPercent  = errors.New("invalid declared fob percent")
	ErrInvalidIncoterm = errors.New("invalid incoterm")
	ErrInvalidLineItem = errors.New("invalid cost line item")
)

// Built-in cost stack. Percentages apply to the declared CIF in the entry's
// currency; fixed USD entries are converted at the import's exchange rate when
// summed.
var builtinCosts = []entities.CostLineItem{
	{Name: "import_duty", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 14},
	{Name: "excise_tax", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 15},
	{Name: "social_contribution_pis", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 1.65},
	{Name: "social_contribution_cofins", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 7.6},
	{Name: "state_vat", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 18},

	{Name: "siscomex_fee", Category: entities.CostCategoryFee, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 214.50},
	{Name: "bl_release_fee", Category: entities.CostCategoryFee, Kind: entities.CostKindFixed, Currency: entities.CurrencyUSD, Amount: 150},
	{Name: "terminal_handling", Category: entities.CostCategoryFee, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 985},
	{Name: "deconsolidation_fee", Category: entities.CostCategoryFee, Kind: entities.CostKindFixed, Currency: entities.CurrencyUSD, Amount: 80},

	{Name: "customs_broker", Category: entities.CostCategoryService, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 1500},
	{Name: "exchange_contract", Category: entities.CostCategoryService, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 350},
	{Name: "document_handling", Category: entities.CostCategoryService, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 250},
}

// BuiltinCosts returns a copy of the built-in tax/fee/service stack.
func BuiltinCosts() []entities.CostLineItem {
	out := make([]entities.CostLineItem, len(builtinCosts))
	copy(out, builtinCosts)
	return out
}

var oneHundred = decimal.NewFromInt(100)

// Compute prices an import: FOB total, declared CIF per incoterm, the built-in
// plus custom tax/fee/service stack, and the declared/real total pair.
//
// The real variant re-derives CIF from the undiscounted FOB total but reuses
// the tax/fee/service sums computed from the declared CIF: customs taxes what
// is declared, the supplier is paid what is real.
func Compute(in entities.CostInput) (entities.ImportFinancials, error) {
	if in.USDToBRLRate <= 0 {
		return entities.ImportFinancials{}, fmt.Errorf("%w: %v", ErrInvalidRate, in.USDToBRLRate)
	}
	if in.DeclaredFOBPercent < 1 || in.DeclaredFOBPercent > 100 {
		return entities.ImportFinancials{}, fmt.Errorf("%w: %v", ErrInvalidPercent, in.DeclaredFOBPercent)
	}
	if !in.Incoterm.Valid() {
		return entities.ImportFinancials{}, fmt.Errorf("%w: %q", ErrInvalidIncoterm, in.Incoterm)
	}
	for _, c := range in.CustomCosts {
		if err := validateLineItem(c); err != nil {
			return entities.ImportFinancials{}, err
		}
	}

	rate := decimal.NewFromFloat(in.USDToBRLRate)
	freight := decimal.NewFromFloat(in.InternationalFreightUSD)
	insurance := decimal.NewFromFloat(in.InsuranceUSD)

	fobTotal := decimal.Zero
	for _, li := range in.LineItems {
		fobTotal = fobTotal.Add(decimal.NewFromInt(int64(li.Quantity)).Mul(decimal.NewFromFloat(li.UnitPriceUSD)))
	}
	declaredFOB := fobTotal.Mul(decimal.NewFromFloat(in.DeclaredFOBPercent)).Div(oneHundred)

	// CIF branch on incoterm, applied to the declared FOB.
	var cifUSD decimal.Decimal
	switch in.Incoterm {
	case entities.IncotermCIF:
		cifUSD = declaredFOB
	case entities.IncotermCFR:
		cifUSD = declaredFOB.Add(insurance)
	default: // FOB
		cifUSD = declaredFOB.Add(freight).Add(insurance)
	}
	cifBRL := cifUSD.Mul(rate)

	items := append(BuiltinCosts(), in.CustomCosts...)
	components := make([]entities.CostComponent, 0, len(items))
	totals := map[entities.CostCategory]decimal.Decimal{
		entities.CostCategoryTax:     decimal.Zero,
		entities.CostCategoryFee:     decimal.Zero,
		entities.CostCategoryService: decimal.Zero,
	}

	for _, item := range items {
		valueBRL := evaluate(item, cifUSD, cifBRL, rate).Round(2)
		components = append(components, entities.CostComponent{
			Name:      item.Name,
			Category:  item.Category,
			AmountBRL: valueBRL.InexactFloat64(),
		})
		// import_data entries are informational and never summed.
		if total, ok := totals[item.Category]; ok {
			totals[item.Category] = total.Add(valueBRL)
		}
	}

	taxes := totals[entities.CostCategoryTax]
	fees := totals[entities.CostCategoryFee]
	services := totals[entities.CostCategoryService]

	totalDeclared := cifBRL.Add(taxes).Add(fees).Add(services)

	// The real payment to the supplier is never discounted and always carries
	// freight and insurance, regardless of incoterm.
	realCIFUSD := fobTotal.Add(freight).Add(insurance)
	realCIFBRL := realCIFUSD.Mul(rate)
	totalReal := realCIFBRL.Add(taxes).Add(fees).Add(services)

	return entities.ImportFinancials{
		FOBTotalUSD:      fobTotal.Round(2).InexactFloat64(),
		DeclaredFOBUSD:   declaredFOB.Round(2).InexactFloat64(),
		CIFUSD:           cifUSD.Round(2).InexactFloat64(),
		CIFBRL:           cifBRL.Round(2).InexactFloat64(),
		TaxesTotalBRL:    taxes.Round(2).InexactFloat64(),
		FeesTotalBRL:     fees.Round(2).InexactFloat64(),
		ServicesTotalBRL: services.Round(2).InexactFloat64(),
		TotalDeclaredBRL: totalDeclared.Round(2).InexactFloat64(),
		RealCIFUSD:       realCIFUSD.Round(2).InexactFloat64(),
		RealCIFBRL:       realCIFBRL.Round(2).InexactFloat64(),
		TotalRealBRL:     totalReal.Round(2).InexactFloat64(),
		Components:       components,
	}, nil
}

// evaluate reduces one line item to BRL. Percentage entries apply to the CIF
// base in their own currency; USD values convert at the import's rate.
func evaluate(item entities.CostLineItem, cifUSD, cifBRL, rate decimal.Decimal) decimal.Decimal {
	amount := decimal.NewFromFloat(item.Amount)

	if item.Kind == entities.CostKindPercentage {
		base := cifBRL
		if item.Currency == entities.CurrencyUSD {
			base = cifUSD
		}
		value := base.Mul(amount).Div(oneHundred)
		if item.Currency == entities.CurrencyUSD {
			value = value.Mul(rate)
		}
		return value
	}

	if item.Currency == entities.CurrencyUSD {
		return amount.Mul(rate)
	}
	return amount
}

func validateLineItem(c entities.CostLineItem) error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLineItem)
	}
	if !c.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q for %s", ErrInvalidLineItem, c.Category, c.Name)
	}
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q for %s", ErrInvalidLineItem, c.Kind, c.Name)
	}
	if !c.Currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q for %s", ErrInvalidLineItem, c.Currency, c.Name)
	}
	if c.Amount < 0 {
		return fmt.Errorf("%w: negative amount for %s", ErrInvalidLineItem, c.Name)
	}
	return nil
}
