package entities

// Closed enums for cost line items. Unknown values are rejected at the
// boundary instead of being silently defaulted.

type CostCategory string

const (
	CostCategoryTax        CostCategory = "tax"
	CostCategoryFee        CostCategory = "fee"
	CostCategoryService    CostCategory = "service"
	CostCategoryImportData CostCategory = "import_data"
)

func (c CostCategory) Valid() bool {
	switch c {
	case CostCategoryTax, CostCategoryFee, CostCategoryService, CostCategoryImportData:
		return true
	}
	return false
}

type CostKind string

const (
	CostKindFixed      CostKind = "fixed"
	CostKindPercentage CostKind = "percentage"
)

func (k CostKind) Valid() bool {
	return k == CostKindFixed || k == CostKindPercentage
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
)

func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyBRL
}

type Incoterm string

const (
	IncotermFOB Incoterm = "FOB"
	IncotermCFR Incoterm = "CFR"
	IncotermCIF Incoterm = "CIF"
)

func (i Incoterm) Valid() bool {
	switch i {
	case IncotermFOB, IncotermCFR, IncotermCIF:
		return true
	}
	return false
}

// CostLineItem is a tax, fee or service applied to an import. Built-in items
// are fixed at catalog load; user-added items are appended at runtime with the
// same shape.
//
// For fixed items Amount is an absolute value in Currency. For percentage
// items Amount is a rate applied to the CIF base in Currency (CIF USD for USD
// entries, CIF BRL otherwise).

type CostLineItem struct {
	Name     string       `json:"name"`
	Category CostCategory `json:"category"`
	Kind     CostKind     `json:"kind"`
	Currency Currency     `json:"currency"`
	Amount   float64      `json:"amount"`
}

// PurchaseLineItem is one purchased FOB line.

type PurchaseLineItem struct {
	Quantity     int     `json:"quantity"`
	UnitPriceUSD float64 `json:"unit_price_usd"`
}

// CostInput is everything the cost engine needs to price an import.

type CostInput struct {
	LineItems               []PurchaseLineItem `json:"line_items"`
	Incoterm                Incoterm           `json:"incoterm"`
	InternationalFreightUSD float64            `json:"international_freight_usd"`
	InsuranceUSD            float64            `json:"insurance_usd"`
	DeclaredFOBPercent      float64            `json:"declared_fob_percent"`
	USDToBRLRate            float64            `json:"usd_to_brl_rate"`
	CustomCosts             []CostLineItem     `json:"custom_costs"`
}

// CostComponent is one evaluated line of the breakdown, already reduced to BRL.

type CostComponent struct {
	Name      string       `json:"name"`
	Category  CostCategory `json:"category"`
	AmountBRL float64      `json:"amount_brl"`
}

// ImportFinancials is the full cost breakdown, recomputed on demand and never
// persisted as source of truth.
//
// Declared vs real: customs taxes the declared CIF (the declared fraction of
// the FOB value); the supplier is paid the real, undiscounted value. Taxes,
// fees and services stay pegged to the declared CIF base in both variants.

type ImportFinancials struct {
	FOBTotalUSD      float64         `json:"fob_total_usd"`
	DeclaredFOBUSD   float64         `json:"declared_fob_usd"`
	CIFUSD           float64         `json:"cif_usd"`
	CIFBRL           float64         `json:"cif_brl"`
	TaxesTotalBRL    float64         `json:"taxes_total_brl"`
	FeesTotalBRL     float64         `json:"fees_total_brl"`
	ServicesTotalBRL float64         `json:"services_total_brl"`
	TotalDeclaredBRL float64         `json:"total_declared_brl"`
	RealCIFUSD       float64         `json:"real_cif_usd"`
	RealCIFBRL       float64         `json:"real_cif_brl"`
	TotalRealBRL     float64         `json:"total_real_brl"`
	Components       []CostComponent `json:"components"`
}
