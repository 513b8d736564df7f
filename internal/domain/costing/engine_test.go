package costing

import (
	"errors"
	"testing"

	"importfacil/internal/domain/entities"
)

func baseInput() entities.CostInput {
	return entities.CostInput{
		LineItems: []entities.PurchaseLineItem{
			{Quantity: 100, UnitPriceUSD: 1000},
		},
		Incoterm:                entities.IncotermFOB,
		InternationalFreightUSD: 5000,
		InsuranceUSD:            1000,
		DeclaredFOBPercent:      100,
		USDToBRLRate:            5.00,
	}
}

func TestCompute_Validations(t *testing.T) {
	t.Run("rate must be positive", func(t *testing.T) {
		in := baseInput()
		in.USDToBRLRate = 0
		if _, err := Compute(in); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
		in.USDToBRLRate = -1
		if _, err := Compute(in); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("declared percent outside 1..100", func(t *testing.T) {
		in := baseInput()
		in.DeclaredFOBPercent = 0
		if _, err := Compute(in); !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
		in.DeclaredFOBPercent = 101
		if _, err := Compute(in); !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
	})

	t.Run("unknown incoterm", func(t *testing.T) {
		in := baseInput()
		in.Incoterm = "EXW"
		if _, err := Compute(in); !errors.Is(err, ErrInvalidIncoterm) {
			t.Fatalf("expected ErrInvalidIncoterm, got %v", err)
		}
	})

	t.Run("custom cost enums are closed", func(t *testing.T) {
		in := baseInput()
		in.CustomCosts = []entities.CostLineItem{
			{Name: "x", Category: "surcharge", Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 1},
		}
		if _, err := Compute(in); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}

		in.CustomCosts = []entities.CostLineItem{
			{Name: "x", Category: entities.CostCategoryFee, Kind: entities.CostKindFixed, Currency: "EUR", Amount: 1},
		}
		if _, err := Compute(in); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("empty line items yields zero totals", func(t *testing.T) {
		in := baseInput()
		in.LineItems = nil
		in.InternationalFreightUSD = 0
		in.InsuranceUSD = 0
		fin, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fin.FOBTotalUSD != 0 || fin.CIFUSD != 0 || fin.CIFBRL != 0 || fin.TaxesTotalBRL != 0 {
			t.Fatalf("expected zero CIF and taxes, got %+v", fin)
		}
		// Fixed fees/services still apply.
		if fin.FeesTotalBRL == 0 || fin.ServicesTotalBRL == 0 {
			t.Fatalf("expected fixed fees/services, got %+v", fin)
		}
	})
}

func TestCompute_FOBIncoterm(t *testing.T) {
	fin, err := Compute(baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fin.FOBTotalUSD != 100000 {
		t.Fatalf("expected FOB 100000, got %v", fin.FOBTotalUSD)
	}
	if fin.CIFUSD != 106000 {
		t.Fatalf("expected CIF USD 106000, got %v", fin.CIFUSD)
	}
	if fin.CIFBRL != 530000 {
		t.Fatalf("expected CIF BRL 530000, got %v", fin.CIFBRL)
	}
	// 530000 x (0.14 + 0.15 + 0.0165 + 0.076 + 0.18) = 530000 x 0.5625
	if fin.TaxesTotalBRL != 298125 {
		t.Fatalf("expected taxes 298125, got %v", fin.TaxesTotalBRL)
	}
	// 214.50 + 150x5 + 985 + 80x5
	if fin.FeesTotalBRL != 2349.50 {
		t.Fatalf("expected fees 2349.50, got %v", fin.FeesTotalBRL)
	}
	if fin.ServicesTotalBRL != 2100 {
		t.Fatalf("expected services 2100, got %v", fin.ServicesTotalBRL)
	}
	wantTotal := 530000 + 298125 + 2349.50 + 2100.0
	if fin.TotalDeclaredBRL != wantTotal {
		t.Fatalf("expected declared total %v, got %v", wantTotal, fin.TotalDeclaredBRL)
	}
	// Declared at 100%: real and declared variants coincide.
	if fin.RealCIFUSD != 106000 || fin.RealCIFBRL != 530000 || fin.TotalRealBRL != wantTotal {
		t.Fatalf("unexpected real variant: %+v", fin)
	}
}

func TestCompute_CIFIncoterm(t *testing.T) {
	in := baseInput()
	in.Incoterm = entities.IncotermCIF
	fin, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Freight and insurance already embedded in the goods price.
	if fin.CIFUSD != 100000 {
		t.Fatalf("expected CIF USD 100000, got %v", fin.CIFUSD)
	}
	// The real payment still carries them.
	if fin.RealCIFUSD != 106000 {
		t.Fatalf("expected real CIF USD 106000, got %v", fin.RealCIFUSD)
	}
}

func TestCompute_CFRIncoterm(t *testing.T) {
	in := baseInput()
	in.Incoterm = entities.IncotermCFR
	fin, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// CFR adds insurance only.
	if fin.CIFUSD != 101000 {
		t.Fatalf("expected CIF USD 101000, got %v", fin.CIFUSD)
	}
}

func TestCompute_DeclaredFraction(t *testing.T) {
	in := baseInput()
	in.DeclaredFOBPercent = 50
	fin, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fin.DeclaredFOBUSD != 50000 {
		t.Fatalf("expected declared FOB 50000, got %v", fin.DeclaredFOBUSD)
	}
	if fin.CIFUSD != 56000 || fin.CIFBRL != 280000 {
		t.Fatalf("unexpected declared CIF: %+v", fin)
	}
	if fin.TaxesTotalBRL != 157500 {
		t.Fatalf("expected taxes 157500, got %v", fin.TaxesTotalBRL)
	}
	// The real variant ignores the declared fraction entirely.
	if fin.RealCIFUSD != 106000 || fin.RealCIFBRL != 530000 {
		t.Fatalf("unexpected real CIF: %+v", fin)
	}
	// Real total reuses the declared tax/fee/service sums.
	wantReal := 530000 + 157500 + 2349.50 + 2100.0
	if fin.TotalRealBRL != wantReal {
		t.Fatalf("expected real total %v, got %v", wantReal, fin.TotalRealBRL)
	}
}

func TestCompute_CustomCosts(t *testing.T) {
	t.Run("percentage bases follow the entry currency", func(t *testing.T) {
		in := baseInput()
		in.CustomCosts = []entities.CostLineItem{
			{Name: "anti_dumping", Category: entities.CostCategoryTax, Kind: entities.CostKindPercentage, Currency: entities.CurrencyBRL, Amount: 10},
			{Name: "origin_surveyor", Category: entities.CostCategoryFee, Kind: entities.CostKindPercentage, Currency: entities.CurrencyUSD, Amount: 1},
		}
		fin, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 10% of CIF BRL 530000.
		if fin.TaxesTotalBRL != 298125+53000 {
			t.Fatalf("expected taxes %v, got %v", 298125+53000, fin.TaxesTotalBRL)
		}
		// 1% of CIF USD 106000 = 1060 USD, converted at 5.00.
		if fin.FeesTotalBRL != 2349.50+5300 {
			t.Fatalf("expected fees %v, got %v", 2349.50+5300, fin.FeesTotalBRL)
		}
	})

	t.Run("fixed usd converts, fixed brl passes through", func(t *testing.T) {
		in := baseInput()
		in.CustomCosts = []entities.CostLineItem{
			{Name: "warehouse", Category: entities.CostCategoryService, Kind: entities.CostKindFixed, Currency: entities.CurrencyUSD, Amount: 200},
			{Name: "trucking", Category: entities.CostCategoryService, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 800},
		}
		fin, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fin.ServicesTotalBRL != 2100+200*5+800 {
			t.Fatalf("expected services %v, got %v", 2100+200*5+800, fin.ServicesTotalBRL)
		}
	})

	t.Run("import_data entries never hit the totals", func(t *testing.T) {
		base, err := Compute(baseInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		in := baseInput()
		in.CustomCosts = []entities.CostLineItem{
			{Name: "import_license", Category: entities.CostCategoryImportData, Kind: entities.CostKindFixed, Currency: entities.CurrencyBRL, Amount: 9999},
		}
		fin, err := Compute(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fin.TotalDeclaredBRL != base.TotalDeclaredBRL || fin.TotalRealBRL != base.TotalRealBRL {
			t.Fatalf("import_data changed totals: %+v vs %+v", fin, base)
		}
		found := false
		for _, c := range fin.Components {
			if c.Name == "import_license" && c.AmountBRL == 9999 {
				found = true
			}
		}
		if !found {
			t.Fatalf("import_data entry missing from breakdown")
		}
	})
}

func TestCompute_ComponentsMatchTotals(t *testing.T) {
	fin, err := Compute(baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sums := map[entities.CostCategory]float64{}
	for _, c := range fin.Components {
		sums[c.Category] += c.AmountBRL
	}
	if sums[entities.CostCategoryTax] != fin.TaxesTotalBRL {
		t.Fatalf("tax components %v != total %v", sums[entities.CostCategoryTax], fin.TaxesTotalBRL)
	}
	if sums[entities.CostCategoryFee] != fin.FeesTotalBRL {
		t.Fatalf("fee components %v != total %v", sums[entities.CostCategoryFee], fin.FeesTotalBRL)
	}
	if sums[entities.CostCategoryService] != fin.ServicesTotalBRL {
		t.Fatalf("service components %v != total %v", sums[entities.CostCategoryService], fin.ServicesTotalBRL)
	}
}
