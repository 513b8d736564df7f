package response

import "importfacil/internal/domain/entities"

type CostComponentResponse struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	AmountBRL float64 `json:"amount_brl"`
}

type FinancialsResponse struct {
	FOBTotalUSD      float64                 `json:"fob_total_usd"`
	DeclaredFOBUSD   float64                 `json:"declared_fob_usd"`
	CIFUSD           float64                 `json:"cif_usd"`
	CIFBRL           float64                 `json:"cif_brl"`
	TaxesTotalBRL    float64                 `json:"taxes_total_brl"`
	FeesTotalBRL     float64                 `json:"fees_total_brl"`
	ServicesTotalBRL float64                 `json:"services_total_brl"`
	TotalDeclaredBRL float64                 `json:"total_declared_brl"`
	RealCIFUSD       float64                 `json:"real_cif_usd"`
	RealCIFBRL       float64                 `json:"real_cif_brl"`
	TotalRealBRL     float64                 `json:"total_real_brl"`
	Components       []CostComponentResponse `json:"components"`
}

func FromFinancials(f entities.ImportFinancials) FinancialsResponse {
	components := make([]CostComponentResponse, 0, len(f.Components))
	for _, c := range f.Components {
		components = append(components, CostComponentResponse{
			Name:      c.Name,
			Category:  string(c.Category),
			AmountBRL: c.AmountBRL,
		})
	}
	return FinancialsResponse{
		FOBTotalUSD:      f.FOBTotalUSD,
		DeclaredFOBUSD:   f.DeclaredFOBUSD,
		CIFUSD:           f.CIFUSD,
		CIFBRL:           f.CIFBRL,
		TaxesTotalBRL:    f.TaxesTotalBRL,
		FeesTotalBRL:     f.FeesTotalBRL,
		ServicesTotalBRL: f.ServicesTotalBRL,
		TotalDeclaredBRL: f.TotalDeclaredBRL,
		RealCIFUSD:       f.RealCIFUSD,
		RealCIFBRL:       f.RealCIFBRL,
		TotalRealBRL:     f.TotalRealBRL,
		Components:       components,
	}
}
