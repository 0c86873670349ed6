package dto

import "github.com/shopspring/decimal"

// LedgerReportResponse movimientos de una parte a través de los cuatro tipos
// que la referencian.
type LedgerReportResponse struct {
	Sales     []DocumentResponse `json:"sales"`
	Purchases []DocumentResponse `json:"purchases"`
	Receipts  []DocumentResponse `json:"receipts"`
	Payments  []DocumentResponse `json:"payments"`
}

// TrialBalanceResponse totales por tipo de documento de la empresa.
type TrialBalanceResponse struct {
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Receipts  decimal.Decimal `json:"receipts"`
	Payments  decimal.Decimal `json:"payments"`
}

// PartyTotalResponse total acumulado por parte (cobrar/pagar).
type PartyTotalResponse struct {
	PartyName string          `json:"partyName"`
	Total     decimal.Decimal `json:"total"`
}
