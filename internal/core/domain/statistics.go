package domain

import "github.com/shopspring/decimal"

// ClientRevenue is the paid revenue attributed to one client.
type ClientRevenue struct {
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// YearStatistics summarises invoicing activity for one calendar year.
type YearStatistics struct {
	Year           int                   `json:"year"`
	MonthlyRevenue [12]decimal.Decimal   `json:"monthlyRevenue"` // index 0 is January
	TotalRevenue   decimal.Decimal       `json:"totalRevenue"`
	Outstanding    decimal.Decimal       `json:"outstanding"`
	Overdue        decimal.Decimal       `json:"overdue"`
	CountByStatus  map[InvoiceStatus]int `json:"countByStatus"`
	TopClients     []ClientRevenue       `json:"topClients"`
}
