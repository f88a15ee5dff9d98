package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/utils"
)

// YearStatisticsParams defines query parameters for the statistics endpoint.
type YearStatisticsParams struct {
	Top int `form:"top,default=5" binding:"min=0,max=50"`
}

// ClientRevenueResponse is one entry of the top clients ranking.
type ClientRevenueResponse struct {
	ClientID   string `json:"clientID"`
	ClientName string `json:"clientName"`
	Revenue    string `json:"revenue"`
}

// YearStatisticsResponse defines the data returned for yearly statistics.
type YearStatisticsResponse struct {
	Year           int                          `json:"year"`
	MonthlyRevenue []string                     `json:"monthlyRevenue"`
	TotalRevenue   string                       `json:"totalRevenue"`
	Outstanding    string                       `json:"outstanding"`
	Overdue        string                       `json:"overdue"`
	CountByStatus  map[domain.InvoiceStatus]int `json:"countByStatus"`
	TopClients     []ClientRevenueResponse      `json:"topClients"`
}

// ToYearStatisticsResponse converts domain.YearStatistics to its DTO
func ToYearStatisticsResponse(s *domain.YearStatistics) YearStatisticsResponse {
	monthly := make([]string, len(s.MonthlyRevenue))
	for i, m := range s.MonthlyRevenue {
		monthly[i] = utils.FormatAmount(m)
	}
	top := make([]ClientRevenueResponse, len(s.TopClients))
	for i, c := range s.TopClients {
		top[i] = ClientRevenueResponse{ClientID: c.ClientID, ClientName: c.ClientName, Revenue: utils.FormatAmount(c.Revenue)}
	}
	return YearStatisticsResponse{
		Year:           s.Year,
		MonthlyRevenue: monthly,
		TotalRevenue:   utils.FormatAmount(s.TotalRevenue),
		Outstanding:    utils.FormatAmount(s.Outstanding),
		Overdue:        utils.FormatAmount(s.Overdue),
		CountByStatus:  s.CountByStatus,
		TopClients:     top,
	}
}
