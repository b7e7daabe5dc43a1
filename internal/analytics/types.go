// bizpulse/internal/analytics/types.go

// Package analytics turns raw customer and deal snapshots into the
// derived views the dashboard renders: KPI scalars, monthly revenue
// series, a payment-status distribution, a per-customer performance
// ranking and a prioritized list of overdue accounts. Every function is
// a pure computation over the snapshot it is given; nothing here talks
// to the database or keeps state between calls.
package analytics

// CustomerRecord is the slice of a customer the engine cares about.
type CustomerRecord struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DealRecord is a deal as it arrives from the API boundary. Amount and
// DueDate stay in their serialized form on purpose: the backend stores
// amounts as decimals and dates as date-only strings, and the engine is
// the place where malformed values get caught and degraded instead of
// crashing a render.
type DealRecord struct {
	ID           string `json:"id"`
	CustomerID   uint   `json:"customerId"` // 0 when the customer reference is gone
	CustomerName string `json:"customerName"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`  // decimal string, e.g. "1500.00"
	DueDate      string `json:"dueDate"` // YYYY-MM-DD
	Status       string `json:"status"`  // Pending | Paid
}

// KPISet is the four scalar metrics shown on the dashboard cards.
type KPISet struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingValue    float64 `json:"pendingValue"`
	ConversionRate  float64 `json:"conversionRate"`
	ActiveCustomers int     `json:"activeCustomers"`
}

// TimeBucket is one calendar-month point of a chart series.
type TimeBucket struct {
	Label     string  `json:"bucketLabel"`
	Revenue   float64 `json:"revenue"`
	DealCount int     `json:"dealCount"`
}

// StatusSlice is one slice of the payment-status pie chart.
type StatusSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CustomerStats is one row of the customer performance ranking.
type CustomerStats struct {
	CustomerID     uint    `json:"customerId"`
	CustomerName   string  `json:"customerName"`
	TotalValue     float64 `json:"totalValue"`
	DealCount      int     `json:"dealCount"`
	ConversionRate float64 `json:"conversionRate"`
	AvgDealSize    float64 `json:"avgDealSize"`
}

// PriorityAccount is a pending deal that is past its due date.
type PriorityAccount struct {
	DealID       string  `json:"dealId"`
	CustomerID   uint    `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	DaysOverdue  int     `json:"daysOverdue"`
}

// SizeBand is one bar of the deal-size distribution chart.
type SizeBand struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// QuickStats are the secondary ratio cards of the analytics view.
type QuickStats struct {
	PaymentSuccessRate float64 `json:"paymentSuccessRate"`
	AvgPendingDeal     float64 `json:"avgPendingDeal"`
	RevenuePerCustomer float64 `json:"revenuePerCustomer"`
}

// Report is the full bundle consumed by the presentation layer.
type Report struct {
	KPIs               KPISet            `json:"kpis"`
	TimeSeries         []TimeBucket      `json:"timeSeries"`
	GrowthSeries       []TimeBucket      `json:"growthSeries"`
	StatusDistribution []StatusSlice     `json:"statusDistribution"`
	CustomerRanking    []CustomerStats   `json:"customerRanking"`
	PriorityAccounts   []PriorityAccount `json:"priorityAccounts"`
	DealSizeBands      []SizeBand        `json:"dealSizeDistribution"`
	QuickStats         QuickStats        `json:"quickStats"`
}
