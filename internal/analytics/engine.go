// bizpulse/internal/analytics/engine.go
package analytics

import "time"

// growthSeriesMonths caps the analytics growth chart at the most recent
// calendar-month buckets present in the data.
const growthSeriesMonths = 6

// BuildReport runs the full aggregation pipeline over one snapshot.
// It is deterministic for a fixed now: running it twice over the same
// snapshot yields an identical report.
func BuildReport(customers []CustomerRecord, deals []DealRecord, now time.Time) Report {
	parsed := normalizeDeals(deals)

	return Report{
		KPIs:               computeKPIs(customers, parsed),
		TimeSeries:         bucketByMonth(parsed),
		GrowthSeries:       bucketByMonthYear(parsed, growthSeriesMonths),
		StatusDistribution: statusDistribution(parsed, now),
		CustomerRanking:    rankCustomers(customers, parsed),
		PriorityAccounts:   priorityAccounts(parsed, now),
		DealSizeBands:      dealSizeDistribution(parsed),
		QuickStats:         quickStats(customers, parsed),
	}
}

// computeKPIs reduces the deal collection into the four headline
// metrics. Pending includes overdue deals, since overdue is a derived
// subtype of Pending rather than a stored status.
func computeKPIs(customers []CustomerRecord, deals []parsedDeal) KPISet {
	var kpis KPISet
	kpis.ActiveCustomers = len(customers)

	paidCount := 0
	for _, d := range deals {
		switch {
		case d.paid:
			kpis.TotalRevenue += d.amount
			paidCount++
		case d.pending:
			kpis.PendingValue += d.amount
		}
	}
	if len(deals) > 0 {
		kpis.ConversionRate = float64(paidCount) / float64(len(deals)) * 100
	}
	return kpis
}

// quickStats are the secondary ratio cards. Every division is guarded
// so empty collections produce zeros, never NaN.
func quickStats(customers []CustomerRecord, deals []parsedDeal) QuickStats {
	var stats QuickStats

	paidCount, pendingCount := 0, 0
	var revenue, pendingValue float64
	for _, d := range deals {
		switch {
		case d.paid:
			revenue += d.amount
			paidCount++
		case d.pending:
			pendingValue += d.amount
			pendingCount++
		}
	}

	if len(deals) > 0 {
		stats.PaymentSuccessRate = float64(paidCount) / float64(len(deals)) * 100
	}
	if pendingCount > 0 {
		stats.AvgPendingDeal = pendingValue / float64(pendingCount)
	}
	if len(customers) > 0 {
		stats.RevenuePerCustomer = revenue / float64(len(customers))
	}
	return stats
}
