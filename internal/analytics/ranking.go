// bizpulse/internal/analytics/ranking.go
package analytics

import (
	"sort"
	"time"
)

// rankCustomers computes per-customer performance metrics and returns
// the full list sorted by total deal value, highest first. Ties keep
// the input order (stable sort). Deals whose customer reference does
// not resolve to a customer in the snapshot are left out of the ranking
// but still count toward the global KPIs and distributions. Truncation
// to a top-N list is a presentation concern, not done here.
func rankCustomers(customers []CustomerRecord, deals []parsedDeal) []CustomerStats {
	byCustomer := make(map[uint][]parsedDeal, len(customers))
	for _, d := range deals {
		if d.CustomerID == 0 {
			continue
		}
		byCustomer[d.CustomerID] = append(byCustomer[d.CustomerID], d)
	}

	ranking := make([]CustomerStats, 0, len(customers))
	for _, c := range customers {
		stats := CustomerStats{CustomerID: c.ID, CustomerName: c.Name}

		paidCount := 0
		for _, d := range byCustomer[c.ID] {
			stats.TotalValue += d.amount
			stats.DealCount++
			if d.paid {
				paidCount++
			}
		}
		if stats.DealCount > 0 {
			stats.ConversionRate = float64(paidCount) / float64(stats.DealCount) * 100
			stats.AvgDealSize = stats.TotalValue / float64(stats.DealCount)
		}
		ranking = append(ranking, stats)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalValue > ranking[j].TotalValue
	})
	return ranking
}

// priorityAccounts selects pending deals that are past due and ranks
// them most-overdue first. The UI shows the top few; the engine always
// returns the full list.
func priorityAccounts(deals []parsedDeal, now time.Time) []PriorityAccount {
	accounts := make([]PriorityAccount, 0)
	for _, d := range deals {
		if !d.overdueAt(now) {
			continue
		}
		name := d.CustomerName
		if name == "" {
			name = "Unknown Customer"
		}
		accounts = append(accounts, PriorityAccount{
			DealID:       d.ID,
			CustomerID:   d.CustomerID,
			CustomerName: name,
			Description:  d.Description,
			Amount:       d.amount,
			DaysOverdue:  d.daysPastDue(now),
		})
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].DaysOverdue > accounts[j].DaysOverdue
	})
	return accounts
}
