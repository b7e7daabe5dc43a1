// bizpulse/internal/analytics/buckets.go
package analytics

import (
	"sort"
	"time"
)

// bucketByMonth groups deals into calendar-month buckets labeled by the
// short month name ("Jan", "Feb", ...). The same month from different
// years merges into one bucket, matching the overview chart the
// dashboard has always shown. Output is ordered by calendar month, not
// by input order, since the snapshot arrives unsorted. Deals without a
// valid due date are excluded entirely.
func bucketByMonth(deals []parsedDeal) []TimeBucket {
	buckets := make(map[time.Month]*TimeBucket)
	for _, d := range deals {
		if !d.hasDue {
			continue
		}
		month := d.due.Month()
		b, ok := buckets[month]
		if !ok {
			b = &TimeBucket{Label: d.due.Format("Jan")}
			buckets[month] = b
		}
		if d.paid {
			b.Revenue += d.amount
		}
		b.DealCount++
	}

	months := make([]time.Month, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	series := make([]TimeBucket, 0, len(months))
	for _, m := range months {
		series = append(series, *buckets[m])
	}
	return series
}

// bucketByMonthYear builds the growth series for the analytics view:
// month+year labels, chronological, truncated to the most recent lastN
// buckets present in the data.
func bucketByMonthYear(deals []parsedDeal, lastN int) []TimeBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[monthKey]*TimeBucket)
	for _, d := range deals {
		if !d.hasDue {
			continue
		}
		key := monthKey{d.due.Year(), d.due.Month()}
		b, ok := buckets[key]
		if !ok {
			b = &TimeBucket{Label: d.due.Format("Jan 2006")}
			buckets[key] = b
		}
		if d.paid {
			b.Revenue += d.amount
		}
		b.DealCount++
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	if lastN > 0 && len(keys) > lastN {
		keys = keys[len(keys)-lastN:]
	}

	series := make([]TimeBucket, 0, len(keys))
	for _, k := range keys {
		series = append(series, *buckets[k])
	}
	return series
}

// statusDistribution partitions deals for the status pie chart.
//
// The Pending slice is the total pending count, so deals that are also
// counted as Overdue appear in both slices and the three counts can sum
// to more than the number of deals. The dashboard has always rendered
// it this way; keep the shape until product decides otherwise.
func statusDistribution(deals []parsedDeal, now time.Time) []StatusSlice {
	var paid, pending, overdue int
	for _, d := range deals {
		switch {
		case d.paid:
			paid++
		case d.pending:
			pending++
		}
		if d.overdueAt(now) {
			overdue++
		}
	}
	return []StatusSlice{
		{Label: "Paid", Count: paid},
		{Label: "Pending", Count: pending},
		{Label: "Overdue", Count: overdue},
	}
}

// dealSizeBands are the fixed amount ranges of the deal-size chart.
var dealSizeBands = []struct {
	label string
	max   float64 // inclusive upper bound, 0 means unbounded
}{
	{"0-10k", 10000},
	{"10k-50k", 50000},
	{"50k-100k", 100000},
	{"100k+", 0},
}

func dealSizeDistribution(deals []parsedDeal) []SizeBand {
	bands := make([]SizeBand, len(dealSizeBands))
	for i, b := range dealSizeBands {
		bands[i].Range = b.label
	}
	for _, d := range deals {
		for i, b := range dealSizeBands {
			if b.max == 0 || d.amount <= b.max {
				bands[i].Count++
				break
			}
		}
	}
	return bands
}
