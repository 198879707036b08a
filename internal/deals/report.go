package deals

import (
	"sort"
	"strings"

	"foodexchange-admin/internal/models"
)

// ProfitPoint is one shared date on the buying/selling chart
type ProfitPoint struct {
	Date          string  `json:"date"`
	BuyingCost    float64 `json:"buyingCost"`
	SellingProfit float64 `json:"sellingProfit"`
	NetProfit     float64 `json:"netProfit"`
}

// ProfitReport is the merged chart plus its totals. Averages are per
// dated point.
type ProfitReport struct {
	Points             []ProfitPoint `json:"points"`
	TotalBuyingCost    float64       `json:"totalBuyingCost"`
	TotalSellingProfit float64       `json:"totalSellingProfit"`
	TotalNetProfit     float64       `json:"totalNetProfit"`
	AvgBuyingCost      float64       `json:"avgBuyingCost"`
	AvgSellingProfit   float64       `json:"avgSellingProfit"`
}

// BuildProfitReport merges buying costs and selling profits by shared
// date. Entries without a date are dropped; points come out oldest first.
func BuildProfitReport(buying []models.BuyingCost, selling []models.SellingProfit) ProfitReport {
	byDate := make(map[string]*ProfitPoint)
	point := func(date *string) *ProfitPoint {
		if date == nil || strings.TrimSpace(*date) == "" {
			return nil
		}
		p, ok := byDate[*date]
		if !ok {
			p = &ProfitPoint{Date: *date}
			byDate[*date] = p
		}
		return p
	}

	for _, b := range buying {
		if p := point(b.PostSharedDate); p != nil {
			p.BuyingCost += b.TotalCost
		}
	}
	for _, s := range selling {
		if p := point(s.PostSharedDate); p != nil {
			p.SellingProfit += s.TotalProfit
		}
	}

	r := ProfitReport{Points: make([]ProfitPoint, 0, len(byDate))}
	for _, p := range byDate {
		p.NetProfit = p.SellingProfit - p.BuyingCost
		r.Points = append(r.Points, *p)
		r.TotalBuyingCost += p.BuyingCost
		r.TotalSellingProfit += p.SellingProfit
	}
	sort.Slice(r.Points, func(i, j int) bool { return dateBefore(r.Points[i].Date, r.Points[j].Date) })

	r.TotalNetProfit = r.TotalSellingProfit - r.TotalBuyingCost
	if n := float64(len(r.Points)); n > 0 {
		r.AvgBuyingCost = r.TotalBuyingCost / n
		r.AvgSellingProfit = r.TotalSellingProfit / n
	}
	return r
}

// dateBefore orders parseable dates chronologically ahead of anything
// unparseable, which falls back to string order
func dateBefore(a, b string) bool {
	ta, errA := models.ParseLocalTime(a)
	tb, errB := models.ParseLocalTime(b)
	switch {
	case errA == nil && errB == nil:
		if !ta.Equal(tb.Time) {
			return ta.Before(tb.Time)
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
