package analytics

import "sort"

// ProductDemand is the unit volume sold for one product.
type ProductDemand struct {
	ProductID string
	Units     int
}

// SpenderTotal is the total spend of one customer. Name is resolved from the
// customer collection when the id matches a record.
type SpenderTotal struct {
	CustomerID string
	Name       string
	TotalSpent float64
}

// CustomerValue is the lifetime value of one customer: cumulative spend and
// transaction count across all history.
type CustomerValue struct {
	CustomerID    string
	Name          string
	LifetimeSpend float64
	TxCount       int
}

// TopProducts ranks products by total quantity sold across all line items,
// descending. A non-positive limit falls back to DefaultTopProductsLimit.
func (d *Dataset) TopProducts(limit int) []ProductDemand {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	units := make(map[string]int)
	var order []string
	for _, tx := range d.Transactions {
		for _, item := range tx.Items {
			if _, seen := units[item.ProductID]; !seen {
				order = append(order, item.ProductID)
			}
			units[item.ProductID] += item.Qty
		}
	}

	ranked := make([]ProductDemand, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, ProductDemand{ProductID: id, Units: units[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Units > ranked[j].Units
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopSpenders ranks customers by total transaction value, descending. A
// non-positive limit returns the full ranking.
func (d *Dataset) TopSpenders(limit int) []SpenderTotal {
	totals := make(map[string]float64)
	var order []string
	for _, tx := range d.Transactions {
		if _, seen := totals[tx.CustomerID]; !seen {
			order = append(order, tx.CustomerID)
		}
		totals[tx.CustomerID] += tx.Total
	}

	customers := d.customerIndex()
	ranked := make([]SpenderTotal, 0, len(order))
	for _, id := range order {
		row := SpenderTotal{CustomerID: id, TotalSpent: totals[id]}
		if c, ok := customers[id]; ok {
			row.Name = c.Name
		}
		ranked = append(ranked, row)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CustomerLifetimeValue ranks customers by lifetime spend, descending, with
// the transaction count alongside. A non-positive limit falls back to
// DefaultCLVLimit.
func (d *Dataset) CustomerLifetimeValue(limit int) []CustomerValue {
	if limit <= 0 {
		limit = DefaultCLVLimit
	}

	values := make(map[string]*CustomerValue)
	var order []string
	for _, tx := range d.Transactions {
		v, seen := values[tx.CustomerID]
		if !seen {
			v = &CustomerValue{CustomerID: tx.CustomerID}
			values[tx.CustomerID] = v
			order = append(order, tx.CustomerID)
		}
		v.LifetimeSpend += tx.Total
		v.TxCount++
	}

	customers := d.customerIndex()
	ranked := make([]CustomerValue, 0, len(order))
	for _, id := range order {
		row := *values[id]
		if c, ok := customers[id]; ok {
			row.Name = c.Name
		}
		ranked = append(ranked, row)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LifetimeSpend > ranked[j].LifetimeSpend
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
