package analytics

import "time"

// ChurnCandidate flags a customer whose most recent purchase predates the
// recency threshold.
type ChurnCandidate struct {
	CustomerID   string
	Name         string
	LastPurchase time.Time
	DaysInactive int
}

// DairyBuyer records one Dairy-category line item: which customer bought it
// and in which transaction.
type DairyBuyer struct {
	CustomerID    string
	TransactionID string
}

// ChurnRisk returns the customers whose latest transaction date is strictly
// older than now minus the stale window. Comparison is calendar time, not
// transaction sequence. Customers are keyed by the transaction's customer_id;
// the name is filled in when a customer record matches, and left empty
// otherwise.
func (d *Dataset) ChurnRisk(now time.Time, staleAfter time.Duration) []ChurnCandidate {
	latest := make(map[string]time.Time)
	var order []string
	for _, tx := range d.Transactions {
		last, seen := latest[tx.CustomerID]
		if !seen {
			order = append(order, tx.CustomerID)
		}
		if !seen || tx.Date.After(last) {
			latest[tx.CustomerID] = tx.Date
		}
	}

	cutoff := now.Add(-staleAfter)
	customers := d.customerIndex()

	var out []ChurnCandidate
	for _, id := range order {
		last := latest[id]
		if !last.Before(cutoff) {
			continue
		}
		row := ChurnCandidate{
			CustomerID:   id,
			LastPurchase: last,
			DaysInactive: int(now.Sub(last).Hours() / 24),
		}
		if c, ok := customers[id]; ok {
			row.Name = c.Name
		}
		out = append(out, row)
	}
	if out == nil {
		out = []ChurnCandidate{}
	}
	return out
}

// DairyBuyers returns one (customer, transaction) pair per line item whose
// product belongs to the Dairy category. A transaction with two Dairy items
// therefore appears twice.
func (d *Dataset) DairyBuyers() []DairyBuyer {
	products := d.productIndex()

	out := []DairyBuyer{}
	for _, tx := range d.Transactions {
		for _, item := range tx.Items {
			p, ok := products[item.ProductID]
			if !ok || p.Category != DairyCategory {
				continue
			}
			out = append(out, DairyBuyer{
				CustomerID:    tx.CustomerID,
				TransactionID: tx.TransactionID,
			})
		}
	}
	return out
}
