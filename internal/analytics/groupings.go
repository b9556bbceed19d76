package analytics

// TierCount is the number of customers in one loyalty tier.
type TierCount struct {
	Tier      string
	Customers int
}

// StoreSales is the summed transaction value recorded against one store.
type StoreSales struct {
	StoreID string
	Revenue float64
}

// TierBasket is the mean line-item count per transaction for one loyalty tier.
type TierBasket struct {
	Tier     string
	AvgItems float64
}

// CategorySpend is the summed line-item spend of one customer in one product
// category.
type CategorySpend struct {
	CustomerID string
	Category   string
	Spend      float64
}

// StoreCategoryDemand is the unit volume of one product category sold at one
// store.
type StoreCategoryDemand struct {
	StoreID  string
	Category string
	Units    int
}

// TierPricePoint is the mean line-item unit price paid by one loyalty tier.
type TierPricePoint struct {
	Tier         string
	AvgUnitPrice float64
}

// HouseholdBasket is the mean transaction value for customers of one
// household size.
type HouseholdBasket struct {
	HouseholdSize  int
	AvgBasketValue float64
}

// LoyaltyTierCounts counts customers per loyalty tier.
func (d *Dataset) LoyaltyTierCounts() []TierCount {
	counts := make(map[string]int)
	var order []string
	for _, c := range d.Customers {
		if _, seen := counts[c.LoyaltyTier]; !seen {
			order = append(order, c.LoyaltyTier)
		}
		counts[c.LoyaltyTier]++
	}

	out := make([]TierCount, 0, len(order))
	for _, tier := range order {
		out = append(out, TierCount{Tier: tier, Customers: counts[tier]})
	}
	return out
}

// SalesByStore sums transaction totals per store. Transactions without a
// store id are excluded.
func (d *Dataset) SalesByStore() []StoreSales {
	revenue := make(map[string]float64)
	var order []string
	for _, tx := range d.Transactions {
		if tx.StoreID == "" {
			continue
		}
		if _, seen := revenue[tx.StoreID]; !seen {
			order = append(order, tx.StoreID)
		}
		revenue[tx.StoreID] += tx.Total
	}

	out := make([]StoreSales, 0, len(order))
	for _, id := range order {
		out = append(out, StoreSales{StoreID: id, Revenue: revenue[id]})
	}
	return out
}

// AvgBasketByTier computes the mean number of line items per transaction,
// grouped by the purchasing customer's loyalty tier. Transactions whose
// customer id matches no customer record are excluded.
func (d *Dataset) AvgBasketByTier() []TierBasket {
	customers := d.customerIndex()

	type acc struct {
		items int
		txs   int
	}
	sums := make(map[string]*acc)
	var order []string
	for _, tx := range d.Transactions {
		c, ok := customers[tx.CustomerID]
		if !ok {
			continue
		}
		a, seen := sums[c.LoyaltyTier]
		if !seen {
			a = &acc{}
			sums[c.LoyaltyTier] = a
			order = append(order, c.LoyaltyTier)
		}
		a.items += len(tx.Items)
		a.txs++
	}

	out := make([]TierBasket, 0, len(order))
	for _, tier := range order {
		a := sums[tier]
		out = append(out, TierBasket{
			Tier:     tier,
			AvgItems: float64(a.items) / float64(a.txs),
		})
	}
	return out
}

// CategorySpendByCustomer sums line totals per (customer, product category)
// pair. Line items whose product id matches no catalog record are excluded.
func (d *Dataset) CategorySpendByCustomer() []CategorySpend {
	products := d.productIndex()

	type key struct {
		customer string
		category string
	}
	spend := make(map[key]float64)
	var order []key
	for _, tx := range d.Transactions {
		for _, item := range tx.Items {
			p, ok := products[item.ProductID]
			if !ok {
				continue
			}
			k := key{customer: tx.CustomerID, category: p.Category}
			if _, seen := spend[k]; !seen {
				order = append(order, k)
			}
			spend[k] += item.LineTotal
		}
	}

	out := make([]CategorySpend, 0, len(order))
	for _, k := range order {
		out = append(out, CategorySpend{
			CustomerID: k.customer,
			Category:   k.category,
			Spend:      spend[k],
		})
	}
	return out
}

// StoreCategoryVolume sums unit quantities per (store, product category)
// pair. Transactions without a store id and line items without a matching
// product are excluded.
func (d *Dataset) StoreCategoryVolume() []StoreCategoryDemand {
	products := d.productIndex()

	type key struct {
		store    string
		category string
	}
	units := make(map[key]int)
	var order []key
	for _, tx := range d.Transactions {
		if tx.StoreID == "" {
			continue
		}
		for _, item := range tx.Items {
			p, ok := products[item.ProductID]
			if !ok {
				continue
			}
			k := key{store: tx.StoreID, category: p.Category}
			if _, seen := units[k]; !seen {
				order = append(order, k)
			}
			units[k] += item.Qty
		}
	}

	out := make([]StoreCategoryDemand, 0, len(order))
	for _, k := range order {
		out = append(out, StoreCategoryDemand{
			StoreID:  k.store,
			Category: k.category,
			Units:    units[k],
		})
	}
	return out
}

// PriceSensitivity computes the mean line-item unit price paid per loyalty
// tier. Each line item contributes its price once, regardless of quantity.
// Transactions whose customer id matches no customer record are excluded.
func (d *Dataset) PriceSensitivity() []TierPricePoint {
	customers := d.customerIndex()

	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[string]*acc)
	var order []string
	for _, tx := range d.Transactions {
		c, ok := customers[tx.CustomerID]
		if !ok {
			continue
		}
		for _, item := range tx.Items {
			a, seen := sums[c.LoyaltyTier]
			if !seen {
				a = &acc{}
				sums[c.LoyaltyTier] = a
				order = append(order, c.LoyaltyTier)
			}
			a.sum += item.Price
			a.count++
		}
	}

	out := make([]TierPricePoint, 0, len(order))
	for _, tier := range order {
		a := sums[tier]
		out = append(out, TierPricePoint{
			Tier:         tier,
			AvgUnitPrice: a.sum / float64(a.count),
		})
	}
	return out
}

// HouseholdBasketValue computes the mean transaction total grouped by the
// purchasing customer's household size. Transactions whose customer id
// matches no customer record are excluded.
func (d *Dataset) HouseholdBasketValue() []HouseholdBasket {
	customers := d.customerIndex()

	type acc struct {
		sum float64
		txs int
	}
	sums := make(map[int]*acc)
	var order []int
	for _, tx := range d.Transactions {
		c, ok := customers[tx.CustomerID]
		if !ok {
			continue
		}
		a, seen := sums[c.HouseholdSize]
		if !seen {
			a = &acc{}
			sums[c.HouseholdSize] = a
			order = append(order, c.HouseholdSize)
		}
		a.sum += tx.Total
		a.txs++
	}

	out := make([]HouseholdBasket, 0, len(order))
	for _, size := range order {
		a := sums[size]
		out = append(out, HouseholdBasket{
			HouseholdSize:  size,
			AvgBasketValue: a.sum / float64(a.txs),
		})
	}
	return out
}
