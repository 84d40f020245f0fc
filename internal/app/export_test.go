package app

import "time"

// SetAggregatorClock replaces aggregator time source.
func SetAggregatorClock(a *Aggregator, now func() time.Time) {
	a.now = now
}

// SetCatalogClock replaces catalog time source.
func SetCatalogClock(c *Catalog, now func() time.Time) {
	c.now = now
}
