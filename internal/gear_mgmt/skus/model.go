package skus

import "time"

// SKU is one row of the catalog-number registry: a name to sku_number mapping
// consulted when labelling newly purchased equipment.
type SKU struct {
	ID        uint64
	Name      string
	SkuNumber string
	CreatedAt time.Time
}
