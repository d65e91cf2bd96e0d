package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// ProductType tags an order line with the catalog type of its product.
type ProductType string

const (
	ProductTypeSimple       ProductType = "simple"
	ProductTypeConfigurable ProductType = "configurable"
	ProductTypeBundle       ProductType = "bundle"
	ProductTypeGrouped      ProductType = "grouped"
	ProductTypeVirtual      ProductType = "virtual"
	ProductTypeDownloadable ProductType = "downloadable"
)

// Validate rejects unknown product types.
func (t ProductType) Validate() error {
	switch t {
	case ProductTypeSimple, ProductTypeConfigurable, ProductTypeBundle,
		ProductTypeGrouped, ProductTypeVirtual, ProductTypeDownloadable:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("product type", fmt.Errorf("%q is not a valid product type", string(t)))
	}
}

// IsShippable reports whether lines of this type need a physical shipment.
func (t ProductType) IsShippable() bool {
	return t != ProductTypeVirtual && t != ProductTypeDownloadable
}

// IsSimple reports whether lines of this type are counted directly in
// ship and refund quantity totals. Composite lines are not.
func (t ProductType) IsSimple() bool {
	return t == ProductTypeSimple
}
