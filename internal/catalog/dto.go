package catalog

import (
	"github.com/google/uuid"

	"github.com/orderpadhq/pricing-engine/internal/pricing"
	"github.com/orderpadhq/pricing-engine/pkg/enums"
)

// ProductAttributes is the product-level form state carried verbatim into
// the payload. Monetary and unit state live in the per-unit forms instead.
type ProductAttributes struct {
	ProductID      *uuid.UUID `json:"product_id,omitempty"`
	SKU            string     `json:"sku"`
	Name           string     `json:"name" validate:"required"`
	Description    string     `json:"description"`
	CategoryIDs    []int64    `json:"category_ids"`
	MainCategoryID *int64     `json:"main_category_id"`
	BrandID        *int64     `json:"brand_id,omitempty"`
	SupplierID     *int64     `json:"supplier_id,omitempty"`
	ManufacturerID *int64     `json:"manufacturer_id,omitempty"`
	IsActive       bool       `json:"is_active"`
	IsFeatured     bool       `json:"is_featured"`
	IsMSACompliant bool       `json:"is_msa_compliant"`
	// MSA holds the compliance attribute block; it is only transmitted when
	// IsMSACompliant is set.
	MSA         *MSAAttributes `json:"msa_attributes,omitempty"`
	SEO         SEOMetadata    `json:"seo"`
	MinOrderQty int64          `json:"min_qty" validate:"min=0"`
	MaxOrderQty int64          `json:"max_qty" validate:"min=0"`
}

// MSAAttributes is the compliance block attached for MSA-compliant products.
type MSAAttributes struct {
	AgreementNumber string `json:"agreement_number"`
	Jurisdiction    string `json:"jurisdiction"`
	ExpiresOn       string `json:"expires_on,omitempty"`
}

// SEOMetadata is passed through untouched.
type SEOMetadata struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Slug        string   `json:"slug,omitempty"`
}

// ChannelForm is one sales channel's stock counts as entered by the user,
// expressed in the product's sold-by unit.
type ChannelForm struct {
	ID            int64  `json:"channel_id" validate:"min=1"`
	Name          string `json:"channel_name"`
	AvailableQty  string `json:"available_qty"`
	OnHoldQty     string `json:"on_hold_qty"`
	DamagedQty    string `json:"damaged_qty"`
	BackOrderQty  string `json:"back_order_qty"`
	ComingSoonQty string `json:"coming_soon_qty"`
}

// CalculateInput drives the price distribution action.
type CalculateInput struct {
	Units []pricing.UnitForm `json:"units" validate:"required,min=1,dive"`
	// BoughtBy names the reference unit whose entered values seed every
	// other unit's derived prices.
	BoughtBy enums.UnitKind `json:"bought_by_unit" validate:"required"`
}

// CalculateResult carries the recomputed per-unit form values.
type CalculateResult struct {
	Units []pricing.UnitForm `json:"units"`
}

// AssembleInput is the full form state for one save attempt.
type AssembleInput struct {
	Attributes ProductAttributes  `json:"attributes"`
	Units      []pricing.UnitForm `json:"units" validate:"required,min=1,dive"`
	SoldBy     enums.UnitKind     `json:"sold_by_unit" validate:"required"`
	BoughtBy   enums.UnitKind     `json:"bought_by_unit" validate:"required"`
	Channels   []ChannelForm      `json:"channels" validate:"dive"`
}

// ChannelInfo is the wire-shaped per-channel entry: converted stock counts
// plus the shared unit-price set.
type ChannelInfo struct {
	ChannelID    int64               `json:"channel_id"`
	ChannelName  string              `json:"channel_name"`
	InHand       int64               `json:"in_hand"`
	OnHold       int64               `json:"on_hold"`
	Damaged      int64               `json:"damaged"`
	BackOrder    *int64              `json:"back_order"`
	ComingSoon   *int64              `json:"coming_soon"`
	MinQty       int64               `json:"min_qty"`
	MaxQty       int64               `json:"max_qty"`
	SoldByUnit   enums.UnitKind      `json:"sold_by_unit"`
	BoughtByUnit enums.UnitKind      `json:"bought_by_unit"`
	UnitPrices   []pricing.UnitPrice `json:"unit_prices"`
}

// Payload is the assembled multi-channel submission handed to the catalog
// backend by the (out of scope) HTTP client.
type Payload struct {
	ProductID      *uuid.UUID          `json:"product_id,omitempty"`
	SKU            string              `json:"sku"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	CategoryIDs    []int64             `json:"category_ids"`
	MainCategoryID int64               `json:"main_category_id"`
	BrandID        *int64              `json:"brand_id,omitempty"`
	SupplierID     *int64              `json:"supplier_id,omitempty"`
	ManufacturerID *int64              `json:"manufacturer_id,omitempty"`
	IsActive       bool                `json:"is_active"`
	IsFeatured     bool                `json:"is_featured"`
	IsMSACompliant bool                `json:"is_msa_compliant"`
	MSA            *MSAAttributes      `json:"msa_attributes,omitempty"`
	SEO            SEOMetadata         `json:"seo"`
	CurrencyCode   string              `json:"currency_code"`
	UnitPrices     []pricing.UnitPrice `json:"unit_prices"`
	ChannelInfo    []ChannelInfo       `json:"channel_info"`
}
