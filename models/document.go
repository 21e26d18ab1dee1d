package models

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Top-level keys of the storefront configuration document. The shallow merge
// performed during resolution works on these keys.
const (
	KeyProducts        = "PRODUCTS"
	KeyDeliveryPrices  = "DELIVERY_PRICES"
	KeyDiscounts       = "DISCOUNTS"
	KeyStoreInfo       = "STORE_INFO"
	KeyAgeSizes        = "AGE_SIZES"
	KeyAvailableColors = "AVAILABLE_COLORS"
	KeyAvailableSizes  = "AVAILABLE_SIZES"
)

// PlaceholderRegion is the zero-cost delivery entry shown while no region is
// selected.
const PlaceholderRegion = "00 - إختر الولاية"

// Document is the storefront configuration: product catalog, delivery price
// table, discount rules and store metadata.
//
// Every field maps to one top-level JSON key. A nil field means the key is
// absent from the source it was decoded from. Top-level keys the struct does
// not know are kept in Extra and written back unchanged.
type Document struct {
	// Products maps a product id (string-encoded integer) to its record.
	Products map[string]Product `json:"PRODUCTS,omitempty"`

	// DeliveryPrices maps a region label to its two fee tiers.
	DeliveryPrices map[string]DeliveryPrice `json:"DELIVERY_PRICES,omitempty"`

	// Discounts holds the bulk discount rule.
	Discounts *Discounts `json:"DISCOUNTS,omitempty"`

	// StoreInfo holds the store display metadata.
	StoreInfo *StoreInfo `json:"STORE_INFO,omitempty"`

	// AgeSizes maps an age (string-encoded integer) to a size label.
	AgeSizes map[string]string `json:"AGE_SIZES,omitempty"`

	// AvailableColors is the global colour catalog used by products that do
	// not list their own colours.
	AvailableColors []string `json:"AVAILABLE_COLORS,omitempty"`

	// AvailableSizes is the global size catalog used by products that do not
	// list their own sizes.
	AvailableSizes []string `json:"AVAILABLE_SIZES,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Product is a single catalog entry.
//
// A nil AvailableSizes or AvailableColors means the product uses the global
// list; an empty non-nil list means the product offers none. Fields the
// struct does not know are kept in Extra.
type Product struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Image           string   `json:"image"`
	Description     string   `json:"description"`
	AvailableSizes  []string `json:"availableSizes,omitzero"`
	AvailableColors []string `json:"availableColors,omitzero"`

	Extra map[string]json.RawMessage `json:"-"`
}

// DeliveryPrice holds the home and desk (pick-up point) delivery fees of a region.
type DeliveryPrice struct {
	Home float64 `json:"home"`
	Desk float64 `json:"desk"`

	Extra map[string]json.RawMessage `json:"-"`
}

// Discounts describes the per-item discount applied from a minimum quantity on.
type Discounts struct {
	MinQuantityForDiscount int     `json:"minQuantityForDiscount"`
	DiscountPerItem        float64 `json:"discountPerItem"`

	Extra map[string]json.RawMessage `json:"-"`
}

// StoreInfo is the store display metadata.
type StoreInfo struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	PhoneNumbers []string `json:"phoneNumbers"`

	Extra map[string]json.RawMessage `json:"-"`
}

// SizesFor returns the effective size list of the product with the given id:
// its own list when set (even empty), the global AvailableSizes otherwise.
// The second result is false when the product does not exist.
func (d Document) SizesFor(productID string) ([]string, bool) {
	p, ok := d.Products[productID]
	if !ok {
		return nil, false
	}
	if p.AvailableSizes != nil {
		return p.AvailableSizes, true
	}

	return d.AvailableSizes, true
}

// ColorsFor returns the effective colour list of the product with the given
// id, falling back to the global AvailableColors.
func (d Document) ColorsFor(productID string) ([]string, bool) {
	p, ok := d.Products[productID]
	if !ok {
		return nil, false
	}
	if p.AvailableColors != nil {
		return p.AvailableColors, true
	}

	return d.AvailableColors, true
}

// HasPlaceholderRegion reports whether the delivery table holds a zero-cost
// entry. Resolution never adds one; only the built-in default carries
// [PlaceholderRegion].
func (d Document) HasPlaceholderRegion() bool {
	for _, price := range d.DeliveryPrices {
		if price.Home == 0 && price.Desk == 0 {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{
		AgeSizes:        maps.Clone(d.AgeSizes),
		AvailableColors: slices.Clone(d.AvailableColors),
		AvailableSizes:  slices.Clone(d.AvailableSizes),
		Extra:           maps.Clone(d.Extra),
	}

	if d.DeliveryPrices != nil {
		out.DeliveryPrices = make(map[string]DeliveryPrice, len(d.DeliveryPrices))
		for region, price := range d.DeliveryPrices {
			price.Extra = maps.Clone(price.Extra)
			out.DeliveryPrices[region] = price
		}
	}
	if d.Products != nil {
		out.Products = make(map[string]Product, len(d.Products))
		for id, p := range d.Products {
			p.AvailableSizes = slices.Clone(p.AvailableSizes)
			p.AvailableColors = slices.Clone(p.AvailableColors)
			p.Extra = maps.Clone(p.Extra)
			out.Products[id] = p
		}
	}
	if d.Discounts != nil {
		discounts := *d.Discounts
		discounts.Extra = maps.Clone(discounts.Extra)
		out.Discounts = &discounts
	}
	if d.StoreInfo != nil {
		info := *d.StoreInfo
		info.PhoneNumbers = slices.Clone(info.PhoneNumbers)
		info.Extra = maps.Clone(info.Extra)
		out.StoreInfo = &info
	}

	return out
}

// RawDocument is a configuration document split into its top-level members.
// Members are kept as raw JSON so that a higher-priority source replaces a
// whole key without touching its content.
type RawDocument map[string]json.RawMessage

// ParseRawDocument decodes data as a JSON object. Anything other than an
// object is rejected.
func ParseRawDocument(data []byte) (RawDocument, error) {
	var raw RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding configuration document: %w", err)
	}
	if raw == nil {
		return nil, ErrDocumentNotObject
	}

	return raw, nil
}

// Decode converts the raw members into a typed [Document].
func (r RawDocument) Decode() (Document, error) {
	var doc Document
	if len(r) == 0 {
		return doc, nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return doc, fmt.Errorf("error encoding raw document: %w", err)
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("error decoding configuration document: %w", err)
	}

	return doc, nil
}

// Raw splits the document into its top-level members. Absent keys stay absent.
func (d Document) Raw() (RawDocument, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("error encoding configuration document: %w", err)
	}

	raw := RawDocument{}
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error splitting configuration document: %w", err)
	}

	return raw, nil
}
