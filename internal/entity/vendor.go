package domain

import (
	"encoding/json"
	"fmt"
)

// Vendor is the selected fulfilment vendor. Two variants exist: one
// picked from the catalog, and one typed in by the user when nothing
// in the catalog matches. Selection equality goes through Key().
type Vendor interface {
	DisplayName() string
	Key() string
}

type CatalogVendor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating,omitempty"`
	DeliveryTime string  `json:"deliveryTime,omitempty"`
}

func (v CatalogVendor) DisplayName() string { return v.Name }
func (v CatalogVendor) Key() string         { return v.ID }

type CustomVendor struct {
	Name string `json:"name"`
}

func (v CustomVendor) DisplayName() string { return v.Name }
func (v CustomVendor) Key() string         { return "custom" }

const (
	vendorKindCatalog = "catalog"
	vendorKindCustom  = "custom"
)

// vendorEnvelope carries the variant tag so a draft survives the trip
// through the session store.
type vendorEnvelope struct {
	Kind    string         `json:"kind"`
	Catalog *CatalogVendor `json:"catalog,omitempty"`
	Custom  *CustomVendor  `json:"custom,omitempty"`
}

func encodeVendor(v Vendor) *vendorEnvelope {
	switch t := v.(type) {
	case nil:
		return nil
	case CatalogVendor:
		return &vendorEnvelope{Kind: vendorKindCatalog, Catalog: &t}
	case *CatalogVendor:
		return &vendorEnvelope{Kind: vendorKindCatalog, Catalog: t}
	case CustomVendor:
		return &vendorEnvelope{Kind: vendorKindCustom, Custom: &t}
	case *CustomVendor:
		return &vendorEnvelope{Kind: vendorKindCustom, Custom: t}
	default:
		return nil
	}
}

func (e *vendorEnvelope) decode() (Vendor, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind {
	case vendorKindCatalog:
		if e.Catalog == nil {
			return nil, fmt.Errorf("vendor envelope: catalog variant missing body")
		}
		return *e.Catalog, nil
	case vendorKindCustom:
		if e.Custom == nil {
			return nil, fmt.Errorf("vendor envelope: custom variant missing body")
		}
		return *e.Custom, nil
	default:
		return nil, fmt.Errorf("vendor envelope: unknown kind %q", e.Kind)
	}
}

func (d OrderDraft) MarshalJSON() ([]byte, error) {
	type plain OrderDraft
	return json.Marshal(struct {
		plain
		Vendor *vendorEnvelope `json:"vendor,omitempty"`
	}{plain(d), encodeVendor(d.Vendor)})
}

func (d *OrderDraft) UnmarshalJSON(b []byte) error {
	type plain OrderDraft
	var raw struct {
		plain
		Vendor *vendorEnvelope `json:"vendor"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := raw.Vendor.decode()
	if err != nil {
		return err
	}
	*d = OrderDraft(raw.plain)
	d.Vendor = v
	return nil
}
