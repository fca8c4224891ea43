package models

import (
	"errors"
	"strings"
	"time"
)

// ItemKind identifies the kind of travel service a negotiated rate covers.
type ItemKind string

const (
	ItemKindHotel    ItemKind = "hotel"
	ItemKindActivity ItemKind = "activity"
	ItemKindTransfer ItemKind = "transfer"
)

// OccupancyRates holds per-night nett rates tiered by guest count.
// A zero tier means the tier is unset and the base rate applies.
type OccupancyRates struct {
	Single   float64 `bson:"single" json:"single"`       // 1 guest
	Double   float64 `bson:"double" json:"double"`       // 2 guests
	Triple   float64 `bson:"triple" json:"triple"`       // 3 guests
	QuadPlus float64 `bson:"quad_plus" json:"quad_plus"` // 4 or more guests
}

// RateRecord is one negotiated supplier rate, as delivered by the
// (external) rate-sheet ingestion.
type RateRecord struct {
	ID                string          `bson:"id" json:"id"`
	SupplierName      string          `bson:"supplier_name" json:"supplier_name"`
	PropertyName      string          `bson:"property_name" json:"property_name"` // property or vendor name
	PropertyCode      string          `bson:"property_code,omitempty" json:"property_code,omitempty"`
	ItemKind          ItemKind        `bson:"item_kind" json:"item_kind"`
	ValidFrom         time.Time       `bson:"valid_from" json:"valid_from"`
	ValidTo           time.Time       `bson:"valid_to" json:"valid_to"`
	RoomType          string          `bson:"room_type,omitempty" json:"room_type,omitempty"` // room type or service descriptor
	NettRatePerNight  float64         `bson:"nett_rate_per_night" json:"nett_rate_per_night"`
	Occupancy         *OccupancyRates `bson:"occupancy,omitempty" json:"occupancy,omitempty"`
	CommissionPercent float64         `bson:"commission_percent" json:"commission_percent"` // supplier-paid cut, informational
	Currency          string          `bson:"currency" json:"currency"`
	CreatedAt         time.Time       `bson:"created_at" json:"created_at"`
}

// Validate checks the rate record invariants before it enters the catalog.
func (r RateRecord) Validate() error {
	if r.ValidFrom.After(r.ValidTo) {
		return errors.New("valid_from must not be after valid_to")
	}
	switch r.ItemKind {
	case ItemKindHotel, ItemKindActivity, ItemKindTransfer:
	default:
		return errors.New("unknown item kind: " + string(r.ItemKind))
	}
	if r.NettRatePerNight < 0 {
		return errors.New("nett rate per night must be non-negative")
	}
	if r.Occupancy != nil {
		occ := *r.Occupancy
		if occ.Single < 0 || occ.Double < 0 || occ.Triple < 0 || occ.QuadPlus < 0 {
			return errors.New("occupancy tiers must be non-negative")
		}
		if occ.Single == 0 && occ.Double == 0 && occ.Triple == 0 && occ.QuadPlus == 0 {
			return errors.New("occupancy tiers present but all unset")
		}
	} else if r.NettRatePerNight == 0 {
		return errors.New("rate record has neither a base rate nor occupancy tiers")
	}
	return nil
}

// CoversDate reports whether the rate's validity window includes the given date.
func (r RateRecord) CoversDate(d time.Time) bool {
	return !d.Before(r.ValidFrom) && !d.After(r.ValidTo)
}

// RateCatalog is an in-memory snapshot of the rate catalog. Its query
// methods are pure filters; they never mutate the snapshot.
type RateCatalog []RateRecord

// ByKind returns rates for the given item kind.
func (c RateCatalog) ByKind(kind ItemKind) RateCatalog {
	var out RateCatalog
	for _, r := range c {
		if r.ItemKind == kind {
			out = append(out, r)
		}
	}
	return out
}

// ByDateRange returns rates whose validity window intersects [start, end].
func (c RateCatalog) ByDateRange(start, end time.Time) RateCatalog {
	var out RateCatalog
	for _, r := range c {
		if !r.ValidFrom.After(end) && !r.ValidTo.Before(start) {
			out = append(out, r)
		}
	}
	return out
}

// Search matches supplier, property, room type and property code
// substrings case-insensitively.
func (c RateCatalog) Search(text string) RateCatalog {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return c
	}
	var out RateCatalog
	for _, r := range c {
		haystack := strings.ToLower(r.SupplierName + " " + r.PropertyName + " " + r.RoomType + " " + r.PropertyCode)
		if strings.Contains(haystack, needle) {
			out = append(out, r)
		}
	}
	return out
}
