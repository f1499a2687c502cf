// Package model defines the core domain models used throughout the application.
package model

import "time"

// FieldKind indicates which side of the balance sheet a custom field sits on.
type FieldKind string

const (
	// KindAsset marks a custom field that adds to net worth.
	KindAsset FieldKind = "asset"
	// KindLiability marks a custom field that subtracts from net worth.
	KindLiability FieldKind = "liability"
)

// CustomField is a user-defined asset or liability line on a snapshot.
type CustomField struct {
	Name   string    `json:"name"`
	Kind   FieldKind `json:"kind"`
	Amount float64   `json:"amount"`
}

// Snapshot is one point-in-time record of the user's balance sheet.
// Only the calendar day of Date is meaningful.
type Snapshot struct {
	Date             time.Time
	ID               string
	CustomFields     []CustomField
	Cash             float64
	Investments      float64
	RealEstate       float64
	Retirement       float64
	Vehicles         float64
	PersonalProperty float64
	OtherAssets      float64
	Liabilities      float64
	// NetWorth is only meaningful when HasNetWorth is true. A stored value is
	// authoritative and is never recomputed from the component fields.
	NetWorth     float64
	HasNetWorth  bool
}

// AssetTotal sums the fixed asset buckets plus asset custom fields.
func (s *Snapshot) AssetTotal() float64 {
	total := s.Cash + s.Investments + s.RealEstate + s.Retirement +
		s.Vehicles + s.PersonalProperty + s.OtherAssets
	for _, f := range s.CustomFields {
		if f.Kind == KindAsset {
			total += f.Amount
		}
	}
	return total
}

// LiabilityTotal sums the liabilities bucket plus liability custom fields.
func (s *Snapshot) LiabilityTotal() float64 {
	total := s.Liabilities
	for _, f := range s.CustomFields {
		if f.Kind == KindLiability {
			total += f.Amount
		}
	}
	return total
}

// ComputedNetWorth returns the stored net worth when one was supplied,
// otherwise derives it from the component fields.
func (s *Snapshot) ComputedNetWorth() float64 {
	if s.HasNetWorth {
		return s.NetWorth
	}
	return s.AssetTotal() - s.LiabilityTotal()
}
