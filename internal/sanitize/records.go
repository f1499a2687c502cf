package sanitize

import (
	"encoding/json"

	"github.com/joshsymonds/hoard/internal/model"
)

// Snapshot converts an untyped record into a fully-defaulted model.Snapshot.
// A numeric netWorth field marks the snapshot's stored value as
// authoritative; the flag survives so it is never silently recomputed.
func Snapshot(raw map[string]any) model.Snapshot {
	s := model.Snapshot{
		ID:               String(raw["id"]),
		Date:             Date(raw["date"]),
		Cash:             Number(raw["cash"]),
		Investments:      Number(raw["investments"]),
		RealEstate:       Number(raw["realEstate"]),
		Retirement:       Number(raw["retirement"]),
		Vehicles:         Number(raw["vehicles"]),
		PersonalProperty: Number(raw["personalProperty"]),
		OtherAssets:      Number(raw["otherAssets"]),
		Liabilities:      Number(raw["liabilities"]),
	}

	if v, ok := raw["netWorth"]; ok && isNumeric(v) {
		s.NetWorth = Number(v)
		s.HasNetWorth = true
	}

	if fields, ok := raw["customFields"].([]any); ok {
		for _, f := range fields {
			entry, ok := f.(map[string]any)
			if !ok {
				continue
			}
			kind := model.FieldKind(String(entry["kind"]))
			if kind != model.KindLiability {
				kind = model.KindAsset
			}
			s.CustomFields = append(s.CustomFields, model.CustomField{
				Name:   String(entry["name"]),
				Kind:   kind,
				Amount: Number(entry["amount"]),
			})
		}
	}

	return s
}

// Account converts an untyped record into a model.Account with its category
// normalized. Callers filtering for display should still check Displayable.
func Account(raw map[string]any) model.Account {
	rawCategory := String(raw["category"])
	return model.Account{
		ID:          String(raw["id"]),
		Name:        String(raw["name"]),
		RawCategory: rawCategory,
		Category:    model.NormalizeCategory(rawCategory),
		Amount:      Number(raw["amount"]),
		Institution: String(raw["institution"]),
		Mask:        String(raw["mask"]),
		Manual:      Bool(raw["manual"]),
		LastSynced:  Date(raw["lastSynced"]),
	}
}

// Property converts an untyped record into a model.Property, defaulting
// every numeric field and dropping malformed nested entries.
func Property(raw map[string]any) model.Property {
	p := model.Property{
		ID:              String(raw["id"]),
		Address:         String(raw["address"]),
		Type:            propertyType(String(raw["type"])),
		PurchaseDate:    Date(raw["purchaseDate"]),
		PurchasePrice:   Number(raw["purchasePrice"]),
		Value:           Number(raw["value"]),
		MortgageBalance: Number(raw["mortgageBalance"]),
	}

	if rents, ok := raw["rentCollected"].(map[string]any); ok {
		p.Rents = make(map[string]model.RentEntry, len(rents))
		for period, v := range rents {
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			p.Rents[period] = model.RentEntry{
				Amount:    Number(entry["amount"]),
				Collected: Bool(entry["collected"]),
			}
		}
	}

	if expenses, ok := raw["expenses"].([]any); ok {
		for _, e := range expenses {
			entry, ok := e.(map[string]any)
			if !ok {
				continue
			}
			p.Expenses = append(p.Expenses, model.PropertyExpense{
				Date:        Date(entry["date"]),
				Description: String(entry["description"]),
				Amount:      Number(entry["amount"]),
			})
		}
	}

	if units, ok := raw["units"].([]any); ok {
		for _, u := range units {
			entry, ok := u.(map[string]any)
			if !ok {
				continue
			}
			p.Units = append(p.Units, model.Unit{
				Name:   String(entry["name"]),
				Tenant: String(entry["tenant"]),
				Rent:   Number(entry["rent"]),
			})
		}
	}

	return p
}

func propertyType(raw string) model.PropertyType {
	switch model.PropertyType(raw) {
	case model.TypeLongTermRental, model.TypeShortTermRental,
		model.TypePrimaryResidence, model.TypeVacationHome:
		return model.PropertyType(raw)
	}
	return model.TypeLongTermRental
}

// isNumeric reports whether a raw value carries a usable number, as opposed
// to being absent or malformed. A string that parses counts; "" does not.
func isNumeric(v any) bool {
	switch n := v.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	case string:
		return parseable(n)
	default:
		return false
	}
}
