package aggregate

import (
	"github.com/joshsymonds/hoard/internal/model"
)

// CategoryGroup is one category's member accounts and their subtotal.
type CategoryGroup struct {
	Items    []model.Account
	Subtotal float64
}

// Breakdown maps canonical categories to their groups. Iteration via Order
// follows first-seen insertion order, so UI sections render in a stable
// order for a stable input order without a separate sort step.
type Breakdown struct {
	Groups map[model.Category]*CategoryGroup
	Order  []model.Category
	Total  float64
}

// Categorize normalizes, groups and subtotals a flat account list.
// Accounts whose category was not already canonical are re-normalized
// through the lookup table, with unrecognized values falling into misc.
// Accounts with neither an ID nor a name are dropped: they cannot be
// displayed or referenced for a later edit or delete.
//
// The sum of all subtotals equals the sum of all kept input amounts.
func Categorize(accounts []model.Account) *Breakdown {
	b := &Breakdown{Groups: make(map[model.Category]*CategoryGroup)}

	for _, a := range accounts {
		if !a.Displayable() {
			continue
		}

		category := a.Category
		if !category.Canonical() {
			raw := string(category)
			if raw == "" {
				raw = a.RawCategory
			}
			category = model.NormalizeCategory(raw)
		}
		a.Category = category

		group, ok := b.Groups[category]
		if !ok {
			group = &CategoryGroup{}
			b.Groups[category] = group
			b.Order = append(b.Order, category)
		}
		group.Items = append(group.Items, a)
		group.Subtotal += a.Amount
		b.Total += a.Amount
	}

	return b
}

// Group returns the group for a category, or an empty group when the
// category has no members, so callers can render every section safely.
func (b *Breakdown) Group(c model.Category) *CategoryGroup {
	if g, ok := b.Groups[c]; ok {
		return g
	}
	return &CategoryGroup{}
}
