package model

import (
	"strings"
	"time"
)

// Category is one of the fixed buckets every account is normalized into.
type Category string

// Canonical account categories.
const (
	CategoryBank       Category = "bank"
	CategoryCreditCard Category = "creditCard"
	CategoryLoan       Category = "loan"
	CategoryInvestment Category = "investment"
	CategoryRetirement Category = "retirement"
	CategoryInsurance  Category = "insurance"
	CategoryDigital    Category = "digital"
	CategoryMisc       Category = "misc"
)

// Categories lists every canonical category in display order.
func Categories() []Category {
	return []Category{
		CategoryBank,
		CategoryCreditCard,
		CategoryLoan,
		CategoryInvestment,
		CategoryRetirement,
		CategoryInsurance,
		CategoryDigital,
		CategoryMisc,
	}
}

// categoryAliases maps raw provider and user-entered category strings to
// canonical categories. Keys are lowercased with spaces, dashes and
// underscores stripped before lookup.
var categoryAliases = map[string]Category{
	"bank":          CategoryBank,
	"checking":      CategoryBank,
	"savings":       CategoryBank,
	"depository":    CategoryBank,
	"cash":          CategoryBank,
	"cashmanagement": CategoryBank,
	"moneymarket":   CategoryBank,
	"cd":            CategoryBank,

	"creditcard": CategoryCreditCard,
	"credit":     CategoryCreditCard,

	"loan":        CategoryLoan,
	"mortgage":    CategoryLoan,
	"studentloan": CategoryLoan,
	"autoloan":    CategoryLoan,
	"heloc":       CategoryLoan,

	"investment": CategoryInvestment,
	"brokerage":  CategoryInvestment,
	"stocks":     CategoryInvestment,
	"mutualfund": CategoryInvestment,
	"hsa":        CategoryInvestment,

	"retirement": CategoryRetirement,
	"401k":       CategoryRetirement,
	"403b":       CategoryRetirement,
	"ira":        CategoryRetirement,
	"rothira":    CategoryRetirement,
	"pension":    CategoryRetirement,

	"insurance":     CategoryInsurance,
	"lifeinsurance": CategoryInsurance,

	"digital": CategoryDigital,
	"crypto":  CategoryDigital,
	"bitcoin": CategoryDigital,
	"wallet":  CategoryDigital,

	"misc":  CategoryMisc,
	"other": CategoryMisc,
}

// Canonical reports whether c is one of the fixed canonical categories.
func (c Category) Canonical() bool {
	switch c {
	case CategoryBank, CategoryCreditCard, CategoryLoan, CategoryInvestment,
		CategoryRetirement, CategoryInsurance, CategoryDigital, CategoryMisc:
		return true
	}
	return false
}

// NormalizeCategory maps a raw category string to its canonical category.
// Unrecognized or empty values fall back to CategoryMisc.
func NormalizeCategory(raw string) Category {
	key := strings.ToLower(raw)
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryMisc
}

// Account is a single balance-holding entity, either linked through an
// aggregation provider or entered manually.
type Account struct {
	LastSynced  time.Time
	ID          string
	Name        string
	RawCategory string
	Institution string
	Mask        string
	Category    Category
	Amount      float64
	Manual      bool
}

// Displayable reports whether the account carries enough identity to be
// shown and later referenced for edit or delete.
func (a *Account) Displayable() bool {
	return a.ID != "" || a.Name != ""
}
