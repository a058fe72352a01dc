package models

// CategoryUnknown is the bucket used when a transaction references a
// category that does not exist. Dangling references degrade to this
// bucket rather than failing the computation.
const CategoryUnknown = "unknown"

// Category labels transactions for insights and budget limits.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"` // "income" or "expense"
}

// BudgetLimit caps monthly spending in a category. A zero Amount is a
// legitimate value and yields a zero utilization ratio, never a
// division by zero.
type BudgetLimit struct {
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
}

// CategoryName resolves a category ID against a category set, bucketing
// dangling or empty references under CategoryUnknown.
func CategoryName(categories []Category, id string) string {
	if id == "" {
		return CategoryUnknown
	}
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return CategoryUnknown
}
