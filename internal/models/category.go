package models

// Categories assigned by the keyword suggester when no user rule matches an
// incoming transaction. User rules may set any free-form category; this list
// only bounds what the fallback suggester produces.
const (
	CategoryGroceries     = "Groceries"
	CategoryRestaurants   = "Restaurants"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryTravel        = "Travel"
	CategoryHealth        = "Health"
	CategoryIncome        = "Income"
	CategoryUncategorized = "Uncategorized"
)

// SuggestedCategories returns every category the fallback suggester can emit
func SuggestedCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryRestaurants,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryTravel,
		CategoryHealth,
		CategoryIncome,
		CategoryUncategorized,
	}
}

// CategorySuggestion carries the suggester's verdict for one transaction.
type CategorySuggestion struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}

// Suggestion methods
const (
	SuggestionMethodMerchant    = "MERCHANT"
	SuggestionMethodDescription = "DESCRIPTION"
	SuggestionMethodFallback    = "FALLBACK"
)
