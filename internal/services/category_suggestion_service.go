package services

import (
	"strings"

	"bankrules/internal/models"
)

type categorySuggestionService struct {
	merchantPatterns    map[string]merchantPattern
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	category   string
	confidence float64
}

type descriptionPattern struct {
	keywords   []string
	category   string
	confidence float64
}

// NewCategorySuggestionService creates the fallback suggester used for
// transactions no user rule categorized
func NewCategorySuggestionService() CategorySuggestionServiceInterface {
	return &categorySuggestionService{
		merchantPatterns:    initMerchantPatterns(),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// SuggestByCounterparty suggests a category from known merchant patterns.
// Substring matching runs first, then a fuzzy pass catches misspelled or
// truncated merchant names.
func (s *categorySuggestionService) SuggestByCounterparty(counterparty string) *models.CategorySuggestion {
	if counterparty == "" {
		return fallbackSuggestion()
	}

	normalized := normalizeForMatching(counterparty)

	for pattern, mapping := range s.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(pattern)) {
			return &models.CategorySuggestion{
				Category:       mapping.category,
				Method:         models.SuggestionMethodMerchant,
				Confidence:     mapping.confidence,
				MatchedPattern: pattern,
			}
		}
	}

	fuzzyMatch, score := s.fuzzyMatchMerchant(counterparty)
	if score > 0.7 && fuzzyMatch != "" {
		mapping := s.merchantPatterns[fuzzyMatch]
		return &models.CategorySuggestion{
			Category:       mapping.category,
			Method:         models.SuggestionMethodMerchant,
			Confidence:     score * mapping.confidence,
			MatchedPattern: fuzzyMatch,
		}
	}

	return fallbackSuggestion()
}

// SuggestByDescription suggests a category from description keywords
func (s *categorySuggestionService) SuggestByDescription(description string) *models.CategorySuggestion {
	if description == "" {
		return fallbackSuggestion()
	}

	for _, pattern := range s.descriptionPatterns {
		for _, keyword := range pattern.keywords {
			if containsIgnoreCase(description, keyword) {
				return &models.CategorySuggestion{
					Category:       pattern.category,
					Method:         models.SuggestionMethodDescription,
					Confidence:     pattern.confidence,
					MatchedPattern: keyword,
				}
			}
		}
	}

	return fallbackSuggestion()
}

// Suggest runs the full suggestion chain: counterparty patterns first, then
// description keywords, then the uncategorized fallback
func (s *categorySuggestionService) Suggest(transaction *models.Transaction) *models.CategorySuggestion {
	if transaction == nil {
		return fallbackSuggestion()
	}

	if transaction.Counterparty != "" {
		suggestion := s.SuggestByCounterparty(transaction.Counterparty)
		if suggestion.Category != models.CategoryUncategorized {
			return suggestion
		}
	}

	if transaction.Description != "" {
		suggestion := s.SuggestByDescription(transaction.Description)
		if suggestion.Category != models.CategoryUncategorized {
			return suggestion
		}
	}

	return fallbackSuggestion()
}

func (s *categorySuggestionService) fuzzyMatchMerchant(input string) (string, float64) {
	input = strings.ToLower(strings.TrimSpace(input))

	var bestMatch string
	var bestScore float64

	for merchant := range s.merchantPatterns {
		score := calculateSimilarity(input, strings.ToLower(merchant))
		if score > bestScore && score > 0.7 {
			bestScore = score
			bestMatch = merchant
		}
	}

	return bestMatch, bestScore
}

func fallbackSuggestion() *models.CategorySuggestion {
	return &models.CategorySuggestion{
		Category:   models.CategoryUncategorized,
		Method:     models.SuggestionMethodFallback,
		Confidence: 0.0,
	}
}

func initMerchantPatterns() map[string]merchantPattern {
	return map[string]merchantPattern{
		// Groceries
		"Albert Heijn": {category: models.CategoryGroceries, confidence: 0.95},
		"Jumbo":        {category: models.CategoryGroceries, confidence: 0.95},
		"Lidl":         {category: models.CategoryGroceries, confidence: 0.95},
		"Aldi":         {category: models.CategoryGroceries, confidence: 0.95},
		"Tesco":        {category: models.CategoryGroceries, confidence: 0.95},
		"Carrefour":    {category: models.CategoryGroceries, confidence: 0.95},
		"Rewe":         {category: models.CategoryGroceries, confidence: 0.95},
		"Edeka":        {category: models.CategoryGroceries, confidence: 0.95},

		// Restaurants
		"McDonald":     {category: models.CategoryRestaurants, confidence: 0.95},
		"Starbucks":    {category: models.CategoryRestaurants, confidence: 0.95},
		"Burger King":  {category: models.CategoryRestaurants, confidence: 0.95},
		"Thuisbezorgd": {category: models.CategoryRestaurants, confidence: 0.95},
		"Deliveroo":    {category: models.CategoryRestaurants, confidence: 0.95},
		"Uber Eats":    {category: models.CategoryRestaurants, confidence: 0.95},
		"Domino":       {category: models.CategoryRestaurants, confidence: 0.90},
		"Subway":       {category: models.CategoryRestaurants, confidence: 0.90},

		// Transport
		"NS Groep": {category: models.CategoryTransport, confidence: 0.95},
		"Shell":    {category: models.CategoryTransport, confidence: 0.95},
		"Esso":     {category: models.CategoryTransport, confidence: 0.95},
		"Bolt":     {category: models.CategoryTransport, confidence: 0.90},
		"GVB":      {category: models.CategoryTransport, confidence: 0.95},
		"Uber BV":  {category: models.CategoryTransport, confidence: 0.90},

		// Shopping
		"Amazon":     {category: models.CategoryShopping, confidence: 0.95},
		"Bol.com":    {category: models.CategoryShopping, confidence: 0.95},
		"Zalando":    {category: models.CategoryShopping, confidence: 0.95},
		"MediaMarkt": {category: models.CategoryShopping, confidence: 0.95},
		"Ikea":       {category: models.CategoryShopping, confidence: 0.95},
		"Coolblue":   {category: models.CategoryShopping, confidence: 0.95},
		"Action":     {category: models.CategoryShopping, confidence: 0.85},

		// Entertainment
		"Netflix": {category: models.CategoryEntertainment, confidence: 0.95},
		"Spotify": {category: models.CategoryEntertainment, confidence: 0.95},
		"Disney":  {category: models.CategoryEntertainment, confidence: 0.90},
		"Steam":   {category: models.CategoryEntertainment, confidence: 0.90},
		"Pathe":   {category: models.CategoryEntertainment, confidence: 0.95},
		"HBO":     {category: models.CategoryEntertainment, confidence: 0.95},

		// Utilities
		"Vattenfall": {category: models.CategoryUtilities, confidence: 0.95},
		"Eneco":      {category: models.CategoryUtilities, confidence: 0.95},
		"Ziggo":      {category: models.CategoryUtilities, confidence: 0.95},
		"KPN":        {category: models.CategoryUtilities, confidence: 0.95},
		"Vodafone":   {category: models.CategoryUtilities, confidence: 0.95},
		"Waternet":   {category: models.CategoryUtilities, confidence: 0.95},

		// Travel
		"KLM":     {category: models.CategoryTravel, confidence: 0.95},
		"Ryanair": {category: models.CategoryTravel, confidence: 0.95},
		"Booking": {category: models.CategoryTravel, confidence: 0.90},
		"Airbnb":  {category: models.CategoryTravel, confidence: 0.95},

		// Health
		"Apotheek":  {category: models.CategoryHealth, confidence: 0.95},
		"Kruidvat":  {category: models.CategoryHealth, confidence: 0.90},
		"Etos":      {category: models.CategoryHealth, confidence: 0.90},
		"Basic Fit": {category: models.CategoryHealth, confidence: 0.95},
	}
}

func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords:   []string{"salary", "payroll", "loon", "salaris", "wage"},
			category:   models.CategoryIncome,
			confidence: 0.95,
		},
		{
			keywords:   []string{"supermarket", "supermarkt", "grocery"},
			category:   models.CategoryGroceries,
			confidence: 0.85,
		},
		{
			keywords:   []string{"restaurant", "cafe", "bistro", "takeaway"},
			category:   models.CategoryRestaurants,
			confidence: 0.85,
		},
		{
			keywords:   []string{"fuel", "tankstation", "parking", "ov-chipkaart"},
			category:   models.CategoryTransport,
			confidence: 0.85,
		},
		{
			keywords:   []string{"energie", "electricity", "gas levering", "internet", "telecom"},
			category:   models.CategoryUtilities,
			confidence: 0.85,
		},
		{
			keywords:   []string{"hotel", "flight", "airline"},
			category:   models.CategoryTravel,
			confidence: 0.80,
		},
		{
			keywords:   []string{"pharmacy", "huisarts", "tandarts", "fysio"},
			category:   models.CategoryHealth,
			confidence: 0.85,
		},
	}
}

// calculateSimilarity scores two strings in [0, 1] from their Levenshtein
// distance relative to the longer string
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = minOfThree(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func minOfThree(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
