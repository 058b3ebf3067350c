package repositories

import (
	"errors"
	"fmt"
	"time"

	"bankrules/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRuleNotFound = errors.New("rule not found")
)

// ruleRepository implements RuleRepositoryInterface
type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository creates a new transaction rule repository
func NewRuleRepository(db *gorm.DB) RuleRepositoryInterface {
	return &ruleRepository{
		db: db,
	}
}

// Create creates a new rule
func (r *ruleRepository) Create(rule *models.TransactionRule) error {
	if err := r.db.Create(rule).Error; err != nil {
		return fmt.Errorf("failed to create rule: %w", err)
	}
	return nil
}

// GetByID retrieves a rule by ID
func (r *ruleRepository) GetByID(id uuid.UUID) (*models.TransactionRule, error) {
	rule := &models.TransactionRule{ID: id}
	if err := r.db.First(rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	return rule, nil
}

// GetByUserID retrieves all rules for a user in evaluation order
// Evaluation order is ascending priority with creation time as a tiebreaker
func (r *ruleRepository) GetByUserID(userID uuid.UUID) ([]*models.TransactionRule, error) {
	var rules []*models.TransactionRule
	if err := r.db.Where("user_id = ?", userID).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}
	return rules, nil
}

// GetEnabledByUserID retrieves only the enabled rules for a user in evaluation order
func (r *ruleRepository) GetEnabledByUserID(userID uuid.UUID) ([]*models.TransactionRule, error) {
	var rules []*models.TransactionRule
	if err := r.db.Where("user_id = ? AND enabled = ?", userID, true).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get enabled rules: %w", err)
	}
	return rules, nil
}

// Update persists changes to an existing rule
// Hooks are skipped: the skeleton model carries only the ID, so the
// BeforeUpdate validation would reject it. Callers validate before updating.
func (r *ruleRepository) Update(rule *models.TransactionRule) error {
	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.TransactionRule{ID: rule.ID}).
		Updates(map[string]interface{}{
			"name":            rule.Name,
			"enabled":         rule.Enabled,
			"priority":        rule.Priority,
			"conditions":      rule.Conditions,
			"condition_logic": rule.ConditionLogic,
			"actions":         rule.Actions,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// Delete removes a rule
func (r *ruleRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.TransactionRule{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete rule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// IncrementMatchStats adds to the rule's match count and records the match time
// Called once per application run regardless of how many transactions matched
func (r *ruleRepository) IncrementMatchStats(id uuid.UUID, matchedCount int64, matchedAt time.Time) error {
	if matchedCount <= 0 {
		return nil
	}

	result := r.db.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.TransactionRule{ID: id}).
		Updates(map[string]interface{}{
			"match_count":  gorm.Expr("match_count + ?", matchedCount),
			"last_matched": matchedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update rule match stats: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}
