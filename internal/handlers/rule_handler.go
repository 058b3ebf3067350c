package handlers

import (
	stderrors "errors"
	"net/http"

	"bankrules/internal/dto"
	"bankrules/internal/errors"
	"bankrules/internal/models"
	"bankrules/internal/repositories"
	"bankrules/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RuleHandler handles transaction rule HTTP requests
type RuleHandler struct {
	ruleRepo repositories.RuleRepositoryInterface
	applier  services.RuleApplicationServiceInterface
}

// NewRuleHandler creates a new rule handler
func NewRuleHandler(
	ruleRepo repositories.RuleRepositoryInterface,
	applier services.RuleApplicationServiceInterface,
) *RuleHandler {
	return &RuleHandler{
		ruleRepo: ruleRepo,
		applier:  applier,
	}
}

// ListRules returns all rules owned by the authenticated user
// @Summary List rules
// @Description Retrieve the user's transaction rules in evaluation order
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListRulesResponse "Rules in evaluation order"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules [get]
func (h *RuleHandler) ListRules(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	rules, err := h.ruleRepo.GetByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListRulesResponse{
		Rules: rules,
		Total: len(rules),
	})
}

// CreateRule validates and stores a new rule
// @Summary Create rule
// @Description Create a transaction rule; malformed rules are rejected before persistence
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Rule definition"
// @Success 201 {object} models.TransactionRule "Created rule"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "RULE_002..RULE_006 - Invalid rule definition"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules [post]
func (h *RuleHandler) CreateRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	logic := req.ConditionLogic
	if logic == "" {
		logic = models.ConditionLogicAnd
	}

	rule := &models.TransactionRule{
		UserID:         userID,
		Name:           req.Name,
		Enabled:        enabled,
		Priority:       req.Priority,
		Conditions:     req.Conditions,
		ConditionLogic: logic,
		Actions:        req.Actions,
	}

	if code, ok := ruleValidationCode(rule); !ok {
		return SendError(c, code, errors.WithDetails(rule.Validate().Error()))
	}

	if err := h.ruleRepo.Create(rule); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, rule)
}

// UpdateRule applies a partial update to an existing rule
// @Summary Update rule
// @Description Update rule fields; omitted fields are left unchanged
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param request body dto.UpdateRuleRequest true "Fields to update"
// @Success 200 {object} models.TransactionRule "Updated rule"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid rule ID or invalid definition"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "RULE_007 - Rule belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules/{id} [put]
func (h *RuleHandler) UpdateRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	var req dto.UpdateRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	rule, err := h.ruleRepo.GetByID(ruleID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrRuleNotFound) {
			return SendError(c, errors.RuleNotFound)
		}
		return SendSystemError(c, err)
	}
	if rule.UserID != userID {
		return SendError(c, errors.RuleNotOwned)
	}

	if req.Name != nil {
		rule.Name = *req.Name
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.Conditions != nil {
		rule.Conditions = *req.Conditions
	}
	if req.ConditionLogic != nil {
		rule.ConditionLogic = *req.ConditionLogic
	}
	if req.Actions != nil {
		rule.Actions = *req.Actions
	}
	if rule.ConditionLogic == "" {
		rule.ConditionLogic = models.ConditionLogicAnd
	}

	if code, ok := ruleValidationCode(rule); !ok {
		return SendError(c, code, errors.WithDetails(rule.Validate().Error()))
	}

	if err := h.ruleRepo.Update(rule); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, rule)
}

// DeleteRule removes a rule
// @Summary Delete rule
// @Description Delete a rule owned by the authenticated user
// @Tags Rules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 204 "Rule deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid rule ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "RULE_007 - Rule belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules/{id} [delete]
func (h *RuleHandler) DeleteRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	rule, err := h.ruleRepo.GetByID(ruleID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrRuleNotFound) {
			return SendError(c, errors.RuleNotFound)
		}
		return SendSystemError(c, err)
	}
	if rule.UserID != userID {
		return SendError(c, errors.RuleNotOwned)
	}

	if err := h.ruleRepo.Delete(ruleID); err != nil {
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TestRule dry-runs a rule definition without saving it
// @Summary Test rule
// @Description Evaluate an unsaved rule definition against the user's transactions; nothing is persisted
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TestRuleRequest true "Rule definition to test"
// @Success 200 {object} dto.RuleApplicationResult "Evaluation result with sample of matched transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "RULE_002..RULE_006 - Invalid rule definition"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules/test [post]
func (h *RuleHandler) TestRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TestRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.applier.TestRule(userID, &req)
	if err != nil {
		if code, ok := ruleErrorCode(err); ok {
			return SendError(c, code, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ApplyRule applies a stored rule in bulk
// @Summary Apply rule
// @Description Apply a stored rule to the user's transactions; dry runs report changes without persisting them
// @Tags Rules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param request body dto.ApplyRuleRequest true "Application options"
// @Success 200 {object} dto.RuleApplicationResult "Application result"
// @Success 207 {object} dto.RuleApplicationResult "Completed with per-transaction action errors"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid rule ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "RULE_007 - Rule belongs to another user"
// @Failure 404 {object} errors.ErrorResponse "RULE_001 - Rule not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /rules/{id}/apply [post]
func (h *RuleHandler) ApplyRule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ruleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rule ID"))
	}

	var req dto.ApplyRuleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	result, err := h.applier.ApplyRule(userID, ruleID, &req)
	if err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrRuleNotFound):
			return SendError(c, errors.RuleNotFound)
		case stderrors.Is(err, services.ErrRuleNotOwned):
			return SendError(c, errors.RuleNotOwned)
		default:
			return SendSystemError(c, err)
		}
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	return c.JSON(status, result)
}

// ruleValidationCode maps a rule's Validate failure onto the RULE error codes.
// The bool result is true when the rule is valid.
func ruleValidationCode(rule *models.TransactionRule) (errors.ErrorCode, bool) {
	err := rule.Validate()
	if err == nil {
		return "", true
	}
	code, _ := ruleErrorCode(err)
	return code, false
}

func ruleErrorCode(err error) (errors.ErrorCode, bool) {
	switch {
	case stderrors.Is(err, models.ErrRuleHasNoConditions):
		return errors.RuleNoConditions, true
	case stderrors.Is(err, models.ErrRuleHasNoActions):
		return errors.RuleNoActions, true
	case stderrors.Is(err, models.ErrUnknownConditionLogic):
		return errors.RuleInvalidLogic, true
	case stderrors.Is(err, models.ErrUnknownConditionField),
		stderrors.Is(err, models.ErrUnknownOperator):
		return errors.RuleInvalidCondition, true
	case stderrors.Is(err, models.ErrUnknownActionType),
		stderrors.Is(err, models.ErrActionValueMismatch):
		return errors.RuleInvalidAction, true
	case stderrors.Is(err, models.ErrRuleMissingName),
		stderrors.Is(err, models.ErrRuleMissingUserID):
		return errors.ValidationRequiredField, true
	}
	return errors.ValidationGeneral, false
}
