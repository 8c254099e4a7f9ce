// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studysync/backend/internal/application/usecase/budget"
	domainerror "github.com/studysync/backend/internal/domain/error"
	"github.com/studysync/backend/internal/integration/entrypoint/dto"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget transaction and limit endpoints.
type BudgetController struct {
	createTransactionUseCase *budget.CreateTransactionUseCase
	listTransactionsUseCase  *budget.ListTransactionsUseCase
	deleteTransactionUseCase *budget.DeleteTransactionUseCase
	setLimitUseCase          *budget.SetLimitUseCase
	listLimitsUseCase        *budget.ListLimitsUseCase
	deleteLimitUseCase       *budget.DeleteLimitUseCase
	getOverviewUseCase       *budget.GetOverviewUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createTransactionUseCase *budget.CreateTransactionUseCase,
	listTransactionsUseCase *budget.ListTransactionsUseCase,
	deleteTransactionUseCase *budget.DeleteTransactionUseCase,
	setLimitUseCase *budget.SetLimitUseCase,
	listLimitsUseCase *budget.ListLimitsUseCase,
	deleteLimitUseCase *budget.DeleteLimitUseCase,
	getOverviewUseCase *budget.GetOverviewUseCase,
) *BudgetController {
	return &BudgetController{
		createTransactionUseCase: createTransactionUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		deleteTransactionUseCase: deleteTransactionUseCase,
		setLimitUseCase:          setLimitUseCase,
		listLimitsUseCase:        listLimitsUseCase,
		deleteLimitUseCase:       deleteLimitUseCase,
		getOverviewUseCase:       getOverviewUseCase,
	}
}

// CreateTransaction handles POST /budget/transactions requests.
func (c *BudgetController) CreateTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	input := budget.CreateTransactionInput{
		UserID:      userID,
		Date:        req.Date,
		Category:    req.Category,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
	}

	output, err := c.createTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// ListTransactions handles GET /budget/transactions requests.
// Query params: start_date, end_date, category, type, search (all optional).
func (c *BudgetController) ListTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := budget.ListTransactionsInput{
		UserID:   userID,
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		input.StartDate = &startDate
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		input.EndDate = &endDate
	}
	if txType := ctx.Query("type"); txType != "" {
		input.Type = &txType
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.Totals))
}

// DeleteTransaction handles DELETE /budget/transactions/:id requests.
func (c *BudgetController) DeleteTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.deleteTransactionUseCase.Execute(ctx.Request.Context(), budget.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// SetLimit handles PUT /budget/limits requests.
// Setting a limit for a category that already has one replaces it.
func (c *BudgetController) SetLimit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.SetLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.setLimitUseCase.Execute(ctx.Request.Context(), budget.SetLimitInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
		Period:   req.Period,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitResponse(output.Limit))
}

// ListLimits handles GET /budget/limits requests.
func (c *BudgetController) ListLimits(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listLimitsUseCase.Execute(ctx.Request.Context(), budget.ListLimitsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	limits := make([]dto.LimitResponse, len(output.Limits))
	for i, limit := range output.Limits {
		limits[i] = dto.ToLimitResponse(limit)
	}

	ctx.JSON(http.StatusOK, dto.LimitListResponse{Limits: limits})
}

// DeleteLimit handles DELETE /budget/limits/:category requests.
func (c *BudgetController) DeleteLimit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	category := ctx.Param("category")
	if category == "" {
		respondInvalidID(ctx)
		return
	}

	output, err := c.deleteLimitUseCase.Execute(ctx.Request.Context(), budget.DeleteLimitInput{
		UserID:   userID,
		Category: category,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// GetOverview handles GET /budget/overview requests.
// Query params: start_date, end_date (optional; omitting both serves the cached view).
func (c *BudgetController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := budget.GetOverviewInput{
		UserID: userID,
	}
	if startDate := ctx.Query("start_date"); startDate != "" {
		input.StartDate = &startDate
	}
	if endDate := ctx.Query("end_date"); endDate != "" {
		input.EndDate = &endDate
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output.Aggregate, output.OverBudget))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.getStatusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var attendanceErr *domainerror.AttendanceError
	if errors.As(err, &attendanceErr) {
		// Date parsing shares the attendance error codes
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: attendanceErr.Message,
			Code:  string(attendanceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound, domainerror.ErrCodeLimitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
