package controllers

import (
	"net/http"
	"time"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Transactions *services.TransactionService
}

func NewTransactionController(transactions *services.TransactionService) *TransactionController {
	return &TransactionController{Transactions: transactions}
}

func (tc *TransactionController) GetTransactions(c *gin.Context) {
	list, err := tc.Transactions.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (tc *TransactionController) GetTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	txn, err := tc.Transactions.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, txn)
}

type transactionPayload struct {
	ReservationID   *uint   `json:"reservation_id"`
	Amount          float64 `json:"amount" binding:"required"`
	TransactionDate string  `json:"transaction_date"`
	Description     string  `json:"description" binding:"required"`
}

// CreateTransaction records an ad-hoc charge such as a minibar bill or a
// damage fee.
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	var payload transactionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var transactionDate time.Time
	if payload.TransactionDate != "" {
		parsed, err := utils.ParseDate(payload.TransactionDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		transactionDate = parsed
	}

	txn, err := tc.Transactions.Create(payload.ReservationID, payload.Amount, transactionDate, payload.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, txn)
}

// DeleteTransaction is admin-only; the route carries AdminMiddleware.
func (tc *TransactionController) DeleteTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := tc.Transactions.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
