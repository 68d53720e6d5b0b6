// File: handlers/payment.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/models"
	"tutorhive/services/payment"
	"tutorhive/utils"
)

// PaymentHandler exposes lesson-payment and dispute endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateLessonPaymentHandler opens a payment intent for one lesson.
func (h *PaymentHandler) CreateLessonPaymentHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.LessonPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.CreateLessonPayment(c.Request.Context(), userID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create lesson payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ConfirmLessonPaymentHandler marks a completed payment succeeded.
func (h *PaymentHandler) ConfirmLessonPaymentHandler(c *gin.Context) {
	userID := c.GetString("userID")
	transactionID := c.Param("id")

	txn, err := h.Service.ConfirmLessonPayment(c.Request.Context(), userID, transactionID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, payment.ErrNotTransactionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Transaction belongs to another user"})
		default:
			utils.GetLogger().Error("Failed to confirm payment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm payment", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}

// ListTransactionsHandler returns the student's payment history.
func (h *PaymentHandler) ListTransactionsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	txns, err := h.Service.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// OpenDisputeHandler opens a dispute against a paid lesson.
func (h *PaymentHandler) OpenDisputeHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.OpenDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dispute, err := h.Service.OpenDispute(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, payment.ErrNotTransactionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Transaction belongs to another user"})
		case errors.Is(err, payment.ErrNotDisputable):
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction cannot be disputed"})
		default:
			utils.GetLogger().Error("Failed to open dispute", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open dispute"})
		}
		return
	}

	c.JSON(http.StatusCreated, dispute)
}

// SubmitDisputeNoteHandler appends evidence to an open dispute. The author may
// be the student or the tutor; middleware sets the matching context key.
func (h *PaymentHandler) SubmitDisputeNoteHandler(c *gin.Context) {
	authorID := c.GetString("userID")
	if authorID == "" {
		authorID = c.GetString("tutorID")
	}
	disputeID := c.Param("id")

	var req models.DisputeNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dispute, err := h.Service.SubmitDisputeNote(c.Request.Context(), authorID, disputeID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrDisputeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Dispute not found"})
		case errors.Is(err, payment.ErrDisputeClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Dispute is already closed"})
		default:
			utils.GetLogger().Error("Failed to submit dispute note", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit note"})
		}
		return
	}

	c.JSON(http.StatusOK, dispute)
}

// ResolveDisputeHandler settles an open dispute (admin only).
func (h *PaymentHandler) ResolveDisputeHandler(c *gin.Context) {
	disputeID := c.Param("id")

	var req models.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dispute, err := h.Service.ResolveDispute(c.Request.Context(), disputeID, req.Outcome)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrDisputeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Dispute not found"})
		case errors.Is(err, payment.ErrDisputeClosed):
			c.JSON(http.StatusConflict, gin.H{"error": "Dispute is already closed"})
		case errors.Is(err, payment.ErrUnknownOutcome):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Outcome must be refund or dismiss"})
		default:
			utils.GetLogger().Error("Failed to resolve dispute", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve dispute", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dispute)
}
