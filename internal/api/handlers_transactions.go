package api

import (
	"strconv"
	"time"

	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/gofiber/fiber/v2"
)

type transactionPayload struct {
	Day      string  `json:"date"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

func (handler *Handler) ListTransactions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" && to == "" {
		transactions, err := handler.repos.Transactions.ListByUser(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch transactions")
		}
		return c.JSON(transactions)
	}

	fromDay, valid := parseDayParam(from, "0000-01-01")
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	toDay, valid := parseDayParam(to, handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	transactions, err := handler.repos.Transactions.ListByUserRange(user.ID, fromDay, toDay)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch transactions")
	}
	return c.JSON(transactions)
}

func (handler *Handler) CreateTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := transactionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	day, valid := parseDayParam(payload.Day, handler.today())
	if !valid {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if payload.Type != models.TransactionIncome && payload.Type != models.TransactionExpense {
		return apiError(c, fiber.StatusBadRequest, "type must be income or expense")
	}
	if payload.Amount <= 0 {
		return apiError(c, fiber.StatusBadRequest, "amount must be positive")
	}

	transaction := models.Transaction{
		UserID:    user.ID,
		Day:       day,
		Type:      payload.Type,
		Amount:    payload.Amount,
		Category:  payload.Category,
		Note:      payload.Note,
		CreatedAt: time.Now().In(handler.location),
	}
	if err := handler.repos.Transactions.Create(&transaction); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (handler *Handler) DeleteTransaction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	transactionID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid transaction id")
	}
	if err := handler.repos.Transactions.DeleteByUserAndID(user.ID, uint(transactionID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete transaction")
	}
	return c.JSON(fiber.Map{"ok": true})
}
