package api

import (
	"errors"

	"github.com/ascent-tracker/ascent/internal/security"
	"github.com/ascent-tracker/ascent/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type settingsPayload struct {
	Goals      services.Goals `json:"goals"`
	FocusHabit string         `json:"focusHabit"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{
		"email":      user.Email,
		"goals":      services.GoalsForUser(user),
		"focusHabit": user.FocusHabit,
	})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := settingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := services.ValidateSettings(payload.Goals, payload.FocusHabit); err != nil {
		switch {
		case errors.Is(err, services.ErrNonPositiveGoal):
			return apiError(c, fiber.StatusBadRequest, "goals must be positive")
		case errors.Is(err, services.ErrGoalOutOfRange):
			return apiError(c, fiber.StatusBadRequest, "goal out of range")
		case errors.Is(err, services.ErrUnknownFocusHabit):
			return apiError(c, fiber.StatusBadRequest, "unknown focus habit")
		default:
			return apiError(c, fiber.StatusBadRequest, "invalid settings")
		}
	}

	services.ApplySettings(user, payload.Goals, payload.FocusHabit)
	if err := handler.repos.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(fiber.Map{
		"goals":      services.GoalsForUser(user),
		"focusHabit": user.FocusHabit,
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "current password is incorrect")
	}
	if message := validatePassword(input.NewPassword); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	user.PasswordHash = string(passwordHash)
	if err := handler.repos.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RegenerateRecoveryCode replaces the stored recovery code. The new plain
// code is returned once and never again.
func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "password is incorrect")
	}

	recoveryCode, err := security.NewRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	user.RecoveryCodeHash = string(recoveryHash)
	if err := handler.repos.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save recovery code")
	}
	return c.JSON(fiber.Map{"recovery_code": recoveryCode})
}

// ClearData wipes all logged data but keeps the account and its settings.
func (handler *Handler) ClearData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "password is incorrect")
	}

	if err := handler.repos.Users.ClearData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "password is incorrect")
	}

	if err := handler.repos.Users.DeleteWithData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
