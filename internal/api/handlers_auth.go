package api

import (
	"time"

	"github.com/ascent-tracker/ascent/internal/db"
	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/ascent-tracker/ascent/internal/security"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type credentialsInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	RememberMe      bool   `json:"remember_me"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code"`
}

type resetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SetupStatus tells a fresh client whether the single owner account exists
// yet; registration is only open before first setup.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	count, err := handler.repos.Users.Count()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"needs_setup": count == 0})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateRegistration(credentials.Email, credentials.Password, credentials.ConfirmPassword); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	count, err := handler.repos.Users.Count()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if count > 0 {
		return apiError(c, fiber.StatusConflict, "account already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, err := security.NewRecoveryCode()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:            credentials.Email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: string(recoveryHash),
		GoalSteps:        models.DefaultGoalSteps,
		GoalWater:        models.DefaultGoalWater,
		GoalSleep:        models.DefaultGoalSleep,
		GoalPages:        models.DefaultGoalPages,
		GoalPushups:      models.DefaultGoalPushups,
		GoalSquats:       models.DefaultGoalSquats,
		FocusHabit:       models.DefaultFocusHabit,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.repos.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "account already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	// The plain recovery code is shown exactly once, at registration.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"email":         user.Email,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.repos.Users.FindByEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"email": user.Email})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// ForgotPassword trades a valid recovery code for a short-lived reset token.
// The response is identical for unknown codes and missing accounts.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !recoveryCodeRegex.MatchString(input.RecoveryCode) {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	user, err := handler.repos.Users.FindOwner()
	if err != nil {
		if db.IsNotFound(err) {
			return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to verify recovery code")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.RecoveryCodeHash), []byte(input.RecoveryCode)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	token, err := handler.createResetToken(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}
	return c.JSON(fiber.Map{"reset_token": token})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validatePassword(input.Password); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	if input.Password != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	userID, err := handler.parseResetToken(input.Token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}
	user, err := handler.repos.Users.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	user.PasswordHash = string(passwordHash)
	if err := handler.repos.Users.Save(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	if err := handler.setAuthCookie(c, user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}
