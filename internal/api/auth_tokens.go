package api

import (
	"errors"
	"time"

	"github.com/ascent-tracker/ascent/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
	resetTokenTTL        = 15 * time.Minute

	purposePasswordReset = "password_reset"
)

var errInvalidToken = errors.New("invalid token")

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type resetClaims struct {
	UserID  uint   `json:"uid"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func (handler *Handler) createAuthToken(user *models.User, ttl time.Duration) (string, error) {
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, remember bool) error {
	ttl := defaultAuthTokenTTL
	if remember {
		ttl = rememberAuthTokenTTL
	}
	token, err := handler.createAuthToken(user, ttl)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	raw := c.Cookies(authCookieName)
	if raw == "" {
		return nil, errInvalidToken
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	user, err := handler.repos.Users.FindByID(claims.UserID)
	if err != nil {
		return nil, errInvalidToken
	}
	return user, nil
}

func (handler *Handler) createResetToken(user *models.User) (string, error) {
	claims := resetClaims{
		UserID:  user.ID,
		Purpose: purposePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

func (handler *Handler) parseResetToken(raw string) (uint, error) {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid || claims.Purpose != purposePasswordReset {
		return 0, errInvalidToken
	}
	return claims.UserID, nil
}
