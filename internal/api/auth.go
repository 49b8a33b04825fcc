package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionSubject = "owner"

var errInvalidSessionToken = errors.New("invalid session token")

type unlockInput struct {
	PIN string `json:"pin"`
}

// Unlock verifies the profile PIN and issues the session cookie. The
// endpoint is rate limited per client to slow brute force on a short
// numeric code.
func (handler *Handler) Unlock(c *fiber.Ctx) error {
	profile, ok := handler.service.Profile()
	if !ok || !profile.PINEnabled || profile.PINHash == "" {
		return apiError(c, fiber.StatusConflict, "pin lock is not enabled")
	}

	input := unlockInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	input.PIN = strings.TrimSpace(input.PIN)
	if input.PIN == "" {
		return apiError(c, fiber.StatusBadRequest, "missing pin")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.pinLimiter.tooManyRecent(limiterKey, now, pinAttemptLimit, pinAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PINHash), []byte(input.PIN)) != nil {
		handler.pinLimiter.addFailure(limiterKey, now, pinAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "incorrect pin")
	}

	handler.pinLimiter.reset(limiterKey)
	if err := handler.setSessionCookie(c); err != nil {
		handler.log.Error("issue session token", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Lock(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// PinRequired guards the data routes. When no profile exists yet, or
// the profile has no PIN lock, everything passes through.
func (handler *Handler) PinRequired(c *fiber.Ctx) error {
	profile, ok := handler.service.Profile()
	if !ok || !profile.PINEnabled || profile.PINHash == "" {
		return c.Next()
	}

	token := strings.TrimSpace(c.Cookies(sessionCookieName))
	if token == "" || handler.verifySessionToken(token) != nil {
		return apiError(c, fiber.StatusUnauthorized, "locked")
	}
	return c.Next()
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(sessionTokenTTL),
	})
	return nil
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) verifySessionToken(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidSessionToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return errInvalidSessionToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != sessionSubject {
		return errInvalidSessionToken
	}
	return nil
}

// HashPIN converts a raw PIN into its stored bcrypt form.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
