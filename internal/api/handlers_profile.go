package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
	"go.uber.org/zap"
)

type profileInput struct {
	Name                string `json:"name"`
	DeliveryDate        string `json:"deliveryDate"`
	DeliveryType        string `json:"deliveryType"`
	Language            string `json:"language"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
	PINEnabled          bool   `json:"pinEnabled"`
	PIN                 string `json:"pin"`
}

type profilePatchInput struct {
	models.UserProfilePatch
	PIN *string `json:"pin"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, ok := handler.service.Profile()
	if !ok {
		return apiError(c, fiber.StatusNotFound, "no profile")
	}
	return c.JSON(profile)
}

// CreateProfile handles the onboarding submit. A raw PIN in the
// payload is hashed before anything touches the store.
func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	if _, exists := handler.service.Profile(); exists {
		return apiError(c, fiber.StatusConflict, "profile already exists")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile := models.UserProfile{
		Name:                strings.TrimSpace(input.Name),
		DeliveryDate:        strings.TrimSpace(input.DeliveryDate),
		DeliveryType:        strings.TrimSpace(input.DeliveryType),
		Language:            strings.TrimSpace(input.Language),
		OnboardingCompleted: input.OnboardingCompleted,
		PINEnabled:          input.PINEnabled,
	}
	if err := profile.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if input.PINEnabled {
		pin := strings.TrimSpace(input.PIN)
		if pin == "" {
			return apiError(c, fiber.StatusBadRequest, "missing pin")
		}
		hash, err := HashPIN(pin)
		if err != nil {
			handler.log.Error("hash pin", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to set pin")
		}
		profile.PINHash = hash
	}

	created := handler.service.SetUserProfile(profile)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) PatchProfile(c *fiber.Ctx) error {
	if _, exists := handler.service.Profile(); !exists {
		return apiError(c, fiber.StatusNotFound, "no profile")
	}

	input := profilePatchInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patch := input.UserProfilePatch
	patch.PINHash = nil
	if input.PIN != nil {
		pin := strings.TrimSpace(*input.PIN)
		if pin == "" {
			return apiError(c, fiber.StatusBadRequest, "missing pin")
		}
		hash, err := HashPIN(pin)
		if err != nil {
			handler.log.Error("hash pin", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "failed to set pin")
		}
		patch.PINHash = &hash
	}

	handler.service.UpdateUserProfile(patch)
	profile, _ := handler.service.Profile()
	return c.JSON(profile)
}
