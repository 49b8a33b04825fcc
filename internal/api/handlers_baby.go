package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solenne/rebloom/internal/models"
)

func (handler *Handler) GetBabyProfile(c *fiber.Ctx) error {
	profile, ok := handler.service.Baby()
	if !ok {
		return apiError(c, fiber.StatusNotFound, "no baby profile")
	}
	return c.JSON(profile)
}

func (handler *Handler) CreateBabyProfile(c *fiber.Ctx) error {
	if _, exists := handler.service.Baby(); exists {
		return apiError(c, fiber.StatusConflict, "baby profile already exists")
	}

	profile := models.BabyProfile{}
	if err := c.BodyParser(&profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := profile.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	created := handler.service.SetBabyProfile(profile)
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) PatchBabyProfile(c *fiber.Ctx) error {
	if _, exists := handler.service.Baby(); !exists {
		return apiError(c, fiber.StatusNotFound, "no baby profile")
	}

	patch := models.BabyProfilePatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.service.UpdateBabyProfile(patch)
	profile, _ := handler.service.Baby()
	return c.JSON(profile)
}

func (handler *Handler) AddFeedingLog(c *fiber.Ctx) error {
	log := models.FeedingLog{}
	if err := c.BodyParser(&log); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := log.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if !handler.service.AddFeedingLog(log) {
		return apiError(c, fiber.StatusNotFound, "no baby profile")
	}
	profile, _ := handler.service.Baby()
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) AddDiaperLog(c *fiber.Ctx) error {
	log := models.DiaperLog{}
	if err := c.BodyParser(&log); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := log.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if !handler.service.AddDiaperLog(log) {
		return apiError(c, fiber.StatusNotFound, "no baby profile")
	}
	profile, _ := handler.service.Baby()
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (handler *Handler) AddTemperatureLog(c *fiber.Ctx) error {
	log := models.TemperatureLog{}
	if err := c.BodyParser(&log); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := log.Validate(); err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if !handler.service.AddTemperatureLog(log) {
		return apiError(c, fiber.StatusNotFound, "no baby profile")
	}
	profile, _ := handler.service.Baby()
	return c.Status(fiber.StatusCreated).JSON(profile)
}
