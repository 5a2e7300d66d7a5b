package controller

import (
	"property-assistant-be/internal/pkg/serverutils"
	"property-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDirectoryController interface {
	RegisterRoutes(r fiber.Router)
	GetAllUsers(ctx *fiber.Ctx) error
	GetAllRentalSearches(ctx *fiber.Ctx) error
	GetAllRentalMatches(ctx *fiber.Ctx) error
	GetAllRepairRequests(ctx *fiber.Ctx) error
}

type directoryController struct {
	directoryService service.IDirectoryService
}

func NewDirectoryController(directoryService service.IDirectoryService) IDirectoryController {
	return &directoryController{
		directoryService: directoryService,
	}
}

func (c *directoryController) RegisterRoutes(r fiber.Router) {
	r.Get("/users", c.GetAllUsers)
	r.Get("/rental-searches", c.GetAllRentalSearches)
	r.Get("/rental-matches", c.GetAllRentalMatches)
	r.Get("/repairs", c.GetAllRepairRequests)
}

func (c *directoryController) GetAllUsers(ctx *fiber.Ctx) error {
	res, err := c.directoryService.GetAllUsers(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get users", res))
}

func (c *directoryController) GetAllRentalSearches(ctx *fiber.Ctx) error {
	res, err := c.directoryService.GetAllRentalSearches(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get rental searches", res))
}

func (c *directoryController) GetAllRentalMatches(ctx *fiber.Ctx) error {
	res, err := c.directoryService.GetAllRentalMatches(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get rental matches", res))
}

func (c *directoryController) GetAllRepairRequests(ctx *fiber.Ctx) error {
	res, err := c.directoryService.GetAllRepairRequests(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get repair requests", res))
}
