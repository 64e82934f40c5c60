package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "apgi_backend/internals/databases"
	"apgi_backend/internals/features/company/kontak/dto"
	"apgi_backend/internals/features/company/kontak/model"
	helper "apgi_backend/internals/helpers"
)

var validateKontak = helper.NewValidator()

type KontakController struct {
	DB *gorm.DB
}

func NewKontakController(db *gorm.DB) *KontakController {
	return &KontakController{DB: db}
}

func (ctrl *KontakController) GetKontak(c *fiber.Ctx) error {
	var row model.KontakModel
	found, err := database.FindSingleton(c.UserContext(), ctrl.DB, &row)
	if err != nil {
		return err
	}
	return helper.JsonRowOrEmpty(c, found, row)
}

func (ctrl *KontakController) UpdateKontak(c *fiber.Ctx) error {
	var req dto.UpdateKontakRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateKontak.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	row.ID = database.SingletonID
	if err := database.UpsertSingleton(c.UserContext(), ctrl.DB, row); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Kontak updated successfully")
}
