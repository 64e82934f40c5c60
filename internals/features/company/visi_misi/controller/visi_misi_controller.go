package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"apgi_backend/internals/features/company/visi_misi/dto"
	"apgi_backend/internals/features/company/visi_misi/repository"
	helper "apgi_backend/internals/helpers"
)

var validateVisiMisi = helper.NewValidator()

type VisiMisiController struct {
	DB *gorm.DB
}

func NewVisiMisiController(db *gorm.DB) *VisiMisiController {
	return &VisiMisiController{DB: db}
}

// GET /api/visi-misi
func (ctrl *VisiMisiController) GetVisiMisi(c *fiber.Ctx) error {
	row, found, err := repository.GetVisiMisi(c.UserContext(), ctrl.DB)
	if err != nil {
		return err
	}
	return helper.JsonRowOrEmpty(c, found, row)
}

// PUT /api/admin/visi-misi (JSON)
func (ctrl *VisiMisiController) UpdateVisiMisi(c *fiber.Ctx) error {
	var req dto.UpdateVisiMisiRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validateVisiMisi.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := repository.ReplaceVisiMisi(c.UserContext(), ctrl.DB, req.Visi, req.Texts()); err != nil {
		return err
	}
	return helper.JsonMessage(c, "Visi Misi updated successfully")
}
