package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-service/internal/dto"
	"quiz-service/internal/service"
)

type OptionController struct {
	optionService service.OptionService
}

func NewOptionController(optionService service.OptionService) *OptionController {
	return &OptionController{optionService: optionService}
}

// GetOptionByID godoc
// @Summary Get an option by ID
// @Tags options
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {object} model.Option
// @Failure 404 {object} dto.ErrorResponse
// @Router /options/{id} [get]
func (ctrl *OptionController) GetOptionByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	option, err := ctrl.optionService.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

// CreateOption godoc
// @Summary Create an option for a question
// @Tags options
// @Accept json
// @Produce json
// @Param option body dto.OptionDTO true "Option data"
// @Success 201 {object} model.Option
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.IntegrityErrorResponse "Duplicate letter or text within the question"
// @Router /options [post]
func (ctrl *OptionController) CreateOption(c *gin.Context) {
	var req dto.OptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	option, err := ctrl.optionService.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, option)
}

// UpdateOption godoc
// @Summary Update an option's text and letter
// @Tags options
// @Accept json
// @Produce json
// @Param id path int true "Option ID"
// @Param option body dto.OptionDTO true "Option data"
// @Success 200 {object} model.Option
// @Failure 404 {object} dto.ErrorResponse
// @Router /options/{id} [patch]
func (ctrl *OptionController) UpdateOption(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.OptionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	option, err := ctrl.optionService.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, option)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags options
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /options/{id} [delete]
func (ctrl *OptionController) DeleteOption(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.optionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Option deleted successfully"})
}
