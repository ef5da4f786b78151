package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halaqat/domain"
	"halaqat/dto"
	"halaqat/utils"
)

type QuranErrorHandler struct {
	errorUC domain.QuranErrorUseCase
}

func NewQuranErrorHandler(r *gin.Engine, errorUC domain.QuranErrorUseCase) {
	handler := &QuranErrorHandler{errorUC: errorUC}

	r.GET("/api/students/:studentId/quran-errors", handler.GetQuranErrorsByStudent)
	r.POST("/api/quran-errors", handler.CreateQuranError)
	r.DELETE("/api/quran-errors/:errorId", handler.DeleteQuranError)
}

func (h *QuranErrorHandler) GetQuranErrorsByStudent(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	quranErrors := h.errorUC.GetQuranErrorsByStudent(c.Request.Context(), c.Param("studentId"))

	utils.PrintLogInfo(&name, 200, "GetQuranErrorsByStudent", nil)
	c.JSON(http.StatusOK, quranErrors)
}

func (h *QuranErrorHandler) CreateQuranError(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var req dto.CreateQuranErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(&name, 400, "CreateQuranError", &err)
		c.JSON(http.StatusBadRequest, gin.H{"message": utils.TranslateValidationError(err)})
		return
	}

	payload := dto.MapCreateQuranErrorRequest(&req)
	quranError, err := h.errorUC.CreateQuranError(c.Request.Context(), &payload)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "CreateQuranError", &err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": utils.TranslateDBError(err)})
		return
	}

	utils.PrintLogInfo(&name, 201, "CreateQuranError", nil)
	c.JSON(http.StatusCreated, quranError)
}

func (h *QuranErrorHandler) DeleteQuranError(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	if !h.errorUC.DeleteQuranError(c.Request.Context(), c.Param("errorId")) {
		utils.PrintLogInfo(&name, 404, "DeleteQuranError", nil)
		c.JSON(http.StatusNotFound, gin.H{"message": "العلامة غير موجودة"})
		return
	}

	utils.PrintLogInfo(&name, 200, "DeleteQuranError", nil)
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف العلامة بنجاح"})
}
