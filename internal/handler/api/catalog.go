package api

import (
	"errors"
	"net/http"

	reqdto "festserve/internal/handler/dto/request"
	resdto "festserve/internal/handler/dto/response"
	"festserve/internal/handler/httperr"
	"festserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{catalogCommands: catalogCommands}
}

// @Summary Create stall
// @Description Register a stall for a festival date
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CreateStallRequest true "Stall"
// @Success 201 {object} resdto.StallResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stalls [post]
func (h *CatalogHandler) CreateStall(c *gin.Context) {
	var req reqdto.CreateStallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateStall(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateStall):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Stall already exists for this location and date",
			})
		case errors.Is(err, commands.ErrInvalidStallDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stall date",
			})
		default:
			httperr.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromStallView(view))
}

// @Summary Create product
// @Description Register a product available for campaigns
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.catalogCommands.CreateProduct(c.Request.Context(), req)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}
