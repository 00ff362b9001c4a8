package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "gin-voucher-shop/internal/handler/dto/request"
	resdto "gin-voucher-shop/internal/handler/dto/response"
	"gin-voucher-shop/internal/handler/httperr"
	"gin-voucher-shop/internal/usecase/commands"
	"gin-voucher-shop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errEmptyUpdate = errors.New("update request has no fields")

type ShopHandler struct {
	cmds commands.ShopCommands
	q    queries.ShopQueries
}

func NewShopHandler(cmds commands.ShopCommands, q queries.ShopQueries) *ShopHandler {
	return &ShopHandler{cmds: cmds, q: q}
}

// @Summary Get shop
// @Description Get a shop by ID through the shop cache
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Shop not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopRM(view))
}

// @Summary Update shop
// @Description Update a shop and evict its cache entry
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Shop ID"
// @Param request body reqdto.UpdateShopRequest true "Update shop request"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateShopRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, errEmptyUpdate, "Nothing to update", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err, "")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load shop")
		return
	}
	c.JSON(http.StatusOK, resdto.FromShopRM(view))
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
