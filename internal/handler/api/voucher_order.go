package api

import (
	"net/http"

	resdto "gin-voucher-shop/internal/handler/dto/response"
	"gin-voucher-shop/internal/handler/httperr"
	"gin-voucher-shop/internal/pkg/errs"
	"gin-voucher-shop/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VoucherOrderHandler struct {
	cmds commands.VoucherOrderCommands
}

func NewVoucherOrderHandler(cmds commands.VoucherOrderCommands) *VoucherOrderHandler {
	return &VoucherOrderHandler{cmds: cmds}
}

var purchaseMessages = []struct {
	err error
	msg string
}{
	{commands.ErrVoucherNotFound, "Voucher not found"},
	{commands.ErrSaleNotStarted, "Flash sale has not started"},
	{commands.ErrSaleEnded, "Flash sale has ended"},
	{commands.ErrSoldOut, "Voucher sold out"},
	{commands.ErrAlreadyPurchased, "Voucher already purchased"},
	{commands.ErrDuplicateRequest, "Purchase already in progress"},
}

func purchaseMessage(err error) string {
	for _, m := range purchaseMessages {
		if errs.Is(err, m.err) {
			return m.msg
		}
	}
	return ""
}

// @Summary Purchase flash-sale voucher
// @Description Place a one-per-user order for a flash-sale voucher
// @Tags voucher-orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Voucher ID"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/voucher-orders/seckill/{id} [post]
func (h *VoucherOrderHandler) Purchase(c *gin.Context) {
	voucherID, err := parseID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	result, err := h.cmds.Purchase(c.Request.Context(), voucherID)
	if err != nil {
		httperr.Abort(c, err, purchaseMessage(err))
		return
	}
	c.JSON(http.StatusCreated, resdto.NewPurchaseResponse(result.OrderID))
}
