package response

import "strconv"

// PurchaseResponse carries the order id as a string as well; it does not
// fit in a JavaScript number.
type PurchaseResponse struct {
	OrderID    int64  `json:"order_id"`
	OrderIDStr string `json:"order_id_str"`
}

func NewPurchaseResponse(orderID int64) PurchaseResponse {
	return PurchaseResponse{
		OrderID:    orderID,
		OrderIDStr: strconv.FormatInt(orderID, 10),
	}
}
