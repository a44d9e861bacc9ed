package order

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xstarhost/rdp-store-backend/internal/user"
)

// Handler delegates order operations to the order service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/orders", h.getOrders)
	app.Get("/api/orders/:id", h.getOrder)
	app.Post("/api/orders", h.createOrder)
	app.Patch("/api/orders/:id/status", h.updateStatus)
}

type orderItemRequest struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// createOrderRequest carries the cart snapshot. The client may echo a total
// but the orchestrator always recomputes it from the items.
type createOrderRequest struct {
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemRequest `json:"items"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	items := make([]Item, 0, len(payload.Items))
	for _, it := range payload.Items {
		if it.ProductID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "item productId is required"})
		}
		items = append(items, Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}

	result, err := h.service.Checkout(caller.ID, caller.Email, items, payload.PaymentMethod)
	if err != nil {
		switch err {
		case ErrEmptyCart, ErrInvalidQuantity, ErrUnknownPaymentMethod:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrPaymentDeclined:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "payment processing failed"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create order"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	var orders []Order
	if caller.IsAdmin {
		orders, err = h.service.List()
	} else {
		orders, err = h.service.ListByUser(caller.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch orders"})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch order"})
		}
	}

	if !caller.IsAdmin && ord.UserID != caller.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "access denied"})
	}
	return c.JSON(ord)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.OverrideStatus(c.Params("id"), payload.Status)
	if err != nil {
		switch err {
		case ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to update order status"})
		}
	}
	return c.JSON(ord)
}
