package product

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xstarhost/rdp-store-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	app.Get("/api/products/:id", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products", h.createProduct)
	app.Delete("/api/products/:id", h.deleteProduct)
	app.Post("/api/admin/seed", h.seedProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch products"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch product"})
		}
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price.IsNegative() || p.PriceINR.IsNegative() {
		errs["price"] = "price must be >= 0"
	}
	valid := false
	for _, cat := range AllowedCategories {
		if p.Category == cat {
			valid = true
			break
		}
	}
	if !valid {
		errs["category"] = "invalid category"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}

	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if errs := validateProductPayload(p); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product data", "errors": errs})
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create product"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}

	if err := h.service.Archive(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to delete product"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) seedProducts(c *fiber.Ctx) error {
	caller, err := user.GetUserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if !caller.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin access required"})
	}

	created := h.service.Seed(DefaultPlans())
	return c.JSON(fiber.Map{"message": "products seeded successfully", "products": created})
}
