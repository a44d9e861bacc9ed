package user

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithUserHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v, "email": v + "@example.com"}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestRegisterAndLogin(t *testing.T) {
	handler := NewHandler(NewService(NewInMemoryRepository(nil)))
	app := makeAppWithUserHandler(handler)

	body := `{"email":"a@example.com","password":"hunter22","firstName":"A","lastName":"B"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for register, got %d", res.StatusCode)
	}
	var created User
	json.NewDecoder(res.Body).Decode(&created)
	if created.Password != "" {
		t.Fatal("password hash must not leak in responses")
	}
	if created.ID == "" {
		t.Fatal("expected a server-assigned id")
	}

	// duplicate email is rejected
	req2 := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", res2.StatusCode)
	}

	// login with the right password
	login := `{"email":"a@example.com","password":"hunter22"}`
	req3 := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(login))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for login, got %d", res3.StatusCode)
	}
	var payload struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	json.NewDecoder(res3.Body).Decode(&payload)
	if payload.Token == "" {
		t.Fatal("expected a token")
	}

	// wrong password
	bad := `{"email":"a@example.com","password":"nope"}`
	req4 := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(bad))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", res4.StatusCode)
	}
}

func TestCurrentUser(t *testing.T) {
	repo := NewInMemoryRepository([]User{{ID: "u1", Email: "u1@example.com", FirstName: "U"}})
	handler := NewHandler(NewService(repo))
	app := makeAppWithUserHandler(handler)

	req := httptest.NewRequest("GET", "/api/auth/user", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/auth/user", nil)
	req2.Header.Set("X-User-ID", "u1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	var u User
	json.NewDecoder(res2.Body).Decode(&u)
	if u.Email != "u1@example.com" {
		t.Fatalf("unexpected user %+v", u)
	}
}
