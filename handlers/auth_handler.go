package handlers

import (
	"errors"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/services"
	"campus-agenda/store"
)

type AuthHandler struct {
	accounts *services.AccountService
}

func NewAuthHandler(accounts *services.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register - Create a new account
func (h *AuthHandler) Register(e *core.RequestEvent) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Email == "" || req.Password == "" {
		return apis.NewBadRequestError("Email and password required", nil)
	}

	account, err := h.accounts.Register(e.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return fail("auth.register", apis.NewBadRequestError("Email already registered", nil))
		}
		return fail("auth.register", apis.NewBadRequestError("Failed to register", err))
	}

	return ok(e, "auth.register", map[string]any{"account": account})
}

// Login - Verify credentials and return the account
func (h *AuthHandler) Login(e *core.RequestEvent) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	account, err := h.accounts.Login(e.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return fail("auth.login", apis.NewUnauthorizedError("Invalid credentials", nil))
		}
		return fail("auth.login", apis.NewBadRequestError("Failed to login", err))
	}

	return ok(e, "auth.login", map[string]any{"account": account})
}
