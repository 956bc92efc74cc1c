package handlers

import (
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-agenda/services"
)

type AdminHandler struct {
	dashboard *services.DashboardService
	accounts  *services.AccountService
}

func NewAdminHandler(dashboard *services.DashboardService, accounts *services.AccountService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, accounts: accounts}
}

// GetDashboard - Per-event engagement counts for the admin screen
func (h *AdminHandler) GetDashboard(e *core.RequestEvent) error {
	if err := requireSuperuser(e); err != nil {
		return err
	}

	stats, err := h.dashboard.Stats(e.Request.Context())
	if err != nil {
		return fail("admin.dashboard", apis.NewBadRequestError("Failed to build dashboard", err))
	}

	return ok(e, "admin.dashboard", map[string]any{"stats": stats})
}

// ListAccounts - Registered accounts (admin only)
func (h *AdminHandler) ListAccounts(e *core.RequestEvent) error {
	if err := requireSuperuser(e); err != nil {
		return err
	}

	accounts, err := h.accounts.ListAccounts(e.Request.Context())
	if err != nil {
		return fail("admin.accounts", apis.NewBadRequestError("Failed to list accounts", err))
	}

	return ok(e, "admin.accounts", map[string]any{"accounts": accounts})
}
