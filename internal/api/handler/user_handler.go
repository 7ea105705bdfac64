package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/accounts-api/internal/core/domain"
	"github.com/learnhub/accounts-api/internal/core/ports"
)

type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// userPayload is the public projection of an account; the secret hash and
// timestamps never leave the service.
type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserPayload(a *domain.Account) userPayload {
	return userPayload{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type userWithStats struct {
	User  userPayload            `json:"user"`
	Stats domain.EnrollmentStats `json:"stats"`
}

type updateMeRequest struct {
	Name                 *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email                *string `json:"email" validate:"omitempty,email,max=100"`
	Password             *string `json:"password" validate:"omitempty,min=6"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

// Me returns the authenticated account with its enrollment statistics.
//
// @Summary      Current account
// @Tags         users
// @Produce      json
// @Success      200  {object}  userWithStats
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}

	stats, err := h.accounts.Stats(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userWithStats{User: toUserPayload(account), Stats: stats})
}

// UpdateMe applies the supplied fields to the authenticated account; absent
// fields stay untouched.
//
// @Summary      Update current account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateMeRequest  true  "Fields to change"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	account, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password != nil && (req.PasswordConfirmation == nil || *req.Password != *req.PasswordConfirmation) {
		return domain.ValidationErrors{"password": {"The password confirmation does not match."}}
	}

	updated, err := h.accounts.UpdateProfile(c.Request().Context(), account, ports.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"user":    toUserPayload(updated),
	})
}

// Index lists every active account with its statistics. Admin only.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string][]userWithStats
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) Index(c echo.Context) error {
	listed, err := h.accounts.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]userWithStats, 0, len(listed))
	for _, entry := range listed {
		data = append(data, userWithStats{User: toUserPayload(entry.Account), Stats: entry.Stats})
	}

	return c.JSON(http.StatusOK, map[string][]userWithStats{"data": data})
}

// Show returns one account by id. Admin only; soft-deleted accounts report
// as deleted with a 404.
//
// @Summary      Get an account by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  userWithStats
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	entry, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userWithStats{User: toUserPayload(entry.Account), Stats: entry.Stats})
}

// Destroy soft-deletes an account by id. Admin only; repeating the delete is
// a success, the row stays recoverable.
//
// @Summary      Soft-delete an account
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Destroy(c echo.Context) error {
	if err := h.accounts.SoftDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
