package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/learnhub/accounts-api/internal/core/domain"
	"github.com/learnhub/accounts-api/internal/core/ports"
)

func TestUserHandler_Me(t *testing.T) {
	stub := &stubAccountService{
		statsFn: func(_ context.Context, accountID string) (domain.EnrollmentStats, error) {
			if accountID != "acc_1" {
				t.Fatalf("unexpected account id: %s", accountID)
			}
			return domain.EnrollmentStats{EnrolledCourses: 3, CompletedCourses: 1}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users/me", "")
	c.Set("account", &domain.Account{ID: "acc_1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		User  map[string]any `json:"user"`
		Stats map[string]any `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User["email"] != "alice@example.com" || resp.User["role"] != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
	if _, exposed := resp.User["password_hash"]; exposed {
		t.Fatalf("secret hash must never be exposed")
	}
	if resp.Stats["enrolledCourses"] != float64(3) || resp.Stats["completedCourses"] != float64(1) {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestUserHandler_Me_NoAccountInContext(t *testing.T) {
	h := NewUserHandler(&stubAccountService{})

	c, _ := newTestContext(t, http.MethodGet, "/users/me", "")
	if err := h.Me(c); err == nil {
		t.Fatalf("expected an error when the guard did not run")
	}
}

func TestUserHandler_UpdateMe_PartialBody(t *testing.T) {
	account := &domain.Account{ID: "acc_1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	stub := &stubAccountService{
		updateFn: func(_ context.Context, _ *domain.Account, upd ports.ProfileUpdate) (*domain.Account, error) {
			if upd.Name != nil || upd.Password != nil {
				t.Fatalf("absent fields must stay nil: %+v", upd)
			}
			if upd.Email == nil || *upd.Email != "alice@new.example.com" {
				t.Fatalf("email not carried: %+v", upd.Email)
			}
			updated := *account
			updated.Email = *upd.Email
			return &updated, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/users/me", `{"email":"alice@new.example.com"}`)
	c.Set("account", account)

	if err := h.UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Profile updated successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user := resp["user"].(map[string]any)
	if user["email"] != "alice@new.example.com" || user["name"] != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserHandler_UpdateMe_PasswordConfirmationMismatch(t *testing.T) {
	stub := &stubAccountService{
		updateFn: func(context.Context, *domain.Account, ports.ProfileUpdate) (*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/users/me", `{"password":"n3wpass","password_confirmation":"different"}`)
	c.Set("account", &domain.Account{ID: "acc_1", Role: domain.RoleUser})

	err := h.UpdateMe(c)
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) || len(ve["password"]) == 0 {
		t.Fatalf("expected a password validation error, got %v", err)
	}
}

func TestUserHandler_Index(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(context.Context) ([]ports.AccountWithStats, error) {
			return []ports.AccountWithStats{
				{
					Account: &domain.Account{ID: "acc_1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin},
					Stats:   domain.EnrollmentStats{EnrolledCourses: 2},
				},
				{
					Account: &domain.Account{ID: "acc_2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleUser},
				},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/users", "")
	if err := h.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []struct {
			User  map[string]any `json:"user"`
			Stats map[string]any `json:"stats"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Data))
	}
	if resp.Data[0].User["email"] != "alice@example.com" {
		t.Fatalf("unexpected first entry: %+v", resp.Data[0])
	}
}

func TestUserHandler_Show_Deleted(t *testing.T) {
	stub := &stubAccountService{
		getFn: func(_ context.Context, id string) (*ports.AccountWithStats, error) {
			return nil, domain.ErrAccountDeleted
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/users/acc_1", "")
	c.SetParamNames("id")
	c.SetParamValues("acc_1")

	if err := h.Show(c); !errors.Is(err, domain.ErrAccountDeleted) {
		t.Fatalf("expected ErrAccountDeleted, got %v", err)
	}
}

func TestUserHandler_Destroy(t *testing.T) {
	deleted := ""
	stub := &stubAccountService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/users/acc_1", "")
	c.SetParamNames("id")
	c.SetParamValues("acc_1")

	if err := h.Destroy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deleted != "acc_1" {
		t.Fatalf("expected acc_1 to be deleted, got %q", deleted)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
