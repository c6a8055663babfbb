package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/services"
	"github.com/gorilla/mux"
)

// Directory is the service surface the handlers need.
type Directory interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, in services.CreateUserInput) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type createUserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Country     string `json:"country"`
}

type UserHandler struct {
	svc Directory
	log logging.Logger
}

func NewUserHandler(svc Directory, log logging.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Root answers the liveness probe.
func (h *UserHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeMessage(r.Context(), h.log, w, http.StatusOK, "User API is running")
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.svc.List(ctx)
	if err != nil {
		h.log.Error(ctx, "list users failed", "error", err, "request_id", GetRequestID(ctx))
		writeError(ctx, h.log, w, http.StatusInternalServerError, "Database error")
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeJSON(ctx, h.log, w, http.StatusOK, users)
}

// Create handles POST /users/create.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(ctx, h.log, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	u, err := h.svc.Create(ctx, services.CreateUserInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Country:     req.Country,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMessage(ctx, h.log, w, http.StatusBadRequest, "Missing required fields")
			return
		}
		h.log.Error(ctx, "create user failed", "error", err, "request_id", GetRequestID(ctx))
		writeError(ctx, h.log, w, http.StatusInternalServerError, "Database insert error")
		return
	}

	writeJSON(ctx, h.log, w, http.StatusCreated, createdResponse{
		Message: "User created successfully",
		UserID:  u.ID,
	})
}

// MissingID handles DELETE /users/ with no id segment.
func (h *UserHandler) MissingID(w http.ResponseWriter, r *http.Request) {
	writeMessage(r.Context(), h.log, w, http.StatusBadRequest, "Missing user ID")
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := mux.Vars(r)["id"]
	if raw == "" {
		writeMessage(ctx, h.log, w, http.StatusBadRequest, "Missing user ID")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeMessage(ctx, h.log, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	err = h.svc.Delete(ctx, id)
	switch {
	case err == nil:
		writeMessage(ctx, h.log, w, http.StatusOK, fmt.Sprintf("User with ID %d deleted successfully", id))
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(ctx, h.log, w, http.StatusNotFound, "User not found")
	default:
		h.log.Error(ctx, "delete user failed", "error", err, "id", id, "request_id", GetRequestID(ctx))
		writeError(ctx, h.log, w, http.StatusInternalServerError, "Failed to delete user")
	}
}

func (h *UserHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(r.Context(), h.log, w, http.StatusNotFound, "Not found")
}
