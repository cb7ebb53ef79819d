package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	authService auth.AuthService
	userService user.UserService
}

func NewUserHandler(authService auth.AuthService, userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		authService: authService,
		userService: userService,
	}
}

// Create implements UserHandler. Only administrators can open accounts.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.authService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created", user.ToResponse(created))
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.userService.ListStaff(r.Context())
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	out := make([]user.UserResponse, 0, len(staff))
	for _, member := range staff {
		out = append(out, user.ToResponse(member))
	}

	response.Success(w, out)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	req := user.DeleteUserRequest{UserID: chi.URLParam(r, "id")}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.userService.DeleteStaff(r.Context(), req.UserID); err != nil {
		slog.Error("Delete staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted", nil)
}
