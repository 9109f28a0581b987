package http

import (
	"net/http"

	"github.com/study-factory/attend-backend-go/internal/domain/user"
	"github.com/study-factory/attend-backend-go/internal/handler/http/middleware"
	"github.com/study-factory/attend-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userRepo user.UserRepository
}

func NewUserHandler(userRepo user.UserRepository) UserHandler {
	return &UserHandlerImpl{userRepo: userRepo}
}

// Me implements UserHandler.
func (h *UserHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	session, err := middleware.SessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	account, err := h.userRepo.GetByID(r.Context(), session.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, account.Profile())
}

// List implements UserHandler. Staff only.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")
	if branch == "" {
		branch = user.BranchAll
	}

	users, err := h.userRepo.List(r.Context(), branch)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profiles := make([]user.Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	response.Success(w, profiles)
}

// ListBranches implements UserHandler.
func (h *UserHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.userRepo.ListBranches(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branches)
}
