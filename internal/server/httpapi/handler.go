// Package httpapi serves the Remote Auth API over HTTP: account creation,
// password login and the authenticated profile lookup.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/validation"
	"github.com/gorilla/mux"
)

// Users is the part of services.UserService the handlers need.
type Users interface {
	Register(ctx context.Context, email, name, surname, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	Authenticate(token string) (int64, error)
}

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Surname         string `json:"surname" validate:"required"`
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type loginResponse struct {
	AccessToken string          `json:"accessToken"`
	User        profileResponse `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toProfile(u *models.User) profileResponse {
	return profileResponse{ID: u.ID, Email: u.Email, Name: u.Name, Surname: u.Surname}
}

// Handler holds the endpoint implementations.
type Handler struct {
	users  Users
	logger logging.Logger
}

func NewHandler(users Users, l logging.Logger) *Handler {
	return &Handler{users: users, logger: l}
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), req.Email, req.Name, req.Surname, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			writeError(w, http.StatusConflict, "e-mail already registered")
			return
		}
		if errors.Is(err, common.ErrorValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error(r.Context(), "registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.logger.Info(r.Context(), "registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, toProfile(user))
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sess, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: sess.AccessToken, User: toProfile(sess.User)})
}

// GetUser handles GET /users/{id}. Callers may only read their own profile.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	subject, ok := userIDFromContext(r.Context())
	if !ok || subject != id {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		h.logger.Error(r.Context(), "get user failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toProfile(user))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
