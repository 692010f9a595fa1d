package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lendly/loan-tracker/internal/domain"
	"github.com/lendly/loan-tracker/internal/service"
	"github.com/lendly/loan-tracker/pkg/response"
)

type AuthHandler struct {
	service   *service.AuthService
	validator *validator.Validate
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: newValidator(),
	}
}

// Login checks the credential pair and issues a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		response.BadRequest(w, "Username and password are required", err)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, resp)
}

// Logout revokes the session behind the presented bearer token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		response.Unauthorized(w, "Missing bearer token")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		writeBusinessError(w, err)
		return
	}
	response.Success(w, map[string]string{"status": "logged out"})
}
