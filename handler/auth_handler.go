package handler

import (
	"assetconsole/models"
	"assetconsole/repository"
	"assetconsole/utils"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req, "login request"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Email and password are required")
		return
	}

	if h.Logins.Blocked(req.Email) {
		utils.RespondError(w, http.StatusTooManyRequests, nil, "Too many failed login attempts, try again later")
		return
	}
	user, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUnauthorized) {
			h.Logins.Failed(req.Email)
			h.Logger.Warn("failed login attempt", zap.String("email", req.Email))
		}
		h.respondStoreError(w, err, "failed to log in")
		return
	}
	h.Logins.Reset(req.Email)
	h.respondSession(w, http.StatusOK, user, "Login successful")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid input")
		return
	}
	if err := utils.ValidateStruct(req, "registration request"); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "All registration fields are required")
		return
	}

	user, err := h.Users.CreateUser(r.Context(), req, models.UserRole)
	if err != nil {
		h.respondStoreError(w, err, "failed to register user")
		return
	}
	h.Logger.Info("user registered", zap.String("userID", user.ID))
	h.respondSession(w, http.StatusCreated, user, "Registration successful")
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	utils.RespondData(w, http.StatusOK, user, "ok")
}

func (h *Handler) respondSession(w http.ResponseWriter, status int, user models.User, message string) {
	token, err := h.JWT.GenerateJWT(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to generate access token")
		return
	}
	utils.RespondData(w, status, models.AuthRes{User: user, Token: token}, message)
}
