package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/vaughan-dsouza/GoAccounts/internal/apperr"
	"github.com/vaughan-dsouza/GoAccounts/internal/models"
	"github.com/vaughan-dsouza/GoAccounts/internal/utils"
)

type AuthHandler struct {
	DB  *sqlx.DB
	Log zerolog.Logger
}

func NewAuthHandler(db *sqlx.DB, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{DB: db, Log: log}
}

// ----------- Request DTOs -------------

type loginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type logoutReq struct {
	UserID *int64 `json:"userId"`
}

type signUpReq struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (h *AuthHandler) fail(w http.ResponseWriter, e *apperr.Error) {
	if e.Kind == apperr.KindStorage {
		h.Log.Error().Err(e).Msg("storage failure")
	}
	utils.Failure(w, e.Status, e.Message)
}

// -------------- LOGIN ------------------------

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if appErr := validateRequest(&req); appErr != nil {
		h.fail(w, appErr)
		return
	}

	// Plaintext comparison against the stored password, carried
	// over unchanged from the system this replaces.
	var profile models.Profile
	err := h.DB.Get(&profile, `
		SELECT email, firstname, lastname, role
		FROM useraccounts
		WHERE email = $1 AND password = $2
	`, req.Email, req.Password)

	if errors.Is(err, sql.ErrNoRows) {
		// Same message for unknown email and wrong password.
		utils.Failure(w, http.StatusOK, "Invalid email or password.")
		return
	}
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to verify credentials", err))
		return
	}

	utils.Success(w, http.StatusOK, "Login successful.", map[string]interface{}{
		"user": profile,
	})
}

// -------------- LOGOUT -----------------------

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}

	// Best-effort stamp; a failed update is logged but never fails
	// the request.
	if req.UserID != nil {
		_, err := h.DB.Exec(`UPDATE useraccounts SET last_logout = NOW() WHERE id = $1`, *req.UserID)
		if err != nil {
			h.Log.Error().Err(err).Int64("user_id", *req.UserID).Msg("failed to stamp last_logout")
		}
	}

	utils.Success(w, http.StatusOK, "Logged out.", nil)
}

// -------------- SIGN UP ----------------------

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if appErr := validateRequest(&req); appErr != nil {
		h.fail(w, appErr)
		return
	}

	var exists bool
	err := h.DB.Get(&exists, `SELECT EXISTS (SELECT 1 FROM useraccounts WHERE email = $1)`, req.Email)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to check email", err))
		return
	}
	if exists {
		h.fail(w, apperr.NewConflict("An account with this email already exists."))
		return
	}

	manualID, err := h.hasManualID()
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to inspect schema", err))
		return
	}

	var id int64
	if manualID {
		// Hand-assigned ids start at 101 on an empty table.
		err = h.DB.Get(&id, `SELECT COALESCE(MAX(id) + 1, 101) FROM useraccounts`)
		if err != nil {
			h.fail(w, apperr.NewStorage("failed to assign id", err))
			return
		}
		_, err = h.DB.Exec(`
			INSERT INTO useraccounts (id, firstname, lastname, email, password, role)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, req.FirstName, req.LastName, req.Email, req.Password, models.SignupRole)
	} else {
		err = h.DB.QueryRowx(`
			INSERT INTO useraccounts (firstname, lastname, email, password, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, req.FirstName, req.LastName, req.Email, req.Password, models.SignupRole).Scan(&id)
	}
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to create account", err))
		return
	}

	utils.Success(w, http.StatusCreated, "Signup successful.", map[string]interface{}{
		"id":   id,
		"role": models.SignupRole,
	})
}

// hasManualID reports whether the id column must be assigned by hand,
// i.e. it carries neither a default nor an identity.
func (h *AuthHandler) hasManualID() (bool, error) {
	var manual bool
	err := h.DB.Get(&manual, `
		SELECT column_default IS NULL AND is_identity = 'NO'
		FROM information_schema.columns
		WHERE table_name = 'useraccounts' AND column_name = 'id'
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return manual, nil
}
