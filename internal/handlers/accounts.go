package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/vaughan-dsouza/GoAccounts/internal/apperr"
	"github.com/vaughan-dsouza/GoAccounts/internal/models"
	"github.com/vaughan-dsouza/GoAccounts/internal/utils"
)

type AccountHandler struct {
	DB  *sqlx.DB
	Log zerolog.Logger
}

func NewAccountHandler(db *sqlx.DB, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{DB: db, Log: log}
}

func (h *AccountHandler) fail(w http.ResponseWriter, e *apperr.Error) {
	if e.Kind == apperr.KindStorage {
		h.Log.Error().Err(e).Msg("storage failure")
	}
	utils.Failure(w, e.Status, e.Message)
}

// ---------------------- CREATE ----------------------

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := strings.TrimSpace(r.FormValue("password"))
	role := strings.TrimSpace(r.FormValue("role"))

	required := []struct{ name, value string }{
		{"firstName", firstName},
		{"lastName", lastName},
		{"email", email},
		{"password", password},
		{"role", role},
	}
	for _, f := range required {
		if f.value == "" {
			h.fail(w, apperr.NewValidation(f.name+" is required"))
			return
		}
	}

	if !validEmail(email) {
		h.fail(w, apperr.NewValidation("email must be a valid email address"))
		return
	}
	if len(password) < 6 {
		h.fail(w, apperr.NewValidation("password must be at least 6 characters"))
		return
	}
	if !models.ValidRole(role) {
		h.fail(w, apperr.NewValidation("role must be one of user, admin, hr, accountant, employee, applicant"))
		return
	}

	var exists bool
	err := h.DB.Get(&exists, `SELECT EXISTS (SELECT 1 FROM useraccounts WHERE email = $1)`, email)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to check email", err))
		return
	}
	if exists {
		// conflict, but surfaced as 400 on this endpoint
		e := apperr.NewConflict("An account with this email already exists.")
		e.Status = http.StatusBadRequest
		h.fail(w, e)
		return
	}

	// Manual id assignment, not atomic with the insert: two
	// concurrent creates can collide.
	var nextID int64
	err = h.DB.Get(&nextID, `SELECT COALESCE(MAX(id), 0) + 1 FROM useraccounts`)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to assign id", err))
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO useraccounts (id, firstname, lastname, email, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, nextID, firstName, lastName, email, password, role)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to create account", err))
		return
	}

	utils.Success(w, http.StatusOK, fmt.Sprintf("Account created with id %d.", nextID), map[string]interface{}{
		"id": nextID,
	})
}

// ---------------------- DELETE ----------------------

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimSpace(r.FormValue("id"))
	if idStr == "" {
		h.fail(w, apperr.NewValidation("id is required"))
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.fail(w, apperr.NewValidation("id must be a number"))
		return
	}

	res, err := h.DB.Exec(`DELETE FROM useraccounts WHERE id = $1`, id)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to delete account", err))
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		h.fail(w, apperr.NewNotFound(fmt.Sprintf("No account found with id %d.", id)))
		return
	}

	utils.Success(w, http.StatusOK, "Account deleted.", nil)
}

// ---------------------- LIST ----------------------

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := []models.Account{}

	err := h.DB.Select(&accounts, `
		SELECT id, firstname, lastname, email, role
		FROM useraccounts
		ORDER BY firstname ASC
	`)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to fetch accounts", err))
		return
	}

	utils.JSON(w, http.StatusOK, accounts)
}

// ---------------------- EMPLOYEES ----------------------

func (h *AccountHandler) Employees(w http.ResponseWriter, r *http.Request) {
	employees := []models.Account{}

	// Exact match on the lowercase role; rows stored with the signup
	// role "Applicant" will never appear here.
	err := h.DB.Select(&employees, `
		SELECT id, firstname, lastname, email, role
		FROM useraccounts
		WHERE role = $1
		ORDER BY firstname ASC
	`, models.RoleEmployee)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to fetch employees", err))
		return
	}

	message := "Employees retrieved."
	if len(employees) == 0 {
		message = "No employees found."
	}

	utils.Success(w, http.StatusOK, message, map[string]interface{}{
		"employees": employees,
	})
}

// ---------------------- UPDATE ----------------------

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimSpace(r.FormValue("id"))
	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	email := strings.TrimSpace(r.FormValue("email"))
	role := strings.TrimSpace(r.FormValue("role"))
	password := strings.TrimSpace(r.FormValue("password"))

	required := []struct{ name, value string }{
		{"id", idStr},
		{"firstName", firstName},
		{"lastName", lastName},
		{"email", email},
		{"role", role},
	}
	for _, f := range required {
		if f.value == "" {
			h.fail(w, apperr.NewValidation(f.name+" is required"))
			return
		}
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.fail(w, apperr.NewValidation("id must be a number"))
		return
	}
	if !validEmail(email) {
		h.fail(w, apperr.NewValidation("email must be a valid email address"))
		return
	}
	if !models.ValidRole(role) {
		h.fail(w, apperr.NewValidation("role must be one of user, admin, hr, accountant, employee, applicant"))
		return
	}
	if password != "" && len(password) < 6 {
		h.fail(w, apperr.NewValidation("password must be at least 6 characters"))
		return
	}

	var exists bool
	err = h.DB.Get(&exists, `SELECT EXISTS (SELECT 1 FROM useraccounts WHERE email = $1 AND id <> $2)`, email, id)
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to check email", err))
		return
	}
	if exists {
		e := apperr.NewConflict("Another account with this email already exists.")
		e.Status = http.StatusBadRequest
		h.fail(w, e)
		return
	}

	var res sql.Result
	if password != "" {
		res, err = h.DB.Exec(`
			UPDATE useraccounts
			SET firstname = $1, lastname = $2, email = $3, role = $4, password = $5
			WHERE id = $6
		`, firstName, lastName, email, role, password, id)
	} else {
		res, err = h.DB.Exec(`
			UPDATE useraccounts
			SET firstname = $1, lastname = $2, email = $3, role = $4
			WHERE id = $5
		`, firstName, lastName, email, role, id)
	}
	if err != nil {
		h.fail(w, apperr.NewStorage("failed to update account", err))
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		h.fail(w, apperr.NewNotFound(fmt.Sprintf("No account found with id %d.", id)))
		return
	}

	utils.Success(w, http.StatusOK, "Account updated.", nil)
}
