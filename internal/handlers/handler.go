package handlers

import (
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

type Handler struct {
	DB       *sqlx.DB
	Accounts *AccountHandler
	Auth     *AuthHandler
}

func NewHandler(db *sqlx.DB, log zerolog.Logger) *Handler {
	return &Handler{
		DB:       db,
		Accounts: NewAccountHandler(db, log),
		Auth:     NewAuthHandler(db, log),
	}
}
