package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"notebox/notebox/sources/psql/models"
	"notebox/notebox/utils/respond"

	"github.com/go-chi/chi/v5"
)

type createAccountRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type createUserRequest struct {
	Email       string `json:"email" validate:"required,min=1,max=255"`
	DisplayName string `json:"displayName" validate:"max=255"`
}

type AccountProvisioner interface {
	CreateAccount(ctx context.Context, name string) (*models.Account, error)
	GetAccountByID(ctx context.Context, idAccount int64) (*models.Account, error)
}

type UserProvisioner interface {
	CreateUser(ctx context.Context, idAccount int64, email, displayName string) (*models.User, error)
}

func AccountRoutes(accounts AccountProvisioner, users UserProvisioner) chi.Router {
	r := chi.NewRouter()

	// Create account
	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var body createAccountRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			respond.ValidationError(w, []string{"body"})
			return
		}
		if err := validate.Struct(body); err != nil {
			respond.ValidationError(w, violatedFields(err))
			return
		}

		account, err := accounts.CreateAccount(req.Context(), body.Name)
		if err != nil {
			writeFailure(w, err)
			return
		}
		respond.Created(w, account)
	})

	// Get account
	r.Get("/{idAccount}", func(w http.ResponseWriter, req *http.Request) {
		idAccount, err := strconv.ParseInt(chi.URLParam(req, "idAccount"), 10, 64)
		if err != nil || idAccount <= 0 {
			respond.ValidationError(w, []string{"idAccount"})
			return
		}
		account, err := accounts.GetAccountByID(req.Context(), idAccount)
		if err != nil {
			writeFailure(w, err)
			return
		}
		if account == nil {
			respond.NotFound(w, "account not found")
			return
		}
		respond.Success(w, account)
	})

	// Create user inside account
	r.Post("/{idAccount}/users", func(w http.ResponseWriter, req *http.Request) {
		idAccount, err := strconv.ParseInt(chi.URLParam(req, "idAccount"), 10, 64)
		if err != nil || idAccount <= 0 {
			respond.ValidationError(w, []string{"idAccount"})
			return
		}
		var body createUserRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			respond.ValidationError(w, []string{"body"})
			return
		}
		if err := validate.Struct(body); err != nil {
			respond.ValidationError(w, violatedFields(err))
			return
		}

		user, err := users.CreateUser(req.Context(), idAccount, body.Email, body.DisplayName)
		if err != nil {
			writeFailure(w, err)
			return
		}
		respond.Created(w, user)
	})

	return r
}
