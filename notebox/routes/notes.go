// notebox/routes/notes.go
package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"notebox/notebox/apperrors"
	"notebox/notebox/sources/psql/dao"
	"notebox/notebox/utils/logging"
	"notebox/notebox/utils/respond"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = newValidator()

// newValidator reports violations by json field name, not Go struct field.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func violatedFields(err error) []string {
	var fields []string
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}

// writeFailure maps a service error to the transport: business-rule
// violations become client errors with the specific reason, everything else
// is an opaque server failure.
func writeFailure(w http.ResponseWriter, err error) {
	if re, ok := apperrors.AsRuleError(err); ok {
		respond.BusinessRuleError(w, re.Error())
		return
	}
	logging.ErrorLogger.Error("request failed", zap.Error(err))
	respond.InternalError(w)
}

type createNoteRequest struct {
	IDAccount int64  `json:"idAccount" validate:"required,gt=0"`
	IDUser    int64  `json:"idUser" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required,min=1,max=255"`
	Content   string `json:"content" validate:"required,min=1"`
}

// NoteCreator is the slice of the notes controller the routes need.
type NoteCreator interface {
	CreateNote(ctx context.Context, p dao.CreateNoteParams) (int64, error)
}

func NotesRoutes(ctrl NoteCreator) chi.Router {
	r := chi.NewRouter()

	// Create note
	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var body createNoteRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			respond.ValidationError(w, []string{"body"})
			return
		}
		if err := validate.Struct(body); err != nil {
			respond.ValidationError(w, violatedFields(err))
			return
		}

		idNote, err := ctrl.CreateNote(req.Context(), dao.CreateNoteParams{
			IDAccount: body.IDAccount,
			IDUser:    body.IDUser,
			Title:     body.Title,
			Content:   body.Content,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}
		respond.Created(w, map[string]int64{"idNote": idNote})
	})

	return r
}
