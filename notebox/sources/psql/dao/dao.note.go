// notebox/sources/psql/dao/dao.note.go
package dao

import (
	"context"
	"notebox/notebox/apperrors"
	"notebox/notebox/sources/psql/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

type CreateNoteParams struct {
	IDAccount int64
	IDUser    int64
	Title     string
	Content   string
}

// CreateNote atomically validates and persists a new note and returns its
// identifier. Validation is fail-fast, first violation wins, and runs
// entirely before the insert; the cross-account user check shares the insert
// transaction so both see one consistent snapshot. On any error the
// transaction rolls back and no row is visible.
func (dao *NoteDAO) CreateNote(ctx context.Context, p CreateNoteParams) (int64, error) {
	if p.IDAccount <= 0 {
		return 0, apperrors.ParameterRequired("idAccount")
	}
	if p.IDUser <= 0 {
		return 0, apperrors.ParameterRequired("idUser")
	}
	if strings.TrimSpace(p.Title) == "" {
		return 0, apperrors.ParameterRequired("title")
	}
	if strings.TrimSpace(p.Content) == "" {
		return 0, apperrors.ParameterRequired("content")
	}
	// Length bound applies to the raw title, before trimming.
	if len([]rune(p.Title)) > models.TitleMaxLen {
		return 0, apperrors.ValueTooLong("title", models.TitleMaxLen)
	}

	var note models.Note
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.User{}).
			Where(`"idUser" = ? AND "idAccount" = ? AND deleted = false`, p.IDUser, p.IDAccount).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return apperrors.AuthorizationViolation("userDoesNotBelongToAccount")
		}

		now := time.Now().UTC()
		note = models.Note{
			IDAccount:    p.IDAccount,
			IDUser:       p.IDUser,
			Title:        p.Title,
			Content:      p.Content,
			DateCreated:  now,
			DateModified: now,
			Deleted:      false,
		}
		return tx.Create(&note).Error
	})
	if err != nil {
		return 0, err
	}
	return note.IDNote, nil
}

// GetNoteByID looks a note up within its tenant. Soft-deleted rows are
// invisible.
func (dao *NoteDAO) GetNoteByID(ctx context.Context, idAccount, idNote int64) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).
		Where(`"idNote" = ? AND "idAccount" = ? AND deleted = false`, idNote, idAccount).
		First(&note).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}
