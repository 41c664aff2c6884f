package dao

import (
	"context"
	"notebox/notebox/apperrors"
	"notebox/notebox/sources/psql/models"
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

// GetActiveUserInAccount returns the user only if it exists, belongs to the
// given account, and is not soft-deleted. nil, nil when absent.
func (dao *UserDAO) GetActiveUserInAccount(ctx context.Context, idUser, idAccount int64) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Where(`"idUser" = ? AND "idAccount" = ? AND deleted = false`, idUser, idAccount).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser provisions a user inside an existing, active account.
func (dao *UserDAO) CreateUser(ctx context.Context, idAccount int64, email, displayName string) (*models.User, error) {
	if idAccount <= 0 {
		return nil, apperrors.ParameterRequired("idAccount")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ParameterRequired("email")
	}
	if len([]rune(email)) > 255 {
		return nil, apperrors.ValueTooLong("email", 255)
	}

	var user models.User
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Account{}).
			Where(`"idAccount" = ? AND deleted = false`, idAccount).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return apperrors.AuthorizationViolation("accountDoesNotExist")
		}

		user = models.User{
			IDAccount:   idAccount,
			Email:       email,
			DisplayName: displayName,
			DateCreated: time.Now().UTC(),
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
