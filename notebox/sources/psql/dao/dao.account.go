package dao

import (
	"context"
	"notebox/notebox/apperrors"
	"notebox/notebox/sources/psql/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountDAO struct {
	DB *gorm.DB
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{DB: db}
}

func (dao *AccountDAO) CreateAccount(ctx context.Context, name string) (*models.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ParameterRequired("name")
	}
	if len([]rune(name)) > 255 {
		return nil, apperrors.ValueTooLong("name", 255)
	}

	account := models.Account{
		Reference:   uuid.New(),
		Name:        name,
		DateCreated: time.Now().UTC(),
	}
	err := dao.DB.WithContext(ctx).Create(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (dao *AccountDAO) GetAccountByID(ctx context.Context, idAccount int64) (*models.Account, error) {
	var account models.Account
	err := dao.DB.WithContext(ctx).
		Where(`"idAccount" = ? AND deleted = false`, idAccount).
		First(&account).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
