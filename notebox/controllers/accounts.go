package controllers

import (
	"context"
	"notebox/notebox/sources/psql/dao"
	"notebox/notebox/sources/psql/models"
)

type AccountsController struct {
	dao *dao.AccountDAO
}

func NewAccountsController(dao *dao.AccountDAO) *AccountsController {
	return &AccountsController{dao: dao}
}

func (c *AccountsController) CreateAccount(ctx context.Context, name string) (*models.Account, error) {
	return c.dao.CreateAccount(ctx, name)
}

func (c *AccountsController) GetAccountByID(ctx context.Context, idAccount int64) (*models.Account, error) {
	return c.dao.GetAccountByID(ctx, idAccount)
}
