package controllers

import (
	"context"
	"notebox/notebox/sources/psql/dao"
	"notebox/notebox/sources/psql/models"
)

type UsersController struct {
	dao *dao.UserDAO
}

func NewUsersController(dao *dao.UserDAO) *UsersController {
	return &UsersController{dao: dao}
}

func (c *UsersController) CreateUser(ctx context.Context, idAccount int64, email, displayName string) (*models.User, error) {
	return c.dao.CreateUser(ctx, idAccount, email, displayName)
}
