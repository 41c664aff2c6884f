package models

import "time"

type User struct {
	IDUser      int64     `json:"idUser" gorm:"column:idUser;primaryKey;autoIncrement"`
	IDAccount   int64     `json:"idAccount" gorm:"column:idAccount;not null;index:idx_user_account_active,where:deleted = false"`
	Account     Account   `json:"-" gorm:"foreignKey:IDAccount;references:IDAccount"`
	Email       string    `json:"email" gorm:"column:email;type:varchar(255);not null"`
	DisplayName string    `json:"displayName,omitempty" gorm:"column:displayName;type:varchar(255)"`
	DateCreated time.Time `json:"dateCreated" gorm:"column:dateCreated;not null"`
	Deleted     bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (User) TableName() string {
	return "user"
}
