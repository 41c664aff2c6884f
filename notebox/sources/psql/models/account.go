// notebox/sources/psql/models/account.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is the tenant boundary. Every note and user row is partitioned by
// its account id.
type Account struct {
	IDAccount   int64     `json:"idAccount" gorm:"column:idAccount;primaryKey;autoIncrement"`
	Reference   uuid.UUID `json:"reference" gorm:"column:reference;type:uuid;uniqueIndex:idx_account_reference;not null"`
	Name        string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	DateCreated time.Time `json:"dateCreated" gorm:"column:dateCreated;not null"`
	Deleted     bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Account) TableName() string {
	return "account"
}
