// notebox/sources/psql/models/note.go
package models

import "time"

// Note is a tenant-scoped, user-owned annotation. Rows are only ever created
// through NoteDAO.CreateNote; soft-deleted rows stay in the table and are
// excluded by the deleted = false predicate on every tenant-scoped query.
type Note struct {
	IDNote       int64     `json:"idNote" gorm:"column:idNote;primaryKey;autoIncrement"`
	IDAccount    int64     `json:"idAccount" gorm:"column:idAccount;not null"`
	Account      Account   `json:"-" gorm:"foreignKey:IDAccount;references:IDAccount"`
	IDUser       int64     `json:"idUser" gorm:"column:idUser;not null"`
	User         User      `json:"-" gorm:"foreignKey:IDUser;references:IDUser"`
	Title        string    `json:"title" gorm:"column:title;type:varchar(255);not null"`
	Content      string    `json:"content" gorm:"column:content;type:text;not null"`
	DateCreated  time.Time `json:"dateCreated" gorm:"column:dateCreated;not null"`
	DateModified time.Time `json:"dateModified" gorm:"column:dateModified;not null"`
	Deleted      bool      `json:"-" gorm:"column:deleted;not null;default:false"`
}

func (Note) TableName() string {
	return "note"
}

// TitleMaxLen bounds the title column, measured in characters on the raw
// input.
const TitleMaxLen = 255
