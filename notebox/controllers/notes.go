// notebox/controllers/notes.go
package controllers

import (
	"context"
	"notebox/notebox/sources/psql/dao"
)

// NotesController is a pass-through boundary: all correctness-relevant
// behavior lives in the DAO transaction and in the route validation.
type NotesController struct {
	dao *dao.NoteDAO
}

func NewNotesController(dao *dao.NoteDAO) *NotesController {
	return &NotesController{dao: dao}
}

func (c *NotesController) CreateNote(ctx context.Context, p dao.CreateNoteParams) (int64, error) {
	return c.dao.CreateNote(ctx, p)
}
