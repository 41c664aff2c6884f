package dao

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"notebox/notebox/apperrors"
	"notebox/notebox/sources/psql"
	"notebox/notebox/sources/psql/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func init() {
	os.Setenv("GO_ENV", "test")
}

// Validations 1-5 fail before any store access, so a DAO over a nil handle
// exercises them.
func TestCreateNoteFailFastValidation(t *testing.T) {
	noteDAO := NewNoteDAO(nil)
	ctx := context.Background()

	valid := CreateNoteParams{
		IDAccount: 1,
		IDUser:    5,
		Title:     "Groceries",
		Content:   "Milk, eggs",
	}

	cases := []struct {
		name   string
		mutate func(*CreateNoteParams)
		kind   apperrors.Kind
		field  string
	}{
		{"missing account", func(p *CreateNoteParams) { p.IDAccount = 0 }, apperrors.KindParameterRequired, "idAccount"},
		{"negative account", func(p *CreateNoteParams) { p.IDAccount = -3 }, apperrors.KindParameterRequired, "idAccount"},
		{"missing user", func(p *CreateNoteParams) { p.IDUser = 0 }, apperrors.KindParameterRequired, "idUser"},
		{"empty title", func(p *CreateNoteParams) { p.Title = "" }, apperrors.KindParameterRequired, "title"},
		{"blank title", func(p *CreateNoteParams) { p.Title = "   \t" }, apperrors.KindParameterRequired, "title"},
		{"empty content", func(p *CreateNoteParams) { p.Content = "" }, apperrors.KindParameterRequired, "content"},
		{"blank content", func(p *CreateNoteParams) { p.Content = "\n " }, apperrors.KindParameterRequired, "content"},
		{"title too long", func(p *CreateNoteParams) { p.Title = strings.Repeat("a", 256) }, apperrors.KindValueTooLong, "title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			id, err := noteDAO.CreateNote(ctx, p)
			require.Error(t, err)
			assert.Zero(t, id)

			re, ok := apperrors.AsRuleError(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, re.Kind)
			assert.Equal(t, tc.field, re.Field)
		})
	}
}

// First violation wins: the order is idAccount, idUser, title, content,
// title length.
func TestCreateNoteValidationOrder(t *testing.T) {
	noteDAO := NewNoteDAO(nil)
	ctx := context.Background()

	_, err := noteDAO.CreateNote(ctx, CreateNoteParams{})
	re, ok := apperrors.AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, "idAccount", re.Field)

	_, err = noteDAO.CreateNote(ctx, CreateNoteParams{IDAccount: 1})
	re, _ = apperrors.AsRuleError(err)
	assert.Equal(t, "idUser", re.Field)

	_, err = noteDAO.CreateNote(ctx, CreateNoteParams{IDAccount: 1, IDUser: 5})
	re, _ = apperrors.AsRuleError(err)
	assert.Equal(t, "title", re.Field)

	_, err = noteDAO.CreateNote(ctx, CreateNoteParams{IDAccount: 1, IDUser: 5, Title: "t"})
	re, _ = apperrors.AsRuleError(err)
	assert.Equal(t, "content", re.Field)

	// A blank over-long title is reported missing, not too long: the blank
	// check runs first.
	_, err = noteDAO.CreateNote(ctx, CreateNoteParams{
		IDAccount: 1, IDUser: 5, Title: strings.Repeat(" ", 300), Content: "x",
	})
	re, _ = apperrors.AsRuleError(err)
	assert.Equal(t, apperrors.KindParameterRequired, re.Kind)
	assert.Equal(t, "title", re.Field)
}

// Everything below needs a live Postgres. Set NOTEBOX_TEST_DSN to run, e.g.
// "host=localhost port=5432 user=postgres password=postgres dbname=notebox_test sslmode=disable"
func setupLiveDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("NOTEBOX_TEST_DSN")
	if dsn == "" {
		t.Skip("NOTEBOX_TEST_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, psql.Migrate(context.Background(), db))

	t.Cleanup(func() {
		db.Exec(`DELETE FROM note`)
		db.Exec(`DELETE FROM "user"`)
		db.Exec(`DELETE FROM account`)
	})
	return db
}

func seedAccountAndUser(t *testing.T, db *gorm.DB) (*models.Account, *models.User) {
	t.Helper()
	ctx := context.Background()
	account, err := NewAccountDAO(db).CreateAccount(ctx, "Acme")
	require.NoError(t, err)
	user, err := NewUserDAO(db).CreateUser(ctx, account.IDAccount, "owner@acme.test", "Owner")
	require.NoError(t, err)
	return account, user
}

func noteCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Note{}).Count(&count).Error)
	return count
}

func TestCreateNoteSuccess(t *testing.T) {
	db := setupLiveDB(t)
	account, user := seedAccountAndUser(t, db)
	noteDAO := NewNoteDAO(db)
	ctx := context.Background()

	before := time.Now().UTC()
	id, err := noteDAO.CreateNote(ctx, CreateNoteParams{
		IDAccount: account.IDAccount,
		IDUser:    user.IDUser,
		Title:     "Groceries",
		Content:   "Milk, eggs",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	note, err := noteDAO.GetNoteByID(ctx, account.IDAccount, id)
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "Milk, eggs", note.Content)
	assert.False(t, note.Deleted)

	// dateCreated == dateModified, both close to the invocation time.
	assert.Equal(t, note.DateCreated.UTC(), note.DateModified.UTC())
	assert.WithinDuration(t, before, note.DateCreated, 5*time.Second)
}

func TestCreateNoteNotIdempotent(t *testing.T) {
	db := setupLiveDB(t)
	account, user := seedAccountAndUser(t, db)
	noteDAO := NewNoteDAO(db)
	ctx := context.Background()

	p := CreateNoteParams{
		IDAccount: account.IDAccount,
		IDUser:    user.IDUser,
		Title:     "Same title",
		Content:   "Same content",
	}
	first, err := noteDAO.CreateNote(ctx, p)
	require.NoError(t, err)
	second, err := noteDAO.CreateNote(ctx, p)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Greater(t, second, first)
	assert.Equal(t, int64(2), noteCount(t, db))
}

func TestCreateNoteUserInOtherAccount(t *testing.T) {
	db := setupLiveDB(t)
	accountA, _ := seedAccountAndUser(t, db)
	ctx := context.Background()

	accountB, err := NewAccountDAO(db).CreateAccount(ctx, "Globex")
	require.NoError(t, err)
	userB, err := NewUserDAO(db).CreateUser(ctx, accountB.IDAccount, "other@globex.test", "")
	require.NoError(t, err)

	// userB belongs to accountB, request names accountA.
	id, err := NewNoteDAO(db).CreateNote(ctx, CreateNoteParams{
		IDAccount: accountA.IDAccount,
		IDUser:    userB.IDUser,
		Title:     "Trespass",
		Content:   "x",
	})
	require.Error(t, err)
	assert.Zero(t, id)

	re, ok := apperrors.AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindAuthorizationViolation, re.Kind)
	assert.Equal(t, "userDoesNotBelongToAccount", re.Error())
	assert.Equal(t, int64(0), noteCount(t, db))
}

func TestCreateNoteSoftDeletedUser(t *testing.T) {
	db := setupLiveDB(t)
	account, user := seedAccountAndUser(t, db)
	ctx := context.Background()

	err := db.Model(&models.User{}).
		Where(`"idUser" = ?`, user.IDUser).
		Update("deleted", true).Error
	require.NoError(t, err)

	id, err := NewNoteDAO(db).CreateNote(ctx, CreateNoteParams{
		IDAccount: account.IDAccount,
		IDUser:    user.IDUser,
		Title:     "Ghost",
		Content:   "x",
	})
	require.Error(t, err)
	assert.Zero(t, id)

	re, ok := apperrors.AsRuleError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindAuthorizationViolation, re.Kind)
	assert.Equal(t, int64(0), noteCount(t, db))
}

func TestCreateNoteUnknownUser(t *testing.T) {
	db := setupLiveDB(t)
	account, user := seedAccountAndUser(t, db)
	ctx := context.Background()

	id, err := NewNoteDAO(db).CreateNote(ctx, CreateNoteParams{
		IDAccount: account.IDAccount,
		IDUser:    user.IDUser + 1000,
		Title:     "Nobody",
		Content:   "x",
	})
	require.Error(t, err)
	assert.Zero(t, id)

	_, ok := apperrors.AsRuleError(err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), noteCount(t, db))
}

func TestGetNoteByIDExcludesSoftDeleted(t *testing.T) {
	db := setupLiveDB(t)
	account, user := seedAccountAndUser(t, db)
	noteDAO := NewNoteDAO(db)
	ctx := context.Background()

	id, err := noteDAO.CreateNote(ctx, CreateNoteParams{
		IDAccount: account.IDAccount,
		IDUser:    user.IDUser,
		Title:     "Hidden soon",
		Content:   "x",
	})
	require.NoError(t, err)

	err = db.Model(&models.Note{}).
		Where(`"idNote" = ?`, id).
		Update("deleted", true).Error
	require.NoError(t, err)

	note, err := noteDAO.GetNoteByID(ctx, account.IDAccount, id)
	require.NoError(t, err)
	assert.Nil(t, note, fmt.Sprintf("soft-deleted note %d should be invisible", id))
}
