package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"stickynotes/internal/model"
	"stickynotes/internal/pkg/dbutil"
	appErr "stickynotes/internal/pkg/errors"
)

var accountFields = []string{"user_id", "user_name", "user_email", "password_hash", "create_on", "last_update"}

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Create(ctx context.Context, account *model.Account) error {
	data := map[string]interface{}{
		"user_id":       account.UserID,
		"user_name":     account.UserName,
		"user_email":    account.UserEmail,
		"password_hash": account.PasswordHash,
		"create_on":     account.CreateOn,
		"last_update":   account.LastUpdate,
	}
	sqlStr, args, err := builder.BuildInsert("accounts", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		// the unique index on user_email closes the check-then-insert race
		if dbutil.IsConflict(err) {
			return appErr.ErrEmailTaken
		}
		return classify(err)
	}
	return nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.getOne(ctx, map[string]interface{}{"user_email": email})
}

func (r *AccountRepo) GetByID(ctx context.Context, userID string) (*model.Account, error) {
	return r.getOne(ctx, map[string]interface{}{"user_id": userID})
}

func (r *AccountRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.Account, error) {
	sqlStr, args, err := builder.BuildSelect("accounts", where, accountFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var account model.Account
	if err := rows.Scan(&account.UserID, &account.UserName, &account.UserEmail, &account.PasswordHash, &account.CreateOn, &account.LastUpdate); err != nil {
		return nil, classify(err)
	}
	return &account, nil
}
