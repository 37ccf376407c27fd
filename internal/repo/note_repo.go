package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"stickynotes/internal/model"
	"stickynotes/internal/pkg/dbutil"
	appErr "stickynotes/internal/pkg/errors"
)

var noteFields = []string{"note_id", "user_id", "note_title", "note_content", "color", "created_by", "updated_by", "state", "create_on", "last_update"}

type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) Create(ctx context.Context, note *model.Note) error {
	data := map[string]interface{}{
		"note_id":      note.NoteID,
		"user_id":      note.UserID,
		"note_title":   note.NoteTitle,
		"note_content": note.NoteContent,
		"color":        note.Color,
		"created_by":   note.CreatedBy,
		"state":        note.State,
		"create_on":    note.CreateOn,
		"last_update":  note.LastUpdate,
	}
	sqlStr, args, err := builder.BuildInsert("notes", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return classify(err)
	}
	return nil
}

func (r *NoteRepo) ListByOwner(ctx context.Context, userID string) ([]model.Note, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"state":    model.NoteStateNormal,
		"_orderby": "create_on desc",
	}
	sqlStr, args, err := builder.BuildSelect("notes", where, noteFields)
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
	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, classify(err)
		}
		notes = append(notes, *note)
	}
	return notes, classify(rows.Err())
}

// GetByID filters by both note id and owner: a note belonging to someone
// else is indistinguishable from a missing one.
func (r *NoteRepo) GetByID(ctx context.Context, userID, noteID string) (*model.Note, error) {
	where := map[string]interface{}{
		"note_id": noteID,
		"user_id": userID,
		"state":   model.NoteStateNormal,
	}
	sqlStr, args, err := builder.BuildSelect("notes", where, noteFields)
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
	note, err := scanNote(rows)
	if err != nil {
		return nil, classify(err)
	}
	return note, nil
}

func (r *NoteRepo) Update(ctx context.Context, userID, noteID string, fields map[string]interface{}) error {
	where := map[string]interface{}{
		"note_id": noteID,
		"user_id": userID,
		"state":   model.NoteStateNormal,
	}
	sqlStr, args, err := builder.BuildUpdate("notes", where, fields)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

// MarkDeleted soft-deletes the note; the purge job removes the row later.
func (r *NoteRepo) MarkDeleted(ctx context.Context, userID, noteID string, mtime int64) error {
	return r.Update(ctx, userID, noteID, map[string]interface{}{
		"state":       model.NoteStateDeleted,
		"last_update": mtime,
	})
}

func (r *NoteRepo) PurgeDeleted(ctx context.Context, cutoff int64) (int64, error) {
	where := map[string]interface{}{
		"state":         model.NoteStateDeleted,
		"last_update <": cutoff,
	}
	sqlStr, args, err := builder.BuildDelete("notes", where)
	if err != nil {
		return 0, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, classify(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, classify(err)
	}
	return affected, nil
}

func scanNote(rows *sql.Rows) (*model.Note, error) {
	var note model.Note
	var updatedBy sql.NullString
	if err := rows.Scan(&note.NoteID, &note.UserID, &note.NoteTitle, &note.NoteContent, &note.Color, &note.CreatedBy, &updatedBy, &note.State, &note.CreateOn, &note.LastUpdate); err != nil {
		return nil, err
	}
	note.UpdatedBy = updatedBy.String
	return &note, nil
}
