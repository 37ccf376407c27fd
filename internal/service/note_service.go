package service

import (
	"context"

	"stickynotes/internal/model"
	"stickynotes/internal/pkg/timeutil"
)

const defaultNoteColor = "#ffffff"

type NoteService struct {
	notes NoteStore
}

func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

type NoteCreateInput struct {
	Title   string
	Content string
	Color   string
}

// NoteUpdateInput carries only the fields the caller supplied; nil means
// leave the stored value alone.
type NoteUpdateInput struct {
	Title   *string
	Content *string
	Color   *string
}

func (s *NoteService) Create(ctx context.Context, identity *model.Account, in NoteCreateInput) (*model.Note, error) {
	now := timeutil.NowUnix()
	color := in.Color
	if color == "" {
		color = defaultNoteColor
	}
	note := &model.Note{
		NoteID:      newID(),
		UserID:      identity.UserID,
		NoteTitle:   in.Title,
		NoteContent: in.Content,
		Color:       color,
		CreatedBy:   identity.UserName,
		State:       model.NoteStateNormal,
		CreateOn:    now,
		LastUpdate:  now,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]model.Note, error) {
	return s.notes.ListByOwner(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*model.Note, error) {
	return s.notes.GetByID(ctx, userID, noteID)
}

func (s *NoteService) Update(ctx context.Context, identity *model.Account, noteID string, in NoteUpdateInput) (*model.Note, error) {
	fields := map[string]interface{}{
		"last_update": timeutil.NowUnix(),
		"updated_by":  identity.UserName,
	}
	if in.Title != nil {
		fields["note_title"] = *in.Title
	}
	if in.Content != nil {
		fields["note_content"] = *in.Content
	}
	if in.Color != nil {
		fields["color"] = *in.Color
	}
	if err := s.notes.Update(ctx, identity.UserID, noteID, fields); err != nil {
		return nil, err
	}
	return s.notes.GetByID(ctx, identity.UserID, noteID)
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	return s.notes.MarkDeleted(ctx, userID, noteID, timeutil.NowUnix())
}
