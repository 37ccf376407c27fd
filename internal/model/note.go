package model

const (
	NoteStateNormal  = 1
	NoteStateDeleted = 2
)

type Note struct {
	NoteID      string `json:"note_id"`
	UserID      string `json:"user_id"`
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
	Color       string `json:"color"`
	CreatedBy   string `json:"created_by"`
	UpdatedBy   string `json:"updated_by,omitempty"`
	State       int    `json:"-"`
	CreateOn    int64  `json:"create_on"`
	LastUpdate  int64  `json:"last_update"`
}
