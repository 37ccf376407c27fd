package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stickynotes/internal/pkg/response"
	"stickynotes/internal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteCreateRequest struct {
	NoteTitle   string `json:"note_title" binding:"required"`
	NoteContent string `json:"note_content" binding:"required"`
	Color       string `json:"color"`
}

type noteUpdateRequest struct {
	NoteTitle   *string `json:"note_title"`
	NoteContent *string `json:"note_content"`
	Color       *string `json:"color"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req noteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "title and content are required")
		return
	}
	note, err := h.notes.Create(c.Request.Context(), currentAccount(c), service.NoteCreateInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
		Color:   req.Color,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), currentAccount(c).UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Get(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), currentAccount(c).UserID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	var req noteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	note, err := h.notes.Update(c.Request.Context(), currentAccount(c), c.Param("id"), service.NoteUpdateInput{
		Title:   req.NoteTitle,
		Content: req.NoteContent,
		Color:   req.Color,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.notes.Delete(c.Request.Context(), currentAccount(c).UserID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
