// controllers/note.go
package controllers

import (
	"net/http"

	"restaurent-app-backend/services"
	"restaurent-app-backend/utils"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	Board *services.NoticeBoard
}

// GetNotes lists the unresolved supervisor notes. An emptied board carries
// the completion message instead of data.
func (nc *NoteController) GetNotes(c *gin.Context) {
	if _, ok := utils.SessionFromContext(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	notes := nc.Board.Notes()
	if len(notes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": services.AllResolvedMessage,
			"data":    notes,
		})
		return
	}

	utils.RespondWithData(c, http.StatusOK, notes)
}

// ResolveNote removes one note from the board.
func (nc *NoteController) ResolveNote(c *gin.Context) {
	if _, ok := utils.SessionFromContext(c); !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Session not found in context")
		return
	}

	if !nc.Board.Resolve(c.Param("id")) {
		utils.RespondWithError(c, http.StatusOK, "Note not found")
		return
	}

	utils.RespondWithMessage(c, http.StatusOK, "Note resolved")
}
