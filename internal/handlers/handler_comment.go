package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// commentHandler handles the public comments board and its moderation.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
	analytics      utils.AnalyticsEnqueuer
}

func newCommentHandler(cs portssvc.CommentSvcFacade, analytics utils.AnalyticsEnqueuer) *commentHandler {
	return &commentHandler{commentService: cs, analytics: analytics}
}

// listVisibleComments godoc
// @Summary List published comments
// @Tags comments
// @Produce json
// @Success 200 {array} dto.CommentResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comments [get]
func (h *commentHandler) listVisibleComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	comments, err := h.commentService.ListVisibleComments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// listAllComments godoc
// @Summary List every comment, hidden ones included
// @Tags comments
// @Produce json
// @Success 200 {array} dto.CommentResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/comments [get]
func (h *commentHandler) listAllComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	comments, err := h.commentService.ListAllComments(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentResponse(comments))
}

// createComment godoc
// @Summary Leave a comment
// @Description Stores a visitor comment. It stays hidden until an admin publishes it. A blank name is stored as "Anónimo".
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CreateCommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /comments [post]
func (h *commentHandler) createComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to save comment")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "comment_posted", nil)
	c.JSON(http.StatusCreated, dto.CreateCommentResponse{
		Message: "Comment received and pending moderation",
		Comment: dto.ToCommentResponse(comment),
	})
}

// updateVisibility godoc
// @Summary Publish or hide comments
// @Tags comments
// @Accept json
// @Produce json
// @Param updates body []dto.CommentVisibilityUpdate true "Visibility changes"
// @Success 200 {object} dto.BulkUpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments-visibility [put]
func (h *commentHandler) updateVisibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	var updates []dto.CommentVisibilityUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.commentService.UpdateVisibility(c.Request.Context(), updates, adminID); err != nil {
		respondError(c, logger, err, "Failed to update comments")
		return
	}
	c.JSON(http.StatusOK, dto.BulkUpdateResponse{Message: "Comment visibility updated", Updated: len(updates)})
}

// deleteComments godoc
// @Summary Delete comments
// @Tags comments
// @Accept json
// @Produce json
// @Param ids body dto.DeleteCommentsRequest true "Comment IDs"
// @Success 200 {object} dto.DeleteCommentsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments [delete]
func (h *commentHandler) deleteComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := requireAdmin(c, logger)
	if !ok {
		return
	}

	var req dto.DeleteCommentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	deleted, err := h.commentService.DeleteComments(c.Request.Context(), req.IDs, adminID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete comments")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteCommentsResponse{Message: "Comments deleted", Deleted: deleted})
}
