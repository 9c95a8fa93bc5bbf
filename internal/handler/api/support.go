package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"hotel-booking/internal/domain/support"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	eventBuffer       = 16
	keepAliveInterval = 25 * time.Second
)

type SupportHandler struct {
	cmds   commands.SupportCommands
	q      queries.SupportQueries
	events commands.EventSubscriber
}

func NewSupportHandler(cmds commands.SupportCommands, q queries.SupportQueries, events commands.EventSubscriber) *SupportHandler {
	return &SupportHandler{cmds: cmds, q: q, events: events}
}

// @Summary Open support request
// @Description Start a new support thread with its first message
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenThreadRequest true "First message"
// @Success 201 {object} resdto.ThreadResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /client/support-requests [post]
func (h *SupportHandler) Open(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	var req reqdto.OpenThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	t, err := h.cmds.OpenThread(c.Request.Context(), userID, req.Text)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to open support request")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOpenedThread(t))
}

// @Summary List own support requests
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Param isActive query string false "true or false"
// @Success 200 {array} resdto.ThreadResponse
// @Failure 400 {object} httperr.Response
// @Router /client/support-requests [get]
func (h *SupportHandler) ListForClient(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	page, active, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.q.ListForClient(c.Request.Context(), userID, page, active)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list support requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromThreadSummaries(views))
}

// @Summary List all support requests
// @Description Includes the client's contact details
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Offset"
// @Param isActive query string false "true or false"
// @Success 200 {array} resdto.ThreadResponse
// @Failure 400 {object} httperr.Response
// @Router /manager/support-requests [get]
func (h *SupportHandler) ListForManager(c *gin.Context) {
	page, active, ok := h.bindList(c)
	if !ok {
		return
	}

	views, err := h.q.ListForManager(c.Request.Context(), page, active)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list support requests")
		return
	}
	c.JSON(http.StatusOK, resdto.FromThreadSummaries(views))
}

func (h *SupportHandler) bindList(c *gin.Context) (queries.Page, *bool, bool) {
	var query reqdto.ListThreadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return queries.Page{}, nil, false
	}
	page, active, err := query.Parse()
	if err != nil {
		abortWithUsecaseError(c, err, "Invalid list parameters")
		return queries.Page{}, nil, false
	}
	return page, active, true
}

// @Summary Close support request
// @Tags support
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /manager/support-requests/{id}/close [post]
func (h *SupportHandler) Close(c *gin.Context) {
	if err := h.cmds.CloseThread(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUsecaseError(c, err, "Failed to close support request")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List messages
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /common/support-requests/{id}/messages [get]
func (h *SupportHandler) Messages(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}

	views, err := h.q.GetMessages(c.Request.Context(), c.Param("id"), *p)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageViews(views))
}

// @Summary Send message
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.SentMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /common/support-requests/{id}/messages [post]
func (h *SupportHandler) Send(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	msg, err := h.cmds.AppendMessage(c.Request.Context(), c.Param("id"), *p, req.Text)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessage(msg))
}

// @Summary Mark messages read
// @Description Marks the other party's messages sent before createdBefore as read
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Param request body reqdto.MarkReadRequest true "Cut-off"
// @Success 200 {object} resdto.MarkReadResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /common/support-requests/{id}/messages/read [post]
func (h *SupportHandler) MarkRead(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	var req reqdto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	marked, err := h.cmds.MarkMessagesRead(c.Request.Context(), c.Param("id"), *p, req.CreatedBefore)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to mark messages read")
		return
	}
	c.JSON(http.StatusOK, resdto.MarkReadResponse{Success: true, Marked: marked})
}

// @Summary Unread message count
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Success 200 {object} resdto.UnreadCountResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /common/support-requests/{id}/unread-count [get]
func (h *SupportHandler) UnreadCount(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}

	count, err := h.q.UnreadCount(c.Request.Context(), c.Param("id"), *p)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to count unread messages")
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Stream thread events
// @Description Server-sent events: one "unread" frame on connect, then a "message" frame per new message
// @Tags support
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Support request ID"
// @Success 200 {object} resdto.MessageEvent
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /common/support-requests/{id}/events [get]
func (h *SupportHandler) Events(c *gin.Context) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required", nil)
		return
	}
	threadID := c.Param("id")

	// Also rejects unknown threads and foreign clients before the stream opens.
	unread, err := h.q.UnreadCount(c.Request.Context(), threadID, *p)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to open event stream")
		return
	}

	ch := make(chan support.MessageAppended, eventBuffer)
	unsubscribe := h.events.Subscribe("sse:"+threadID, func(_ context.Context, ev support.MessageAppended) error {
		if ev.ThreadID != threadID {
			return nil
		}
		select {
		case ch <- ev:
		default:
		}
		return nil
	})
	defer unsubscribe()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("unread", resdto.UnreadCountResponse{Count: unread})

	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev := <-ch:
			c.SSEvent("message", resdto.FromMessageAppended(ev))
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{})
			return true
		}
	})
}
