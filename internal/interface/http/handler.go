package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hananasr/faqchat/internal/domain/chat"
	"github.com/hananasr/faqchat/internal/domain/faq"
	apperrors "github.com/hananasr/faqchat/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chatSvc chat.Service
	faqSvc  faq.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chatSvc chat.Service, faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		faqSvc:  faqSvc,
		logger:  logger.With("component", "http.handler"),
	}
}

// Chat answers a question in the language it was asked.
func (h *Handler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.chatSvc.Answer(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "chat_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "translate_error"):
			status = http.StatusBadGateway
			code = "translate_error"
		case apperrors.IsCode(err, "search_error"), apperrors.IsCode(err, "corpus_error"):
			status = http.StatusBadGateway
			code = "search_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Faqs lists the loaded corpus in index order.
func (h *Handler) Faqs(c *gin.Context) {
	entries, err := h.faqSvc.Entries(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "corpus_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": entries, "count": len(entries)})
}

// ReloadFaqs re-reads the data file and rebuilds the similarity index.
func (h *Handler) ReloadFaqs(c *gin.Context) {
	if err := h.faqSvc.Reload(c.Request.Context()); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "corpus_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
