package shop

import (
	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/models"

	"github.com/gin-gonic/gin"
)

// currentSession 取当前会话；无已登录用户时直接回 401 并返回 false
func (h *Handler) currentSession(c *gin.Context) (models.Session, bool) {
	sess := h.SessionService.Current()
	if !sess.Valid() {
		response.Unauthorized(c, "error.no_session")
		return models.Session{}, false
	}
	return sess, true
}
