package shop

import (
	"errors"

	"github.com/giftkart-next/internal/http/response"
	"github.com/giftkart-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionRequest 建立会话请求
type SessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// EstablishSession 校验导航壳签发的令牌并建立会话
func (h *Handler) EstablishSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	sess, err := h.SessionService.Establish(req.Token)
	if err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			response.Unauthorized(c, "error.token_invalid")
			return
		}
		response.Error(c, response.CodeInternal, "error.session_failed")
		return
	}
	response.Success(c, gin.H{
		"user_id":   sess.UserID,
		"user_type": sess.UserType,
	})
}

// GetSession 查询当前会话
func (h *Handler) GetSession(c *gin.Context) {
	sess := h.SessionService.Current()
	if !sess.Valid() {
		response.Unauthorized(c, "error.no_session")
		return
	}
	response.Success(c, gin.H{
		"user_id":   sess.UserID,
		"user_type": sess.UserType,
	})
}

// ClearSession 结束会话
func (h *Handler) ClearSession(c *gin.Context) {
	h.SessionService.Clear()
	response.Success(c, gin.H{"cleared": true})
}
