package models

import (
	"strconv"
	"strings"

	"github.com/giftkart-next/internal/constants"
)

// Session 当前访问者身份（显式传入各核心操作，不做全局状态）
type Session struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"` // retail / business
}

// Valid 是否存在已登录用户（用户 ID 必须为正整数）
func (s Session) Valid() bool {
	return s.UserID > 0
}

// IsBusiness 是否为企业定价用户
func (s Session) IsBusiness() bool {
	return strings.EqualFold(strings.TrimSpace(s.UserType), constants.UserTypeBusiness)
}

// NormalizedUserType 返回规范化的用户类型（未知值按零售处理）
func (s Session) NormalizedUserType() string {
	if s.IsBusiness() {
		return constants.UserTypeBusiness
	}
	return constants.UserTypeRetail
}

// ParseUserID 解析用户 ID；非正整数一律视为未登录
func ParseUserID(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
