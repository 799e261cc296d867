package service

import "errors"

// ErrTokenInvalid 会话令牌无效
var ErrTokenInvalid = errors.New("session token invalid")
