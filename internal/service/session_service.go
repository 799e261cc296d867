package service

import (
	"strconv"
	"strings"

	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/store"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims 会话令牌声明（由导航壳签发）
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// SessionService 会话服务：身份写入会话存储，类型镜像到持久存储
type SessionService struct {
	sessionStore store.KV
	durableStore store.KV
	secretKey    string
}

// NewSessionService 创建会话服务
func NewSessionService(sessionStore, durableStore store.KV, secretKey string) *SessionService {
	return &SessionService{
		sessionStore: sessionStore,
		durableStore: durableStore,
		secretKey:    secretKey,
	}
}

// Establish 校验令牌并建立会话
func (s *SessionService) Establish(tokenString string) (models.Session, error) {
	if strings.TrimSpace(s.secretKey) == "" {
		return models.Session{}, ErrTokenInvalid
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &SessionClaims{}
	token, err := parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID <= 0 {
		return models.Session{}, ErrTokenInvalid
	}

	sess := models.Session{
		UserID:   claims.UserID,
		UserType: claims.UserType,
	}
	sess.UserType = sess.NormalizedUserType()

	_ = s.sessionStore.Set(constants.StoreKeyUserID, strconv.FormatInt(sess.UserID, 10))
	_ = s.sessionStore.Set(constants.StoreKeyUserType, sess.UserType)
	// 类型镜像到持久存储，换会话后仍可作为默认值
	_ = s.durableStore.Set(constants.StoreKeyUserType, sess.UserType)
	return sess, nil
}

// Current 读取当前会话；无有效用户 ID 时返回零值会话
func (s *SessionService) Current() models.Session {
	raw, _ := s.sessionStore.Get(constants.StoreKeyUserID)
	userID, ok := models.ParseUserID(raw)
	if !ok {
		return models.Session{}
	}
	userType, found := s.sessionStore.Get(constants.StoreKeyUserType)
	if !found || strings.TrimSpace(userType) == "" {
		userType, _ = s.durableStore.Get(constants.StoreKeyUserType)
	}
	sess := models.Session{UserID: userID, UserType: userType}
	sess.UserType = sess.NormalizedUserType()
	return sess
}

// Clear 结束会话（持久存储中的类型镜像保留）
func (s *SessionService) Clear() {
	_ = s.sessionStore.Delete(constants.StoreKeyUserID)
	_ = s.sessionStore.Delete(constants.StoreKeyUserType)
}
