package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/logger"
)

// SuggestService 搜索联想服务。
// 新输入到来时取消上一个在途请求，过期响应永远不会覆盖较新的结果。
type SuggestService struct {
	client *api.Client

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

// NewSuggestService 创建搜索联想服务
func NewSuggestService(client *api.Client) *SuggestService {
	return &SuggestService{client: client}
}

// Suggest 获取联想词；返回 false 表示结果已过期或请求失败
func (s *SuggestService) Suggest(ctx context.Context, query string) ([]api.Suggestion, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []api.Suggestion{}, true
	}

	s.mu.Lock()
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	requestCtx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	suggestions, err := s.client.SearchSuggestions(requestCtx, trimmed)

	s.mu.Lock()
	latest := generation == s.generation
	if latest {
		s.cancelPrev = nil
		cancel()
	}
	s.mu.Unlock()

	if !latest {
		return nil, false
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Debugw("suggest_fetch_failed", "query", trimmed, "error", err)
		}
		return []api.Suggestion{}, false
	}
	return suggestions, true
}
