package service

import (
	"context"
	"strings"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/logger"
)

// CatalogService 商品浏览（匿名可用，失败降级为空）
type CatalogService struct {
	client *api.Client
}

// NewCatalogService 创建商品浏览服务
func NewCatalogService(client *api.Client) *CatalogService {
	return &CatalogService{client: client}
}

// List 按分类获取商品；category 为空时返回全量
func (s *CatalogService) List(ctx context.Context, category string) []api.Product {
	products, err := s.client.FetchProducts(ctx, strings.TrimSpace(category))
	if err != nil {
		logger.Warnw("catalog_list_failed", "category", category, "error", err)
		return []api.Product{}
	}
	return products
}
