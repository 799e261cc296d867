package provider

import (
	"time"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/config"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/pubsub"
	"github.com/giftkart-next/internal/queue"
	"github.com/giftkart-next/internal/service"
	"github.com/giftkart-next/internal/store"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	APIClient   *api.Client

	// Stores
	SessionStore store.KV
	DurableStore store.KV

	// Eventing
	Bus   *pubsub.Bus
	Relay *pubsub.RedisRelay

	// Services
	SessionService  *service.SessionService
	CartService     *service.CartService
	WishlistService *service.WishlistService
	PricingService  *service.PricingService
	CheckoutService *service.CheckoutService
	OrdersService   *service.OrdersService
	SuggestService  *service.SuggestService
	CatalogService  *service.CatalogService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 远端商城客户端
	timeout := time.Duration(cfg.API.TimeoutMS) * time.Millisecond
	c.APIClient = api.New(cfg.API.NormalizedBaseURL(), timeout)

	// 本地存储
	c.SessionStore = store.NewMemoryStore()
	c.DurableStore = store.NewGormStore(models.DB)

	// 事件总线与跨进程中继
	c.Bus = pubsub.NewBus()
	c.Relay = pubsub.NewRedisRelay(&cfg.Redis)
	if c.Relay != nil {
		c.Bus.AttachRelay(c.Relay)
	}

	// 队列客户端
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			c.QueueClient = qc
		}
	}

	// 服务装配
	c.SessionService = service.NewSessionService(c.SessionStore, c.DurableStore, cfg.SessionJWT.SecretKey)
	c.CartService = service.NewCartService(c.APIClient)
	c.WishlistService = service.NewWishlistService(c.DurableStore, c.APIClient, c.Bus, c.QueueClient)
	c.PricingService = service.NewPricingService(cfg.Pricing.GiftWrapFee)
	c.CheckoutService = service.NewCheckoutService(c.SessionStore, c.DurableStore, c.APIClient, c.PricingService)
	c.OrdersService = service.NewOrdersService(c.APIClient)
	c.SuggestService = service.NewSuggestService(c.APIClient)
	c.CatalogService = service.NewCatalogService(c.APIClient)

	return c
}
