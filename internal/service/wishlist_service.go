package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/giftkart-next/internal/api"
	"github.com/giftkart-next/internal/constants"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/models"
	"github.com/giftkart-next/internal/pubsub"
	"github.com/giftkart-next/internal/queue"
	"github.com/giftkart-next/internal/store"
)

const mirrorCallTimeout = 10 * time.Second

// WishlistReplacedEvent 心愿单整表替换事件载荷
type WishlistReplacedEvent struct {
	UserID int64                  `json:"user_id"`
	Items  []models.WishlistEntry `json:"items"`
}

// WishlistService 心愿单同步服务。
// 持久存储为主（离线优先），远端仅尽力镜像；
// 每次写入后通过总线广播整表替换事件，订阅方以事件内容覆盖本地视图。
type WishlistService struct {
	durable store.KV
	client  *api.Client
	bus     *pubsub.Bus
	queue   *queue.Client

	mu     sync.RWMutex
	byUser map[int64][]models.WishlistEntry
}

// NewWishlistService 创建心愿单服务并订阅替换事件
func NewWishlistService(durable store.KV, client *api.Client, bus *pubsub.Bus, queueClient *queue.Client) *WishlistService {
	s := &WishlistService{
		durable: durable,
		client:  client,
		bus:     bus,
		queue:   queueClient,
		byUser:  make(map[int64][]models.WishlistEntry),
	}
	if bus != nil {
		bus.Subscribe(constants.TopicWishlistReplaced, s.onReplaced)
	}
	return s
}

// Items 返回用户心愿单快照（内存视图缺失时从持久存储加载）
func (s *WishlistService) Items(sess models.Session) []models.WishlistEntry {
	if !sess.Valid() {
		return []models.WishlistEntry{}
	}
	s.mu.RLock()
	cached, ok := s.byUser[sess.UserID]
	s.mu.RUnlock()
	if ok {
		out := make([]models.WishlistEntry, len(cached))
		copy(out, cached)
		return out
	}
	entries := s.loadLocal(sess.UserID)
	s.mu.Lock()
	s.byUser[sess.UserID] = entries
	s.mu.Unlock()
	out := make([]models.WishlistEntry, len(entries))
	copy(out, entries)
	return out
}

// SetItems 整表替换：规范化、持久化并广播
func (s *WishlistService) SetItems(sess models.Session, next []models.WishlistEntry) bool {
	if !sess.Valid() {
		return false
	}
	normalized := models.NormalizeWishlist(next)
	s.persistAndBroadcast(sess.UserID, normalized)
	return true
}

// Add 加入心愿单；按规范化 ID 严格字符串相等去重，重复加入不改变列表
func (s *WishlistService) Add(sess models.Session, item models.WishlistEntry) bool {
	if !sess.Valid() {
		return false
	}
	entry := item.Normalize()
	if entry.NormalizedID() == "" {
		return false
	}
	current := s.Items(sess)
	for _, existing := range current {
		if existing.NormalizedID() == entry.NormalizedID() {
			return true
		}
	}
	next := append([]models.WishlistEntry{entry}, current...)
	s.persistAndBroadcast(sess.UserID, next)
	s.mirror(sess, constants.WishlistMirrorActionAdd, entry)
	return true
}

// Remove 移除心愿单条目；目标不存在时为幂等空操作
func (s *WishlistService) Remove(sess models.Session, productID string) bool {
	if !sess.Valid() {
		return false
	}
	target := strings.TrimSpace(productID)
	current := s.Items(sess)
	next := make([]models.WishlistEntry, 0, len(current))
	var removed *models.WishlistEntry
	for _, entry := range current {
		if entry.NormalizedID() == target {
			e := entry
			removed = &e
			continue
		}
		next = append(next, entry)
	}
	s.persistAndBroadcast(sess.UserID, next)
	if removed != nil {
		s.mirror(sess, constants.WishlistMirrorActionRemove, *removed)
	}
	return true
}

// ToggleVariant 变体级心愿切换（商品 ID + EAN 组合键）。
// EAN 码或图片地址为空时直接空操作，避免收下无法展示的条目。
func (s *WishlistService) ToggleVariant(sess models.Session, entry models.WishlistEntry) bool {
	if !sess.Valid() {
		return false
	}
	normalized := entry.Normalize()
	ean := strings.TrimSpace(normalized.EANCode)
	image := strings.TrimSpace(entry.Image)
	if ean == "" || image == "" {
		return false
	}
	key := models.VariantKey(normalized.NormalizedID(), ean)

	variants := s.loadVariantMap(sess.UserID)
	if _, exists := variants[key]; exists {
		delete(variants, key)
		s.saveVariantMap(sess.UserID, variants)
		s.removeVariantEntry(sess, normalized.NormalizedID(), ean)
		s.mirror(sess, constants.WishlistMirrorActionRemove, normalized)
		return true
	}

	variants[key] = models.VariantChoice{Image: image, Color: normalized.Color}
	s.saveVariantMap(sess.UserID, variants)

	current := s.Items(sess)
	for _, existing := range current {
		if existing.NormalizedID() == normalized.NormalizedID() && strings.TrimSpace(existing.EANCode) == ean {
			s.mirror(sess, constants.WishlistMirrorActionAdd, normalized)
			return true
		}
	}
	next := append([]models.WishlistEntry{normalized}, current...)
	s.persistAndBroadcast(sess.UserID, next)
	s.mirror(sess, constants.WishlistMirrorActionAdd, normalized)
	return true
}

// VariantChoices 返回用户的变体选择映射
func (s *WishlistService) VariantChoices(sess models.Session) map[string]models.VariantChoice {
	if !sess.Valid() {
		return map[string]models.VariantChoice{}
	}
	return s.loadVariantMap(sess.UserID)
}

// HydrateRemote 从远端拉取心愿单并整表替换（变体感知页面初始化）。
// 拉取失败保留本地现状。
func (s *WishlistService) HydrateRemote(ctx context.Context, sess models.Session) bool {
	if !sess.Valid() {
		return false
	}
	entries, err := s.client.FetchWishlist(ctx, sess.UserID)
	if err != nil {
		logger.Warnw("wishlist_hydrate_failed", "user_id", sess.UserID, "error", err)
		return false
	}
	s.persistAndBroadcast(sess.UserID, models.NormalizeWishlist(entries))

	variants := s.loadVariantMap(sess.UserID)
	for _, entry := range entries {
		ean := strings.TrimSpace(entry.EANCode)
		if ean == "" || strings.TrimSpace(entry.Image) == "" {
			continue
		}
		variants[models.VariantKey(entry.NormalizedID(), ean)] = models.VariantChoice{
			Image: entry.Image,
			Color: entry.Color,
		}
	}
	s.saveVariantMap(sess.UserID, variants)
	return true
}

func (s *WishlistService) removeVariantEntry(sess models.Session, productID, ean string) {
	current := s.Items(sess)
	next := make([]models.WishlistEntry, 0, len(current))
	for _, entry := range current {
		if entry.NormalizedID() == productID && strings.TrimSpace(entry.EANCode) == ean {
			continue
		}
		next = append(next, entry)
	}
	s.persistAndBroadcast(sess.UserID, next)
}

func (s *WishlistService) persistAndBroadcast(userID int64, entries []models.WishlistEntry) {
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	if err := store.SetJSON(s.durable, store.WishlistKey(userID), entries); err != nil {
		logger.Warnw("wishlist_persist_failed", "user_id", userID, "error", err)
	}
	s.mu.Lock()
	s.byUser[userID] = entries
	s.mu.Unlock()
	if s.bus != nil {
		payload, err := json.Marshal(WishlistReplacedEvent{UserID: userID, Items: entries})
		if err == nil {
			s.bus.Publish(constants.TopicWishlistReplaced, payload)
		}
	}
}

// onReplaced 收到替换事件后以事件内容覆盖内存视图
func (s *WishlistService) onReplaced(_ string, payload []byte) {
	var event WishlistReplacedEvent
	if err := json.Unmarshal(payload, &event); err != nil || event.UserID <= 0 {
		return
	}
	items := event.Items
	if items == nil {
		items = []models.WishlistEntry{}
	}
	s.mu.Lock()
	s.byUser[event.UserID] = items
	s.mu.Unlock()
}

// mirror 远端尽力镜像：队列可用走队列，否则后台直调并吞掉失败
func (s *WishlistService) mirror(sess models.Session, action string, entry models.WishlistEntry) {
	payload := queue.WishlistMirrorPayload{
		UserID: sess.UserID,
		Action: action,
		Entry:  entry,
	}
	if s.queue.Enabled() {
		if err := s.queue.EnqueueWishlistMirror(payload); err != nil {
			logger.Warnw("wishlist_mirror_enqueue_failed", "user_id", sess.UserID, "error", err)
		}
		return
	}
	if s.client == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorCallTimeout)
		defer cancel()
		if err := MirrorWishlist(ctx, s.client, payload); err != nil {
			logger.Warnw("wishlist_mirror_failed",
				"user_id", sess.UserID,
				"action", action,
				"error", err,
			)
		}
	}()
}

// MirrorWishlist 执行一次远端镜像调用（队列消费方复用）
func MirrorWishlist(ctx context.Context, client *api.Client, payload queue.WishlistMirrorPayload) error {
	mutation := api.WishlistMutation{
		UserID:    payload.UserID,
		ProductID: payload.Entry.NormalizedID(),
		EANCode:   payload.Entry.EANCode,
		ImageURL:  payload.Entry.Image,
		Color:     payload.Entry.Color,
	}
	if payload.Action == constants.WishlistMirrorActionRemove {
		return client.MirrorWishlistRemove(ctx, mutation)
	}
	return client.MirrorWishlistAdd(ctx, mutation)
}

func (s *WishlistService) loadLocal(userID int64) []models.WishlistEntry {
	raw, ok := s.durable.Get(store.WishlistKey(userID))
	if !ok {
		return []models.WishlistEntry{}
	}
	return models.DecodeWishlist(raw)
}

func (s *WishlistService) loadVariantMap(userID int64) map[string]models.VariantChoice {
	variants := map[string]models.VariantChoice{}
	store.GetJSON(s.durable, store.VariantMapKey(userID), &variants)
	if variants == nil {
		variants = map[string]models.VariantChoice{}
	}
	return variants
}

func (s *WishlistService) saveVariantMap(userID int64, variants map[string]models.VariantChoice) {
	if err := store.SetJSON(s.durable, store.VariantMapKey(userID), variants); err != nil {
		logger.Warnw("wishlist_variant_persist_failed", "user_id", userID, "error", err)
	}
}
