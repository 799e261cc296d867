package constants

// 用户定价类型常量
const (
	UserTypeRetail   = "retail"
	UserTypeBusiness = "business"
)

// 购物车规格占位值（未选择尺码/颜色时）
const CartOptionUnset = "unset"

// 本地存储键常量
const (
	StoreKeyUserID          = "user_id"
	StoreKeyUserType        = "user_type"
	StoreKeyCheckoutPayload = "tk_checkout_payload"
	StoreKeyCheckoutAddress = "tk_checkout_address"
)

// 本地存储键前缀（按用户拼接）
const (
	StoreKeyWishlistPrefix   = "wishlist:local:"
	StoreKeyVariantMapPrefix = "wishlist:variant-map:"
)

// 优惠码常量（固定白名单）
const (
	CouponCodeBlue10   = "BLUE10"
	CouponCodeFreeShip = "FREESHIP"
)

// 优惠码结果常量
const (
	CouponResultApplied  = "applied"
	CouponResultShipping = "free_shipping"
	CouponResultRejected = "rejected"
)

// 礼品包装固定费用
const GiftWrapFlatFee = 39

// 队列名称常量
const QueueDefault = "default"

// 异步任务类型常量
const TaskWishlistMirror = "wishlist:mirror"

// 心愿单镜像动作常量
const (
	WishlistMirrorActionAdd    = "add"
	WishlistMirrorActionRemove = "remove"
)

// 心愿单展示图占位地址
const WishlistImagePlaceholder = "/images/placeholder.png"

// 事件主题常量
const (
	TopicWishlistReplaced = "wishlist.replaced"
)
