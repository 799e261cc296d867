package store

import (
	"strconv"

	"github.com/giftkart-next/internal/constants"
)

// WishlistKey 返回某用户的心愿单存储键
func WishlistKey(userID int64) string {
	return constants.StoreKeyWishlistPrefix + strconv.FormatInt(userID, 10)
}

// VariantMapKey 返回某用户的变体映射存储键
func VariantMapKey(userID int64) string {
	return constants.StoreKeyVariantMapPrefix + strconv.FormatInt(userID, 10)
}
