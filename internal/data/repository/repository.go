package repository

import (
	"pizza-delivery/internal/data/store"

	"go.uber.org/zap"
)

// Collection names, one directory each under the data dir.
const (
	CollectionUsers     = "users"
	CollectionTokens    = "tokens"
	CollectionCarts     = "carts"
	CollectionOrders    = "orders"
	CollectionMenuItems = "menu-items"
)

// Collections lists every collection the application uses, in the order
// the startup worker creates them.
var Collections = []string{
	CollectionCarts,
	CollectionMenuItems,
	CollectionOrders,
	CollectionTokens,
	CollectionUsers,
}

type Repository struct {
	User  UserRepository
	Token TokenRepository
	Cart  CartRepository
	Order OrderRepository
	Menu  MenuRepository
}

func NewRepository(db *store.Store, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Token: NewTokenRepository(db, log),
		Cart:  NewCartRepository(db, log),
		Order: NewOrderRepository(db, log),
		Menu:  NewMenuRepository(db, log),
	}
}
