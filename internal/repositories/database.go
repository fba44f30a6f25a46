package repository

import (
	"database/sql"
	"fmt"

	"github.com/stickjunkey/stickjunkey-backend/internal/config"

	_ "github.com/lib/pq"
)

// Repository owns the shared *sql.DB and the per-aggregate repositories
// built on it. The handle is opened here and closed on shutdown; nothing
// else holds connection state.
type Repository struct {
	DB       *sql.DB
	User     UserRepository
	Item     ItemRepository
	Cart     CartRepository
	Wishlist WishlistRepository
	Order    OrderRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		User:     NewUserRepo(db),
		Item:     NewItemRepo(db),
		Cart:     NewCartRepo(db),
		Wishlist: NewWishlistRepo(db),
		Order:    NewOrderRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
