package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JeanCaicedo/FakeStore/pkg/config"
	pkgerrors "github.com/JeanCaicedo/FakeStore/pkg/errors"
	"github.com/JeanCaicedo/FakeStore/pkg/logger"
	"github.com/JeanCaicedo/FakeStore/pkg/types"
)

// stateEntry is the single key/value table backing the adapter.
type stateEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (stateEntry) TableName() string { return "state_entries" }

// SQLiteStore keeps the state slices in a device-local SQLite file.
type SQLiteStore struct {
	conn *gorm.DB
	logg *logger.Logger
}

// NewSQLite opens (and if needed creates) the state file.
func NewSQLite(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*SQLiteStore, error) {
	if cfg.SQLitePath == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&stateEntry{}); err != nil {
		return nil, fmt.Errorf("migrating state db: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "state storage opened")
	}

	return &SQLiteStore{conn: conn, logg: logg}, nil
}

// Load reads the three slices. Corrupt values are logged and treated as
// empty rather than surfaced; stored state is best-effort by design.
func (s *SQLiteStore) Load(ctx context.Context) (types.AppState, error) {
	state := types.AppState{
		Cart:     []types.CartItem{},
		Wishlist: []types.Product{},
	}

	if raw, ok, err := s.get(ctx, KeyUser); err != nil {
		return types.AppState{}, err
	} else if ok {
		var user types.User
		if s.decode(ctx, KeyUser, raw, &user) {
			state.User = &user
		}
	}

	if raw, ok, err := s.get(ctx, KeyCart); err != nil {
		return types.AppState{}, err
	} else if ok {
		var cart []types.CartItem
		if s.decode(ctx, KeyCart, raw, &cart) && cart != nil {
			state.Cart = cart
		}
	}

	if raw, ok, err := s.get(ctx, KeyWishlist); err != nil {
		return types.AppState{}, err
	} else if ok {
		var wishlist []types.Product
		if s.decode(ctx, KeyWishlist, raw, &wishlist) && wishlist != nil {
			state.Wishlist = wishlist
		}
	}

	return state, nil
}

// Save writes all three slices in one transaction. A nil user deletes the
// user key so a fresh load after logout stays logged out.
func (s *SQLiteStore) Save(ctx context.Context, state types.AppState) error {
	cartJSON, err := json.Marshal(emptyIfNilCart(state.Cart))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode cart")
	}
	wishlistJSON, err := json.Marshal(emptyIfNilWishlist(state.Wishlist))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode wishlist")
	}
	var userJSON []byte
	if state.User != nil {
		userJSON, err = json.Marshal(state.User)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeSerialization, err, "encode user")
		}
	}

	err = s.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, KeyCart, string(cartJSON)); err != nil {
			return err
		}
		if err := upsert(tx, KeyWishlist, string(wishlistJSON)); err != nil {
			return err
		}
		if state.User == nil {
			return tx.Delete(&stateEntry{}, "key = ?", KeyUser).Error
		}
		return upsert(tx, KeyUser, string(userJSON))
	})
	if err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var entry stateEntry
	err := s.conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// decode reports whether the stored value parsed; corrupt entries only warn.
func (s *SQLiteStore) decode(ctx context.Context, key, raw string, dest any) bool {
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		if s.logg != nil {
			ctx = s.logg.WithField(ctx, "key", key)
			s.logg.Warn(ctx, "stored state entry is corrupt, treating as empty")
		}
		return false
	}
	return true
}

func upsert(tx *gorm.DB, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&stateEntry{Key: key, Value: value}).Error
}

func emptyIfNilCart(items []types.CartItem) []types.CartItem {
	if items == nil {
		return []types.CartItem{}
	}
	return items
}

func emptyIfNilWishlist(items []types.Product) []types.Product {
	if items == nil {
		return []types.Product{}
	}
	return items
}
