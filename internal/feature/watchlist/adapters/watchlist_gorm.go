// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"astock_backend/internal/feature/watchlist/domain"
	"astock_backend/internal/feature/watchlist/domain/entity"
	"astock_backend/internal/feature/watchlist/usecase"
)

// watchlistMySQL はWatchlistRepositoryインターフェースのMySQL実装です。
type watchlistMySQL struct {
	db *gorm.DB
}

var _ usecase.WatchlistRepository = (*watchlistMySQL)(nil)

// NewWatchlistRepository は指定されたDB接続でwatchlistMySQLリポジトリの新しいインスタンスを生成します。
// 重複検出はsymbol主キーの一意制約に委ねるため、gorm.Config.TranslateErrorが有効である必要があります。
func NewWatchlistRepository(db *gorm.DB) *watchlistMySQL {
	return &watchlistMySQL{db: db}
}

// Insert はエントリを1件追加します。
// 既に同じsymbolが存在する場合はdomain.ErrSymbolAlreadyExistsを返します。
// 重複チェックと挿入は一意制約により単一の原子的操作として実行されます。
func (r *watchlistMySQL) Insert(ctx context.Context, e *entity.WatchlistEntry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSymbolAlreadyExists
		}
		return err
	}
	return nil
}

// Delete は指定されたsymbolのエントリを削除します。
// 存在しない場合はdomain.ErrSymbolNotFoundを返します。
func (r *watchlistMySQL) Delete(ctx context.Context, symbol string) error {
	tx := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Delete(&entity.WatchlistEntry{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrSymbolNotFound
	}
	return nil
}

// List は登録日時の新しい順で全エントリを返します。
func (r *watchlistMySQL) List(ctx context.Context) ([]entity.WatchlistEntry, error) {
	var entries []entity.WatchlistEntry
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateName は指定されたsymbolの表示名を更新します。
// updated_atはgormが自動的に更新します。存在しない場合はdomain.ErrSymbolNotFoundを返します。
func (r *watchlistMySQL) UpdateName(ctx context.Context, symbol, name string) error {
	tx := r.db.WithContext(ctx).
		Model(&entity.WatchlistEntry{}).
		Where("symbol = ?", symbol).
		Update("name", name)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrSymbolNotFound
	}
	return nil
}
