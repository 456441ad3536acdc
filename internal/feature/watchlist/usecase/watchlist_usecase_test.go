package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astock_backend/internal/feature/watchlist/domain"
	"astock_backend/internal/feature/watchlist/domain/entity"
)

// ErrStore はモックと期待値の間で共有されるセンチネルエラーです。
var ErrStore = errors.New("store error")

func fptr(v float64) *float64 { return &v }

func iptr(v int64) *int64 { return &v }

// mockWatchlistRepository はWatchlistRepositoryインターフェースのモック実装です。
type mockWatchlistRepository struct {
	InsertFunc     func(ctx context.Context, e *entity.WatchlistEntry) error
	DeleteFunc     func(ctx context.Context, symbol string) error
	ListFunc       func(ctx context.Context) ([]entity.WatchlistEntry, error)
	UpdateNameFunc func(ctx context.Context, symbol, name string) error
	UpdateCalls    []string // UpdateNameに渡されたsymbolの記録
}

func (m *mockWatchlistRepository) Insert(ctx context.Context, e *entity.WatchlistEntry) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	return nil
}

func (m *mockWatchlistRepository) Delete(ctx context.Context, symbol string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, symbol)
	}
	return nil
}

func (m *mockWatchlistRepository) List(ctx context.Context) ([]entity.WatchlistEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockWatchlistRepository) UpdateName(ctx context.Context, symbol, name string) error {
	m.UpdateCalls = append(m.UpdateCalls, symbol)
	if m.UpdateNameFunc != nil {
		return m.UpdateNameFunc(ctx, symbol, name)
	}
	return nil
}

// mockResolver はSymbolNameResolverインターフェースのモック実装です。
type mockResolver struct {
	ResolveFunc func(ctx context.Context, symbol string) string
	Calls       int
}

func (m *mockResolver) Resolve(ctx context.Context, symbol string) string {
	m.Calls++
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, symbol)
	}
	return symbol
}

// noopLimiter はテスト用の何もしないレートリミッタです。
type noopLimiter struct{ Calls int }

func (l *noopLimiter) WaitIfNeeded() { l.Calls++ }

// TestWatchlistUsecase_Add_ResolvesNameWhenNoHint はヒントなしの追加で名前解決が行われることを検証します。
func TestWatchlistUsecase_Add_ResolvesNameWhenNoHint(t *testing.T) {
	t.Parallel()

	var inserted *entity.WatchlistEntry
	repo := &mockWatchlistRepository{
		InsertFunc: func(ctx context.Context, e *entity.WatchlistEntry) error {
			inserted = e
			return nil
		},
	}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, symbol string) string { return "平安银行" },
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, resolver, &noopLimiter{})

	entry, err := uc.Add(context.Background(), "000001", "")

	require.NoError(t, err)
	assert.Equal(t, "000001", entry.Symbol)
	// 表示名はコードではなく解決された名前
	assert.Equal(t, "平安银行", entry.Name)
	assert.Equal(t, 1, resolver.Calls)
	require.NotNil(t, inserted)
	assert.Equal(t, "平安银行", inserted.Name)
}

// TestWatchlistUsecase_Add_UsesHint はヒントありの追加で名前解決が行われないことを検証します。
func TestWatchlistUsecase_Add_UsesHint(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{}
	resolver := &mockResolver{}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, resolver, &noopLimiter{})

	entry, err := uc.Add(context.Background(), "000001", "我的平安")

	require.NoError(t, err)
	assert.Equal(t, "我的平安", entry.Name)
	assert.Equal(t, 0, resolver.Calls)
}

// TestWatchlistUsecase_Add_Duplicate は重複エラーがそのまま返ることを検証します。
func TestWatchlistUsecase_Add_Duplicate(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		InsertFunc: func(ctx context.Context, e *entity.WatchlistEntry) error {
			return domain.ErrSymbolAlreadyExists
		},
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, &mockResolver{}, &noopLimiter{})

	_, err := uc.Add(context.Background(), "000001", "平安银行")
	assert.ErrorIs(t, err, domain.ErrSymbolAlreadyExists)
}

// TestWatchlistUsecase_StocksInfo はスナップショット1回取得と銘柄ごとの射影を検証します。
func TestWatchlistUsecase_StocksInfo(t *testing.T) {
	t.Parallel()

	entries := []entity.WatchlistEntry{
		{Symbol: "000001", Name: "平安银行"},
		{Symbol: "600519", Name: "贵州茅台"},
		{Symbol: "999999", Name: "999999"}, // スナップショットに存在しない
	}
	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) { return entries, nil },
	}
	snapshot := &mockSnapshotRepository{
		SnapshotFunc: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return []entity.SnapshotRow{
				{Code: "000001", Name: "平安银行", Price: fptr(9.30), ChangePercent: fptr(0.22), Volume: iptr(500000)},
				{Code: "600519", Name: "贵州茅台", Price: fptr(1580.00), ChangePercent: fptr(-1.05), Volume: iptr(30000)},
			}, nil
		},
	}
	uc := NewWatchlistUsecase(repo, snapshot, &mockResolver{}, &noopLimiter{})

	quotes, err := uc.StocksInfo(context.Background())

	require.NoError(t, err)
	require.Len(t, quotes, 3)
	// スナップショットの取得は1回のみ
	assert.Equal(t, 1, snapshot.Calls)

	require.NotNil(t, quotes[0].Live)
	require.NotNil(t, quotes[0].Live.Price)
	assert.InDelta(t, 9.30, *quotes[0].Live.Price, 0.0001)
	require.NotNil(t, quotes[1].Live)
	require.NotNil(t, quotes[1].Live.Price)
	assert.InDelta(t, 1580.00, *quotes[1].Live.Price, 0.0001)
	// 見つからない銘柄はLive=nilで返し、呼び出し全体は失敗しない
	assert.Nil(t, quotes[2].Live)
}

// TestWatchlistUsecase_StocksInfo_SnapshotFailure はスナップショット全体の失敗でも
// エントリが返ることを検証します。
func TestWatchlistUsecase_StocksInfo_SnapshotFailure(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) {
			return []entity.WatchlistEntry{{Symbol: "000001", Name: "平安银行"}}, nil
		},
	}
	snapshot := &mockSnapshotRepository{
		SnapshotFunc: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewWatchlistUsecase(repo, snapshot, &mockResolver{}, &noopLimiter{})

	quotes, err := uc.StocksInfo(context.Background())

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Nil(t, quotes[0].Live)
}

// TestWatchlistUsecase_StocksInfo_StoreFailure はストアの失敗がそのまま返ることを検証します。
func TestWatchlistUsecase_StocksInfo_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) { return nil, ErrStore },
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, &mockResolver{}, &noopLimiter{})

	_, err := uc.StocksInfo(context.Background())
	assert.ErrorIs(t, err, ErrStore)
}

// TestWatchlistUsecase_UpdateAllNames は一括名前解決のカウント規則を検証します。
func TestWatchlistUsecase_UpdateAllNames(t *testing.T) {
	t.Parallel()

	entries := []entity.WatchlistEntry{
		{Symbol: "000001", Name: "000001"},   // 解決で変わる → カウント
		{Symbol: "600519", Name: "贵州茅台"}, // 同名に解決 → 書き込みなし
		{Symbol: "999999", Name: "旧名称"},   // コード自身に解決（未解決） → スキップ
	}
	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) { return entries, nil },
	}
	names := map[string]string{
		"000001": "平安银行",
		"600519": "贵州茅台",
		"999999": "999999",
	}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, symbol string) string { return names[symbol] },
	}
	limiter := &noopLimiter{}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, resolver, limiter)

	updated, err := uc.UpdateAllNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	// 実際に変わった1件だけが書き込まれる
	assert.Equal(t, []string{"000001"}, repo.UpdateCalls)
	// エントリごとにレートリミッタを通過する
	assert.Equal(t, len(entries), limiter.Calls)
}

// TestWatchlistUsecase_UpdateAllNames_PartialFailure は1件の書き込み失敗が
// 残りの処理を止めないことを検証します。
func TestWatchlistUsecase_UpdateAllNames_PartialFailure(t *testing.T) {
	t.Parallel()

	entries := []entity.WatchlistEntry{
		{Symbol: "000001", Name: "000001"},
		{Symbol: "000002", Name: "000002"},
	}
	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) { return entries, nil },
		UpdateNameFunc: func(ctx context.Context, symbol, name string) error {
			if symbol == "000001" {
				return ErrStore
			}
			return nil
		},
	}
	resolver := &mockResolver{
		ResolveFunc: func(ctx context.Context, symbol string) string {
			return map[string]string{"000001": "平安银行", "000002": "万科A"}[symbol]
		},
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, resolver, &noopLimiter{})

	updated, err := uc.UpdateAllNames(context.Background())

	require.NoError(t, err)
	// 失敗した1件は数えず、残りは処理される
	assert.Equal(t, 1, updated)
	assert.Equal(t, []string{"000001", "000002"}, repo.UpdateCalls)
}

// TestWatchlistUsecase_List はリストがそのまま返ることを検証します。
func TestWatchlistUsecase_List(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entries := []entity.WatchlistEntry{
		{Symbol: "600519", Name: "贵州茅台", CreatedAt: now},
		{Symbol: "000001", Name: "平安银行", CreatedAt: now.Add(-time.Hour)},
	}
	repo := &mockWatchlistRepository{
		ListFunc: func(ctx context.Context) ([]entity.WatchlistEntry, error) { return entries, nil },
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, &mockResolver{}, &noopLimiter{})

	got, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// TestWatchlistUsecase_Remove_NotFound は未登録銘柄の削除がNotFoundになることを検証します。
func TestWatchlistUsecase_Remove_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockWatchlistRepository{
		DeleteFunc: func(ctx context.Context, symbol string) error { return domain.ErrSymbolNotFound },
	}
	uc := NewWatchlistUsecase(repo, &mockSnapshotRepository{}, &mockResolver{}, &noopLimiter{})

	err := uc.Remove(context.Background(), "000001")
	assert.ErrorIs(t, err, domain.ErrSymbolNotFound)
}
