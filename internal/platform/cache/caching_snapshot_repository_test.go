package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"astock_backend/internal/feature/watchlist/domain/entity"
)

// mockSnapshotRepository はテスト用のSnapshotRepositoryモック実装です。
type mockSnapshotRepository struct {
	snapshotFn func(ctx context.Context) ([]entity.SnapshotRow, error)
}

// Snapshot はモックのSnapshot関数を呼び出します。
func (m *mockSnapshotRepository) Snapshot(ctx context.Context) ([]entity.SnapshotRow, error) {
	if m.snapshotFn != nil {
		return m.snapshotFn(ctx)
	}
	return nil, nil
}

func fptr(v float64) *float64 { return &v }

// TestNewCachingSnapshotRepository_Defaults はデフォルト値（TTLとキー）が正しく設定されることを検証します。
func TestNewCachingSnapshotRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ttl         time.Duration
		key         string
		expectedTTL time.Duration
		expectedKey string
	}{
		{
			name:        "default values when zero/empty",
			ttl:         0,
			key:         "",
			expectedTTL: 5 * time.Minute,
			expectedKey: "market:snapshot",
		},
		{
			name:        "negative ttl uses default",
			ttl:         -1 * time.Minute,
			key:         "",
			expectedTTL: 5 * time.Minute,
			expectedKey: "market:snapshot",
		},
		{
			name:        "custom values preserved",
			ttl:         10 * time.Minute,
			key:         "custom:key",
			expectedTTL: 10 * time.Minute,
			expectedKey: "custom:key",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingSnapshotRepository(nil, tt.ttl, &mockSnapshotRepository{}, tt.key)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.key != tt.expectedKey {
				t.Errorf("expected key %q, got %q", tt.expectedKey, repo.key)
			}
		})
	}
}

// TestCachingSnapshotRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスして内部リポジトリを直接呼び出すことを検証します。
func TestCachingSnapshotRepository_NilRedis(t *testing.T) {
	t.Parallel()

	expectedRows := []entity.SnapshotRow{
		{Code: "000001", Name: "平安银行", Price: fptr(9.30)},
	}

	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return expectedRows, nil
		},
	}

	// Redis is nil - should bypass cache and call inner directly
	repo := NewCachingSnapshotRepository(nil, 5*time.Minute, inner, "market:snapshot")

	rows, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(expectedRows) {
		t.Errorf("expected %d rows, got %d", len(expectedRows), len(rows))
	}
}

// TestCachingSnapshotRepository_CacheHit はキャッシュヒット時にRedisからデータを返し、プロバイダを呼ばないことを検証します。
func TestCachingSnapshotRepository_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedRows := []entity.SnapshotRow{
		{Code: "000001", Name: "平安银行", Price: fptr(9.30), ChangePercent: fptr(0.22)},
	}
	cachedJSON, _ := json.Marshal(cachedRows)

	mock.ExpectGet("market:snapshot").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingSnapshotRepository(rdb, 5*time.Minute, inner, "market:snapshot")
	rows, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Code != "000001" {
		t.Errorf("expected code 000001, got %s", rows[0].Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSnapshotRepository_CacheMiss はキャッシュミス時にプロバイダから取得し、キャッシュに保存することを検証します。
func TestCachingSnapshotRepository_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedRows := []entity.SnapshotRow{
		{Code: "600519", Name: "贵州茅台", Price: fptr(1585.00)},
	}
	expectedJSON, _ := json.Marshal(expectedRows)

	// Cache miss
	mock.ExpectGet("market:snapshot").RedisNil()
	// Set cache after fetching from provider
	mock.ExpectSet("market:snapshot", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return expectedRows, nil
		},
	}

	repo := NewCachingSnapshotRepository(rdb, 5*time.Minute, inner, "market:snapshot")
	rows, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSnapshotRepository_InnerError はプロバイダがエラーを返した場合にそのエラーが伝播されることを検証します。
func TestCachingSnapshotRepository_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("provider error")

	mock.ExpectGet("market:snapshot").RedisNil()

	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingSnapshotRepository(rdb, 5*time.Minute, inner, "market:snapshot")
	_, err := repo.Snapshot(context.Background())

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingSnapshotRepository_CorruptedCache は破損したキャッシュを検出・削除し、プロバイダにフォールバックすることを検証します。
func TestCachingSnapshotRepository_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedRows := []entity.SnapshotRow{
		{Code: "000001", Name: "平安银行", Price: fptr(9.30)},
	}
	expectedJSON, _ := json.Marshal(expectedRows)

	// Return invalid JSON from cache
	mock.ExpectGet("market:snapshot").SetVal("invalid json")
	// Delete corrupted cache
	mock.ExpectDel("market:snapshot").SetVal(1)
	// Set new cache after fetching from provider
	mock.ExpectSet("market:snapshot", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return expectedRows, nil
		},
	}

	repo := NewCachingSnapshotRepository(rdb, 5*time.Minute, inner, "market:snapshot")
	rows, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSnapshotRepository_SetFailureIgnored はキャッシュ保存の失敗が結果に影響しないことを検証します。
func TestCachingSnapshotRepository_SetFailureIgnored(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedRows := []entity.SnapshotRow{
		{Code: "000001", Name: "平安银行", Price: fptr(9.30)},
	}
	expectedJSON, _ := json.Marshal(expectedRows)

	mock.ExpectGet("market:snapshot").RedisNil()
	mock.ExpectSet("market:snapshot", expectedJSON, 5*time.Minute).SetErr(errors.New("redis down"))

	inner := &mockSnapshotRepository{
		snapshotFn: func(ctx context.Context) ([]entity.SnapshotRow, error) {
			return expectedRows, nil
		},
	}

	repo := NewCachingSnapshotRepository(rdb, 5*time.Minute, inner, "market:snapshot")
	rows, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}
