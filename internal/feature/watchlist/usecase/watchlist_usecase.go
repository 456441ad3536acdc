package usecase

import (
	"context"
	"log/slog"

	"astock_backend/internal/feature/watchlist/domain/entity"
	"astock_backend/internal/shared/ratelimiter"
)

// WatchlistRepository はウォッチリストの永続化層を抽象化します。
// Insert は重複時に domain.ErrSymbolAlreadyExists を、
// Delete / UpdateName は対象が存在しない場合に domain.ErrSymbolNotFound を返します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type WatchlistRepository interface {
	Insert(ctx context.Context, e *entity.WatchlistEntry) error
	Delete(ctx context.Context, symbol string) error
	List(ctx context.Context) ([]entity.WatchlistEntry, error)
	UpdateName(ctx context.Context, symbol, name string) error
}

// SymbolNameResolver は銘柄コードから表示名を解決します。
// 解決は決して失敗せず、最悪の場合コード自身を返します。
type SymbolNameResolver interface {
	Resolve(ctx context.Context, symbol string) string
}

// WatchlistUsecase はウォッチリスト操作のユースケースを提供します。
type WatchlistUsecase struct {
	repo     WatchlistRepository
	snapshot SnapshotRepository
	resolver SymbolNameResolver
	limiter  ratelimiter.RateLimiterInterface
}

// NewWatchlistUsecase はWatchlistUsecaseの新しいインスタンスを生成します。
func NewWatchlistUsecase(repo WatchlistRepository, snapshot SnapshotRepository,
	resolver SymbolNameResolver, limiter ratelimiter.RateLimiterInterface) *WatchlistUsecase {
	return &WatchlistUsecase{repo: repo, snapshot: snapshot, resolver: resolver, limiter: limiter}
}

// Add は銘柄をウォッチリストに追加します。
// nameHint が空の場合は追加前に名前解決を行います。
// 既に登録済みの場合は domain.ErrSymbolAlreadyExists を返します（upsertしない）。
func (u *WatchlistUsecase) Add(ctx context.Context, symbol, nameHint string) (entity.WatchlistEntry, error) {
	name := nameHint
	if name == "" {
		name = u.resolver.Resolve(ctx, symbol)
	}

	e := entity.WatchlistEntry{Symbol: symbol, Name: name}
	if err := u.repo.Insert(ctx, &e); err != nil {
		return entity.WatchlistEntry{}, err
	}
	return e, nil
}

// Remove は銘柄をウォッチリストから削除します。
// 登録されていない場合は domain.ErrSymbolNotFound を返します。
func (u *WatchlistUsecase) Remove(ctx context.Context, symbol string) error {
	return u.repo.Delete(ctx, symbol)
}

// List は登録順（新しい順）で全エントリを返します。
// 空のウォッチリストは空スライスとして返します（エラーではありません）。
func (u *WatchlistUsecase) List(ctx context.Context) ([]entity.WatchlistEntry, error) {
	return u.repo.List(ctx)
}

// StocksInfo は全エントリにリアルタイム情報を付加して返します。
// スナップショットの取得は1回のみ行い、銘柄ごとにコードで射影します。
// スナップショットに存在しない銘柄（またはスナップショット自体の失敗）は
// Live=nil として返し、呼び出し全体は失敗しません。
func (u *WatchlistUsecase) StocksInfo(ctx context.Context) ([]entity.LiveQuote, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := u.snapshot.Snapshot(ctx)
	if err != nil {
		// スナップショットが取れなくても登録済みエントリは返す
		slog.Error("market snapshot failed, live fields unavailable", "error", err)
		rows = nil
	}
	byCode := make(map[string]entity.SnapshotRow, len(rows))
	for _, row := range rows {
		byCode[row.Code] = row
	}

	out := make([]entity.LiveQuote, 0, len(entries))
	for _, e := range entries {
		lq := entity.LiveQuote{Entry: e}
		if row, ok := byCode[e.Symbol]; ok {
			lq.Live = &row
		}
		out = append(out, lq)
	}
	return out, nil
}

// UpdateAllNames は全エントリの名前を再解決し、変化があったものだけを書き戻します。
// 同名への再解決は書き込みもカウントも行いません。コード自身への解決（未解決）は
// スキップします。1件の失敗は記録して次のエントリへ進みます。
// 戻り値は実際に名前が変わった件数です。
func (u *WatchlistUsecase) UpdateAllNames(ctx context.Context) (int, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, e := range entries {
		u.limiter.WaitIfNeeded()

		name := u.resolver.Resolve(ctx, e.Symbol)
		if name == e.Symbol || name == e.Name {
			continue
		}
		if err := u.repo.UpdateName(ctx, e.Symbol, name); err != nil {
			// 1件の失敗で残りを止めない
			slog.Error("failed to update watchlist name", "symbol", e.Symbol, "error", err)
			continue
		}
		updated++
	}
	return updated, nil
}
