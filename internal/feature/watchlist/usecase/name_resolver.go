package usecase

import (
	"context"
	"log/slog"

	"astock_backend/internal/feature/watchlist/domain/entity"
)

// DetailRepository は個別銘柄情報の取得を抽象化します。
// 実装は空の結果を空スライスで、失敗をエラーで表現します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DetailRepository interface {
	Detail(ctx context.Context, symbol string) ([]entity.DetailField, error)
}

// SnapshotRepository は全市場スナップショットの取得を抽象化します。
type SnapshotRepository interface {
	Snapshot(ctx context.Context) ([]entity.SnapshotRow, error)
}

// NameResolver は銘柄コードから表示名を解決します。
// 静的テーブル → 個別銘柄情報 → 全市場スナップショット → コード自身、の順で
// フォールバックし、決して失敗しません（各段の失敗は次の段への前進として扱います）。
type NameResolver struct {
	static   map[string]string
	detail   DetailRepository
	snapshot SnapshotRepository
	scan     DetailNameScanner
}

// NewNameResolver はNameResolverの新しいインスタンスを生成します。
// static は起動時に構築された読み取り専用のテーブルです。
func NewNameResolver(static map[string]string, detail DetailRepository, snapshot SnapshotRepository) *NameResolver {
	return &NameResolver{
		static:   static,
		detail:   detail,
		snapshot: snapshot,
		scan:     ScanDetailName,
	}
}

// Resolve は銘柄コードを表示名に解決します。
// どの段でも解決できない場合はコード自身を返します。
func (r *NameResolver) Resolve(ctx context.Context, symbol string) string {
	// 第1段: 静的テーブル（I/Oなし、最も信頼度が高い）
	if name, ok := r.static[symbol]; ok {
		return name
	}

	// 第2段: 個別銘柄情報
	if fields, err := r.detail.Detail(ctx, symbol); err != nil {
		slog.Warn("detail lookup failed, falling back to snapshot", "symbol", symbol, "error", err)
	} else if name, ok := r.scan(fields, symbol); ok {
		return name
	}

	// 第3段: 全市場スナップショットからコード完全一致で検索
	if rows, err := r.snapshot.Snapshot(ctx); err != nil {
		slog.Warn("snapshot lookup failed, falling back to identity", "symbol", symbol, "error", err)
	} else {
		for _, row := range rows {
			if row.Code == symbol && row.Name != "" {
				return row.Name
			}
		}
	}

	// 第4段: コード自身を返す
	return symbol
}
