// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// WatchlistEntry は株票池（ウォッチリスト）に登録された1銘柄分のエントリです。
// Symbol が一意キーであり、登録後は変更できません（変更するには削除して再登録）。
// Name は名前解決の結果で更新されることがあります。
type WatchlistEntry struct {
	Symbol    string    `gorm:"primaryKey;size:16"`
	Name      string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName はWatchlistEntryの永続化先テーブル名を返します。
func (WatchlistEntry) TableName() string {
	return "watchlist"
}

// LiveQuote はウォッチリストのエントリと、スナップショットから射影した
// リアルタイム情報の組です。Live が nil の場合はその銘柄の情報が取得できなかった
// ことを示します（呼び出し全体は失敗しない）。
type LiveQuote struct {
	Entry WatchlistEntry
	Live  *SnapshotRow
}
