package cache

import (
	"os"
	"strconv"
	"time"
)

// defaultSnapshotTTL はスナップショットキャッシュのデフォルトTTLです。
const defaultSnapshotTTL = 5 * time.Minute

// SnapshotTTL は環境変数CACHE_TTL（秒）からスナップショットキャッシュのTTLを返します。
// 未設定または不正な値の場合はデフォルト（5分）を使用します。
func SnapshotTTL() time.Duration {
	s := os.Getenv("CACHE_TTL")
	if s == "" {
		return defaultSnapshotTTL
	}
	sec, err := strconv.Atoi(s)
	if err != nil || sec <= 0 {
		return defaultSnapshotTTL
	}
	return time.Duration(sec) * time.Second
}
