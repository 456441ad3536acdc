// Package usecase は株価クエリのビジネスロジックを実装します。
package usecase

import "errors"

// ErrNoData はプロバイダが該当データを返さなかった場合に返されます。
// 業務上想定される結果であり、トランスポート層では404エンベロープに対応します。
var ErrNoData = errors.New("no data for symbol")
