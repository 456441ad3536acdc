// Package usecase はウォッチリスト操作のビジネスロジックを実装します。
package usecase

import (
	"strings"

	"astock_backend/internal/feature/watchlist/domain/entity"
)

// nameTokens は項目ラベルが銘柄名を指していると判断する部分文字列です。
// プロバイダの項目名は自由形式のため、中国語・英語の両方を受け付けます。
var nameTokens = []string{"名称", "简称", "name"}

// missingSentinels は値が欠損であることを示すセンチネル文字列です。
var missingSentinels = map[string]struct{}{
	"":     {},
	"-":    {},
	"none": {},
	"null": {},
	"nan":  {},
}

// DetailNameScanner は個別銘柄情報の行から銘柄名を抽出する戦略です。
// プロバイダのスキーマ変更に追従できるよう、差し替え可能な関数型として分離しています。
type DetailNameScanner func(fields []entity.DetailField, symbol string) (string, bool)

// ScanDetailName は既定の抽出戦略です。
// まずラベルに名前系のトークンを含む最初の項目を探し、見つからなければ
// 銘柄コード自身でも欠損センチネルでもない最初の値にフォールバックします。
func ScanDetailName(fields []entity.DetailField, symbol string) (string, bool) {
	for _, f := range fields {
		if !containsNameToken(f.Item) {
			continue
		}
		if v, ok := usableValue(f.Value, symbol); ok {
			return v, true
		}
	}

	// ラベルから特定できない場合は値ベースのフォールバック
	for _, f := range fields {
		if v, ok := usableValue(f.Value, symbol); ok {
			return v, true
		}
	}
	return "", false
}

// containsNameToken はラベルが銘柄名を指す項目かどうかを判定します。
func containsNameToken(label string) bool {
	lower := strings.ToLower(label)
	for _, token := range nameTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// usableValue は値が銘柄名として採用可能かどうかを判定します。
// 銘柄コード自身と欠損センチネルは採用しません。
func usableValue(value, symbol string) (string, bool) {
	v := strings.TrimSpace(value)
	if v == symbol {
		return "", false
	}
	if _, ok := missingSentinels[strings.ToLower(v)]; ok {
		return "", false
	}
	return v, true
}
