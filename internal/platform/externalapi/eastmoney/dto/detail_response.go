package dto

import "encoding/json"

// DetailResponse は個別銘柄情報（stock/get）エンドポイントのレスポンスです。
// Data のキーはフィールドID（f57, f58, ...）で、値の型はフィールドごとに
// 数値・文字列が混在するため生のまま保持します。
type DetailResponse struct {
	RC   int                        `json:"rc"`
	Data map[string]json.RawMessage `json:"data"`
}
