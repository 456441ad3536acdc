// Package dto はwatchlistフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// AddRequest は銘柄追加リクエストのボディです。
// stock_name が省略された場合は名前解決が行われます。
type AddRequest struct {
	StockCode string `json:"stock_code" binding:"required"`
	StockName string `json:"stock_name"`
}

// EntryItem はウォッチリスト一覧の1銘柄分のレスポンスです。
type EntryItem struct {
	StockCode string `json:"stock_code"`
	StockName string `json:"stock_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// StockInfoItem はリアルタイム情報付きの1銘柄分のレスポンスです。
// 取得できなかったフィールドは文字列センチネル "N/A" になります。
type StockInfoItem struct {
	StockCode     string `json:"stock_code"`
	StockName     string `json:"stock_name"`
	CurrentPrice  any    `json:"current_price"`
	ChangePercent any    `json:"change_percent"`
	ChangeAmount  any    `json:"change_amount"`
	Volume        any    `json:"volume"`
	UpdateTime    string `json:"update_time"`
}
