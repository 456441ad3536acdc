// Package dto はquotesフィーチャーのHTTPレスポンス型を定義します。
// JSONキーはプロバイダの列名（中国語）をそのまま踏襲します。
package dto

// DailyRow は日足1行分のレスポンスです。
type DailyRow struct {
	Date          string  `json:"日期"`
	Code          string  `json:"股票代码"`
	Open          float64 `json:"开盘"`
	Close         float64 `json:"收盘"`
	High          float64 `json:"最高"`
	Low           float64 `json:"最低"`
	Volume        int64   `json:"成交量"`
	Amount        float64 `json:"成交额"`
	Amplitude     float64 `json:"振幅"`
	ChangePercent float64 `json:"涨跌幅"`
	ChangeAmount  float64 `json:"涨跌额"`
	Turnover      float64 `json:"换手率"`
}

// MinuteRow は分時1行分のレスポンスです。
type MinuteRow struct {
	Time          string  `json:"时间"`
	Code          string  `json:"股票代码"`
	Price         float64 `json:"价格"`
	ChangePercent float64 `json:"涨跌幅"`
	ChangeAmount  float64 `json:"涨跌额"`
	Volume        int64   `json:"成交量"`
	Amount        float64 `json:"成交额"`
}
