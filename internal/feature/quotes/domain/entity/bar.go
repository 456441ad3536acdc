// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// DailyBar は1営業日分の日足データです。
// A株データプロバイダの日足列構成（前復権済み）に対応します。
type DailyBar struct {
	Date          string  // 営業日（YYYY-MM-DD）
	Open          float64 // 始値
	Close         float64 // 終値
	High          float64 // 高値
	Low           float64 // 安値
	Volume        int64   // 成交量（手）
	Amount        float64 // 成交額（元）
	Amplitude     float64 // 振幅（%）
	ChangePercent float64 // 涨跌幅（%）
	ChangeAmount  float64 // 涨跌額（元）
	Turnover      float64 // 換手率（%）
}

// MinuteBar は場中の1分足データです。
type MinuteBar struct {
	Time          string  // タイムスタンプ（YYYY-MM-DD HH:MM）
	Price         float64 // 約定価格
	ChangePercent float64 // 前日終値比の涨跌幅（%）
	ChangeAmount  float64 // 前日終値比の涨跌額（元）
	Volume        int64   // 成交量（手）
	Amount        float64 // 成交額（元）
}

// DailyRange は期間指定の日足クエリの結果です。
// Bars はプロバイダが返した順序のまま保持します。
type DailyRange struct {
	Start time.Time
	End   time.Time
	Bars  []DailyBar
}
