// Package api は全HTTPハンドラーで共有されるレスポンス型を定義します。
package api

// StockResponse は全エンドポイント共通のレスポンスエンベロープです。
// Code はHTTPステータスとは独立したアプリケーションレベルのステータストークンで、
// "200"（成功）、"404"（データなし）、"409"（重複）を成功レスポンス内で返します。
// バリデーションエラーや内部エラーはエンベロープではなくトランスポートレベルの
// エラー（ErrorResponse）として返します。
type StockResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse はトランスポートレベルのエラーボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}
