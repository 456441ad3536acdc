// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"astock_backend/internal/api"
)

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// アップストリームへの呼び出しは行わず、HTTPメソッドに応じて適切にレスポンスし、
// キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, api.StockResponse{
			Code:    "200",
			Message: "服务健康",
			Data: gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Format(time.RFC3339),
			},
		})
	}
}
