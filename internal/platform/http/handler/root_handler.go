package handler

import (
	"github.com/gin-gonic/gin"

	"astock_backend/internal/api"
)

// Root はAPIルートパスを処理し、サービス情報を返します。
func Root(c *gin.Context) {
	c.JSON(200, api.StockResponse{
		Code:    "200",
		Message: "A股股票信息查询API服务运行正常",
		Data: gin.H{
			"version": "1.0.0",
			"endpoints": []string{
				"/stock/daily/{stock_code}",
				"/stock/monthly/{stock_code}",
				"/stock/realtime/{stock_code}",
				"/watchlist/list",
			},
		},
	})
}
