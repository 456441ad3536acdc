package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	quotehandler "astock_backend/internal/feature/quotes/transport/handler"
	watchlisthandler "astock_backend/internal/feature/watchlist/transport/handler"
	"astock_backend/internal/platform/http/handler"
)

func NewRouter(quotes *quotehandler.QuoteHandler, watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドからの直接アクセスを許可
	r.Use(cors.Default())

	// サービス情報
	r.GET("/", handler.Root)
	// 導通確認用
	r.GET("/health", handler.Health)

	// 株価クエリ
	stock := r.Group("/stock")
	{
		stock.GET("/daily/:code", quotes.GetDaily)
		stock.GET("/monthly/:code", quotes.GetMonthly)
		stock.GET("/realtime/:code", quotes.GetRealtime)
	}

	// 株票池（ウォッチリスト）
	w := r.Group("/watchlist")
	{
		w.POST("/add", watchlist.Add)
		w.GET("/list", watchlist.List)
		w.DELETE("/remove/:code", watchlist.Remove)
		w.GET("/stocks/info", watchlist.StocksInfo)
		w.POST("/update_names", watchlist.UpdateNames)
	}

	return r
}
