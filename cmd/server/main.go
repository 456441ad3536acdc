package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"astock_backend/internal/app/di"
	"astock_backend/internal/app/router"
	quoteshandler "astock_backend/internal/feature/quotes/transport/handler"
	quotesusecase "astock_backend/internal/feature/quotes/usecase"
	watchlistadapters "astock_backend/internal/feature/watchlist/adapters"
	watchlisthandler "astock_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "astock_backend/internal/feature/watchlist/usecase"
	"astock_backend/internal/platform/cache"
	infradb "astock_backend/internal/platform/db"
	infraredis "astock_backend/internal/platform/redis"
	"astock_backend/internal/shared/ratelimiter"
)

func main() {
	// .env（存在する場合のみ）
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis（任意。使えない場合はキャッシュなしで続行）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// データプロバイダ
	market := di.NewMarket()

	// スナップショットをRedisキャッシュでラップ
	snapshotRepo := cache.NewCachingSnapshotRepository(rdb, cache.SnapshotTTL(), market, "market:snapshot")

	// 名前解決（静的テーブルは起動時に一度だけ構築し、以後読み取り専用）
	resolver := watchlistusecase.NewNameResolver(watchlistusecase.DefaultStaticNames(), market, snapshotRepo)

	// Repository
	watchlistRepo := watchlistadapters.NewWatchlistRepository(db)

	// 一括名前解決でのプロバイダ呼び出し頻度を制限
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)

	// Usecase
	quotesUC := quotesusecase.NewQuotesUsecase(market)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo, snapshotRepo, resolver, limiter)

	// Handler
	quotesH := quoteshandler.NewQuoteHandler(quotesUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	// ルータ生成
	router := router.NewRouter(quotesH, watchlistH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
