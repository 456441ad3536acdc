// Package eastmoney provides a client for the Eastmoney push2 market data API.
package eastmoney

import (
	"os"
	"strconv"
	"time"
)

// デフォルトのエンドポイント。日足の履歴データのみ別ホストで提供されます。
const (
	defaultBaseURL     = "https://push2.eastmoney.com"
	defaultHistBaseURL = "https://push2his.eastmoney.com"
	defaultTimeout     = 30 * time.Second
)

// Config holds configuration for the Eastmoney API client.
type Config struct {
	BaseURL     string        // リアルタイム系エンドポイントのベースURL
	HistBaseURL string        // 履歴系（日足）エンドポイントのベースURL
	Timeout     time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig loads Eastmoney configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:     os.Getenv("EASTMONEY_BASE_URL"),
		HistBaseURL: os.Getenv("EASTMONEY_HIST_BASE_URL"),
		Timeout:     defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HistBaseURL == "" {
		cfg.HistBaseURL = defaultHistBaseURL
	}
	if s := os.Getenv("PROVIDER_TIMEOUT"); s != "" {
		if sec, err := strconv.Atoi(s); err == nil && sec > 0 {
			cfg.Timeout = time.Duration(sec) * time.Second
		}
	}
	return cfg
}
