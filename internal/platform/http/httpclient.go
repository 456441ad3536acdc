package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部データプロバイダ呼び出し用に設定されたHTTPクライアントを作成します。
// プロバイダが応答しない場合にリクエストが無期限に滞留しないよう、
// リクエスト全体のタイムアウト（呼び出し元から渡される）を必ず設定します。
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
//   - Transportは接続の安定性とリソース管理のために明示的に設定
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
