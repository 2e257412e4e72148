// Package http provides the outbound HTTP client shared by the AI adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout は timeout が0以下の場合に使用されるリクエスト全体のタイムアウトです。
const DefaultTimeout = 30 * time.Second

// NewHTTPClient はGemini API呼び出し用のHTTPクライアントを作成します。
//
// http.DefaultClientにはタイムアウトがないため使用しません。
// 翻訳とインサイトは同じホストに集中するので、ホスト単位のアイドル接続数を多めに確保します。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          32,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
