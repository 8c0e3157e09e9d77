package poloniex

import (
	"sync"
	"time"
)

// 手動でのnonce利用が混ざっても追い越せるよう、1ずつではなく42ずつ進める
const nonceStep = 42

// NonceSource 認証リクエスト用の単調増加ノンス。
// シードは生成時刻（マイクロ秒）なので、プロセス再起動後も
// 過去に払い出した値より小さくならない。
type NonceSource struct {
	mu   sync.Mutex
	last int64
}

// NewNonceSource 生成
func NewNonceSource() *NonceSource {
	return &NonceSource{
		last: time.Now().UnixNano() / int64(time.Microsecond),
	}
}

// Next 直前より必ず大きいnonceを返す
func (n *NonceSource) Next() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last += nonceStep
	return n.last
}
