package usecase

import (
	"time"

	"polo-bot/pkg/domain/exchange"
	"polo-bot/pkg/domain/model"

	gocache "github.com/pmylund/go-cache"
)

// RateCache 市況情報のTTLキャッシュ。短時間に同じペアを何度も
// 参照する呼び出し元が送信枠を浪費しないようにする。
type RateCache struct {
	exCli exchange.Client
	cache *gocache.Cache
}

// NewRateCache 生成
func NewRateCache(exCli exchange.Client, ttl time.Duration) *RateCache {
	return &RateCache{
		exCli: exCli,
		cache: gocache.New(ttl, 10*ttl),
	}
}

// GetTicker キャッシュ済みの市況情報を返す。期限切れなら取得し直す。
func (r *RateCache) GetTicker(pair *model.CurrencyPair) (*model.Ticker, error) {
	key := pair.String()
	if cached, found := r.cache.Get(key); found {
		t := cached.(model.Ticker)
		return &t, nil
	}

	t, err := r.exCli.GetTicker(pair)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, *t, gocache.DefaultExpiration)
	return t, nil
}
