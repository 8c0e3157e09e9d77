package memory

import (
	"sync"
	"time"

	"polo-bot/pkg/domain/model"
)

// RateRepository レート保存（インメモリ版）
type RateRepository struct {
	maxSize int
	mu      sync.RWMutex
	queues  map[string][]model.Rate
}

// NewRateRepository 生成
func NewRateRepository(maxSize int) *RateRepository {
	return &RateRepository{
		maxSize: maxSize,
		queues:  map[string][]model.Rate{},
	}
}

// AddRate レート追加。最大容量を超えた分は古い順に捨てる。
func (r *RateRepository) AddRate(rate *model.Rate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rate.Pair.String()
	q := append(r.queues[key], *rate)
	if len(q) > r.maxSize {
		q = q[1:]
	}
	r.queues[key] = q
	return nil
}

// GetRates 指定期間分のレートを取得
func (r *RateRepository) GetRates(pair *model.CurrencyPair, period time.Duration) ([]model.Rate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	border := time.Now().Add(-period)
	rates := []model.Rate{}
	for _, rate := range r.queues[pair.String()] {
		if rate.Datetime.Before(border) {
			continue
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// GetHistorySizeMax 最大容量取得
func (r *RateRepository) GetHistorySizeMax() int {
	return r.maxSize
}
