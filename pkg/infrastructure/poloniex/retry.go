package poloniex

import (
	"time"

	"polo-bot/pkg/domain"
)

// defaultRetryDelays 失敗のたびに左から消費される待ち時間
var defaultRetryDelays = []time.Duration{0, 2 * time.Second, 5 * time.Second, 30 * time.Second}

// retryPolicy 一時的な失敗のリトライ役
type retryPolicy struct {
	delays []time.Duration
	logger domain.Logger
	sleep  func(time.Duration)
}

func newRetryPolicy(delays []time.Duration, logger domain.Logger) *retryPolicy {
	if delays == nil {
		delays = defaultRetryDelays
	}
	return &retryPolicy{
		delays: delays,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Do opを実行し、retryableな失敗なら待ち時間を消費しながら再実行する。
// 待ち時間を使い切ったら最後のエラーを返す。
func (r *retryPolicy) Do(op func() error, retryable func(error) bool) error {
	err := op()
	for _, delay := range r.delays {
		if err == nil || !retryable(err) {
			return err
		}
		if r.logger != nil {
			r.logger.Debug("request failed, retrying in %v; error: %v", delay, err)
		}
		r.sleep(delay)
		err = op()
	}
	return err
}
