package poloniex

import (
	"sync"
	"time"
)

// Poloniexの公称上限は6リクエスト/秒
const defaultPacerInterval = time.Second / 6

// Pacer 送信間隔の調整役。Waitは前回の解放からinterval経過するまで
// 呼び出し元をブロックする。ロックを保持したまま眠ることで
// 並行呼び出しを直列化し、同じ解放時刻を二者が観測しないようにする。
type Pacer struct {
	mu       sync.Mutex
	last     time.Time
	interval time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer 生成。intervalが0以下ならデフォルト間隔を使う。
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = defaultPacerInterval
	}
	return &Pacer{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait 安全に送信できるまでブロックし、解放時刻を記録する
func (p *Pacer) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if elapsed := p.now().Sub(p.last); elapsed < p.interval {
			p.sleep(p.interval - elapsed)
		}
	}
	p.last = p.now()
}
