package poloniex

import (
	"sort"
	"sync"
	"testing"
	"time"
)

func TestPacer_Wait_SpacesReleases(t *testing.T) {
	interval := 20 * time.Millisecond
	p := NewPacer(interval)

	releases := []time.Time{}
	for i := 0; i < 4; i++ {
		p.Wait()
		releases = append(releases, time.Now())
	}

	assertSpacing(t, releases, interval)
}

func TestPacer_Wait_Concurrent(t *testing.T) {
	interval := 15 * time.Millisecond
	p := NewPacer(interval)

	var mu sync.Mutex
	releases := []time.Time{}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Wait()
			mu.Lock()
			releases = append(releases, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Slice(releases, func(i, j int) bool { return releases[i].Before(releases[j]) })
	assertSpacing(t, releases, interval)
}

// assertSpacing 解放間隔がinterval未満になっていないか確認する。
// 計測はWait復帰後なので、わずかな測定ぶれだけ許容する。
func assertSpacing(t *testing.T, releases []time.Time, interval time.Duration) {
	t.Helper()
	epsilon := 5 * time.Millisecond
	for i := 1; i < len(releases); i++ {
		gap := releases[i].Sub(releases[i-1])
		if gap < interval-epsilon {
			t.Errorf("releases %d and %d are too close\nwant: >= %v\ngot: %v", i-1, i, interval, gap)
		}
	}
}

func TestNewPacer_DefaultInterval(t *testing.T) {
	p := NewPacer(0)
	if p.interval != defaultPacerInterval {
		t.Errorf("interval is wrong\nwant: %v\ngot: %v", defaultPacerInterval, p.interval)
	}
}
