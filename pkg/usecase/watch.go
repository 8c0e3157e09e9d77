package usecase

import (
	"fmt"
	"time"

	"polo-bot/pkg/domain/exchange"
	"polo-bot/pkg/domain/model"

	"github.com/markcheno/go-talib"
)

// Trend 相場の傾向
type Trend int

const (
	// Flat 判定不能または横ばい
	Flat Trend = iota
	// Up 上昇傾向
	Up
	// Down 下降傾向
	Down
)

func (t Trend) String() string {
	switch t {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// TrendWatcher ロウソク足から相場の傾向を判定する
type TrendWatcher struct {
	exCli     exchange.Client
	shortTerm int
	longTerm  int
}

// NewTrendWatcher 生成
func NewTrendWatcher(exCli exchange.Client, shortTerm, longTerm int) (*TrendWatcher, error) {
	if shortTerm <= 0 || longTerm <= shortTerm {
		return nil, fmt.Errorf("invalid term, short: %d, long: %d", shortTerm, longTerm)
	}
	return &TrendWatcher{
		exCli:     exCli,
		shortTerm: shortTerm,
		longTerm:  longTerm,
	}, nil
}

// Watch 直近のロウソク足でEMAのクロスを判定する
func (w *TrendWatcher) Watch(pair *model.CurrencyPair, period model.CandlePeriod) (Trend, error) {
	end := time.Now()
	start := end.Add(-time.Duration(w.longTerm*4) * time.Duration(period) * time.Second)

	candles, err := w.exCli.GetChartData(pair, period, start, end)
	if err != nil {
		return Flat, err
	}
	if len(candles) < w.longTerm {
		return Flat, nil
	}

	closes := make([]float64, 0, len(candles))
	for _, c := range candles {
		closes = append(closes, c.Close)
	}

	shorts := talib.Ema(closes, w.shortTerm)
	longs := talib.Ema(closes, w.longTerm)

	last := len(closes) - 1
	switch {
	case shorts[last] > longs[last]:
		return Up, nil
	case shorts[last] < longs[last]:
		return Down, nil
	}
	return Flat, nil
}
