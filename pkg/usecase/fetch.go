package usecase

import (
	"fmt"
	"strconv"
	"time"

	"polo-bot/pkg/domain/exchange"
	"polo-bot/pkg/domain/model"
	"polo-bot/pkg/domain/repository"
)

// Fetcher 情報取得
type Fetcher struct {
	pair  model.CurrencyPair
	exCli exchange.Client
	rCli  repository.RateRepository
}

// NewFetcher 生成
func NewFetcher(exCli exchange.Client, pair model.CurrencyPair, rCli repository.RateRepository) *Fetcher {
	return &Fetcher{
		exCli: exCli,
		pair:  pair,
		rCli:  rCli,
	}
}

// Fetch 現在レートを取得してリポジトリへ保存
func (f *Fetcher) Fetch() error {
	t, err := f.exCli.GetTicker(&f.pair)
	if err != nil {
		return err
	}

	last, err := strconv.ParseFloat(t.Last, 64)
	if err != nil {
		return fmt.Errorf("failed to parse ticker last, pair: %v, value: %s; error: %w", f.pair, t.Last, err)
	}

	return f.rCli.AddRate(&model.Rate{
		Pair:     f.pair,
		Last:     last,
		Datetime: time.Now(),
	})
}
