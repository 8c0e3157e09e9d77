package repository

import (
	"time"

	"polo-bot/pkg/domain/model"
)

// RateRepository レート用リポジトリ
type RateRepository interface {
	AddRate(r *model.Rate) error
	GetRates(pair *model.CurrencyPair, period time.Duration) ([]model.Rate, error)
}
