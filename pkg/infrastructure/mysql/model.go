package mysql

import (
	"time"

	"polo-bot/pkg/domain/model"
)

// Rate レート履歴
type Rate struct {
	ID         uint64 `gorm:"primaryKey"`
	Pair       string `gorm:"index"`
	Last       float64
	RecordedAt time.Time `gorm:"index"`
}

// NewRate 生成
func NewRate(org *model.Rate) *Rate {
	return &Rate{
		Pair:       org.Pair.String(),
		Last:       org.Last,
		RecordedAt: org.Datetime,
	}
}

// ToDomainModel ドメインモデルに変換
func (r *Rate) ToDomainModel() (*model.Rate, error) {
	pair, err := model.ParseToCurrencyPair(r.Pair)
	if err != nil {
		return nil, err
	}
	return &model.Rate{
		Pair:     *pair,
		Last:     r.Last,
		Datetime: r.RecordedAt,
	}, nil
}
