package mysql

import (
	"fmt"
	"log"
	"time"

	"polo-bot/pkg/domain/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Client MySQL用クライアント
type Client struct {
	db *gorm.DB
}

// NewClient MySQL用クライアントの生成
func NewClient(userName, password, dbHost string, dbPort int, dbName string) *Client {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True&loc=Local", userName, password, dbHost, dbPort, dbName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Got error when connect database, the error is '%v'", err)
	}

	return &Client{
		db: db,
	}
}

// AddRate レート追加
func (c *Client) AddRate(r *model.Rate) error {
	return c.db.Create(NewRate(r)).Error
}

// GetRates 指定期間分のレートを取得
func (c *Client) GetRates(pair *model.CurrencyPair, period time.Duration) ([]model.Rate, error) {
	border := time.Now().Add(-period)

	records := []Rate{}
	err := c.db.
		Where("pair = ? AND recorded_at >= ?", pair.String(), border).
		Order("recorded_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	rates := []model.Rate{}
	for _, record := range records {
		r, err := record.ToDomainModel()
		if err != nil {
			return nil, err
		}
		rates = append(rates, *r)
	}
	return rates, nil
}
