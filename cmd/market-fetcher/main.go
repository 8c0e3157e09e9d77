package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"polo-bot/pkg/domain/model"
	"polo-bot/pkg/infrastructure/memory"
	"polo-bot/pkg/infrastructure/mysql"
	"polo-bot/pkg/infrastructure/poloniex"
	"polo-bot/pkg/infrastructure/slack"
	"polo-bot/pkg/usecase"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/sync/errgroup"
)

const (
	location = "Asia/Tokyo"
)

func init() {
	loc, err := time.LoadLocation(location)
	if err != nil {
		loc = time.FixedZone(location, 9*60*60)
	}
	time.Local = loc
}

// Config 環境変数で渡す設定
type Config struct {
	// 対象コインペア
	TargetPair string `required:"true" split_words:"true"`
	// 稼働間隔（秒）
	IntervalSeconds int `required:"true" split_words:"true"`
	// SlackのIncomingWebhookのURL（空なら通知なし）
	SlackURL string `split_words:"true"`
	// DB設定
	DB model.DB `required:"true" split_words:"true"`
}

func main() {
	logger := memory.Logger{Level: memory.Debug}

	logger.Info("===== START PROGRAM ====================")
	defer logger.Info("===== END PROGRAM ======================")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		logger.Error(err.Error())
		return
	}
	pair, err := model.ParseToCurrencyPair(config.TargetPair)
	if err != nil {
		logger.Error(err.Error())
		return
	}

	logger.Info("pair: %s\n", config.TargetPair)
	logger.Info("interval: %d sec\n", config.IntervalSeconds)
	logger.Info("======================================")

	poloniexCli := poloniex.NewPublicClient(&logger)
	mysqlCli := mysql.NewClient(config.DB.UserName, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Name)
	slackCli := slack.NewClient(config.SlackURL)
	fetcher := usecase.NewFetcher(poloniexCli, *pair, mysqlCli)

	rootCtx, cancel := context.WithCancel(context.Background())
	errGroup, ctx := errgroup.WithContext(rootCtx)

	errGroup.Go(fetchLoop(ctx, &config, fetcher, slackCli, &logger))
	errGroup.Go(func() error {
		defer cancel()
		return watchSignal(ctx, &logger)
	})

	if err := errGroup.Wait(); err != nil {
		logger.Error("error occured, %v", err)
	}
}

func fetchLoop(ctx context.Context, config *Config, fetcher *usecase.Fetcher, slackCli *slack.Client, logger *memory.Logger) func() error {
	return func() error {
		// レートの定期保存
		ticker := time.NewTicker(time.Duration(config.IntervalSeconds) * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := fetcher.Fetch(); err != nil {
					logger.Error("failed to fetch, error: %v", err)
					if err := slackCli.NotifyError("market-fetcher", err); err != nil {
						logger.Error("failed to notify, error: %v", err)
					}
				}
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func watchSignal(ctx context.Context, logger *memory.Logger) error {
	// OSのシグナル監視
	quit := make(chan os.Signal, 1)
	defer close(quit)
	signal.Notify(quit, os.Interrupt)
	select {
	case <-quit:
		logger.Info("terminating ...")
	case <-ctx.Done():
	}
	return nil
}
