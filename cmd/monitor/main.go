package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"polo-bot/pkg/domain/model"
	"polo-bot/pkg/infrastructure/memory"
	"polo-bot/pkg/infrastructure/mysql"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
)

// MonitorConfig 環境変数で渡す設定
type MonitorConfig struct {
	DB model.DB `required:"true" split_words:"true"`
}

func main() {
	logger := memory.Logger{Level: memory.Debug}
	logger.Info("===== START PROGRAM ====================")
	defer logger.Info("===== END PROGRAM ======================")

	var config MonitorConfig
	if err := envconfig.Process("", &config); err != nil {
		logger.Error(err.Error())
		return
	}

	mysqlCli := mysql.NewClient(config.DB.UserName, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Name)

	r := mux.NewRouter()
	r.HandleFunc("/api/{pair}", apiHandler(mysqlCli)).Methods(http.MethodGet).Queries("minute", "{minute:[0-9]+}")

	http.Handle("/", r)
	if err := (http.ListenAndServe(":8080", nil)); err != nil {
		logger.Error("error occured: %v", err)
	}
}

func apiHandler(mysqlCli *mysql.Client) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err, ok := recover().(error); ok {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(struct {
					Error string `json:"error"`
				}{
					Error: err.Error(),
				})
			}
		}()
		w.Header().Set("Content-Type", "application/json")

		pair, err := model.ParseToCurrencyPair(mux.Vars(r)["pair"])
		if err != nil {
			panic(err)
		}
		minute, err := strconv.Atoi(r.URL.Query().Get("minute"))
		if err != nil {
			panic(err)
		}
		duration := time.Duration(minute) * time.Minute

		res := Response{
			Rates: []Rate{},
		}

		rates, err := mysqlCli.GetRates(pair, duration)
		if err != nil {
			panic(err)
		}
		for _, rate := range rates {
			res.Rates = append(res.Rates, Rate{
				Datetime: rate.Datetime.Format(time.RFC3339),
				Last:     rate.Last,
			})
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			panic(err)
		}
	}
}

type Rate struct {
	Datetime string  `json:"datetime"`
	Last     float64 `json:"last"`
}
type Response struct {
	Rates []Rate `json:"rates"`
}
