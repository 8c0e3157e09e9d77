package model

// Exchange 取引所向け設定
type Exchange struct {
	Key    string `toml:"key" split_words:"true"`
	Secret string `toml:"secret" split_words:"true"`
}

// DB DB用設定
type DB struct {
	Host     string `toml:"host" required:"true"`
	Port     int    `toml:"port" required:"true"`
	Name     string `toml:"name" required:"true"`
	UserName string `toml:"user_name" split_words:"true" required:"true"`
	Password string `toml:"password" required:"true"`
}

// TradeToolConfig 取引CLI用設定
type TradeToolConfig struct {
	TargetPair     string   `toml:"target_pair"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	DisablePacer   bool     `toml:"disable_pacer"`
	TrendShortTerm int      `toml:"trend_short_term"`
	TrendLongTerm  int      `toml:"trend_long_term"`
	Exchange       Exchange `toml:"exchange"`
}
