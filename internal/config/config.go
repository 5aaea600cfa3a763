// internal/config/config.go
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "iam_role" or "static_credentials"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		// 承認ゲートを有効にするエンティティ種別 (quarter / module / lesson)。
		// 含まれない種別は作成時に approved となり、残存する承認エンドポイントは
		// 後方互換のため approved への強制遷移として振る舞います。
		RequireApprovalFor []string `mapstructure:"require_approval_for"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Mailer struct {
		Provider string     `mapstructure:"provider"` // "log", "smtp", "ses"
		SMTP     SMTPConfig `mapstructure:"smtp"`
		SES      SESConfig  `mapstructure:"ses"`
	} `mapstructure:"mailer"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

// ApprovalRequired は指定種別に承認ゲートが設定されているかを返します
func (c *Config) ApprovalRequired(kind string) bool {
	for _, k := range c.App.RequireApprovalFor {
		if strings.EqualFold(k, kind) {
			return true
		}
	}
	return false
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.Mailer.Provider == "" {
		Cfg.Mailer.Provider = DefaultMailerProvider
	}

	// 承認ゲートのデフォルトはクォーターのみ。
	// モジュール・レッスンのゲートは廃止済みで、設定で明示的に再有効化できます。
	if !viper.IsSet("app.require_approval_for") {
		log.Println("Approval gate not configured, defaulting to quarters only")
		Cfg.App.RequireApprovalFor = []string{"quarter"}
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Approval required for: %v", Cfg.App.RequireApprovalFor)

	return nil
}
