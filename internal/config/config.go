package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	Gemini   *geminiConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"planner"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address            string   `envconfig:"AUTOMATION_PLANNER_ADDRESS" default:":3443"`
	MetricsAddress     string   `envconfig:"AUTOMATION_PLANNER_METRICS_ADDRESS" default:":8080"`
	BaseUrl            string   `envconfig:"AUTOMATION_PLANNER_BASE_URL" default:"https://localhost:3443"`
	LogLevel           string   `envconfig:"AUTOMATION_PLANNER_LOG_LEVEL" default:"info"`
	AssetsFolder       string   `envconfig:"AUTOMATION_PLANNER_ASSETS_FOLDER" default:"assets"`
	MigrationFolder    string   `envconfig:"AUTOMATION_PLANNER_MIGRATIONS_FOLDER" default:"migrations"`
	CorsAllowedOrigins []string `envconfig:"AUTOMATION_PLANNER_CORS_ORIGINS" default:"http://localhost:3000"`
}

type geminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY" default:""`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-001"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}
