package runtime

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

type Mode struct {
	Debug bool `envconfig:"DEBUG"`
}

type HTTP struct {
	Host string
	Port int `envconfig:"PORT"`
	TLS  bool
	Crt  string
	Key  string
}

type MysqlConfig struct {
	Enabled  bool `envconfig:"MYSQL_ENABLED"`
	Host     string
	Port     int
	User     string
	Password string `envconfig:"MYSQL_PASSWORD"`
	DB       string
	MaxOpen  int
	MaxIdle  int
	MaxLife  int
	Migrate  bool
}

type JWT struct {
	Expire int
	Key    string `envconfig:"JWT_KEY"`
}

type SlackConfig struct {
	Secret     string `envconfig:"SLACK_SIGNING_SECRET"`
	Token      string `envconfig:"SLACK_BOT_TOKEN"`
	AppToken   string `envconfig:"SLACK_APP_TOKEN"`
	SocketMode bool   `envconfig:"SOCKET_MODE"`
	// Bot is the bot user id; resolved with auth.test when empty.
	Bot     string `envconfig:"SLACK_BOT_USER"`
	History int
}

type OpenAIConfig struct {
	ApiKey      string  `envconfig:"OPENAI_API_KEY"`
	BaseURL     string  `envconfig:"OPENAI_BASE_URL"`
	Model       string  `envconfig:"OPENAI_MODEL"`
	MaxTokens   int
	Temperature float32 `envconfig:"OPENAI_TEMPERATURE"`
}

type SheetsConfig struct {
	SpreadsheetID   string `envconfig:"SPREADSHEET_ID"`
	ServiceAccount  string `envconfig:"GOOGLE_SERVICE_ACCOUNT"`
	CredentialsPath string `envconfig:"GOOGLE_SHEETS_CREDENTIALS_PATH"`
}

type Config struct {
	Mode   Mode
	HTTP   HTTP
	Mysql  MysqlConfig
	Jwt    JWT
	Slack  SlackConfig
	OpenAI OpenAIConfig
	Sheets SheetsConfig
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTP{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Jwt: JWT{
			Expire: 24 * 3600,
		},
		Slack: SlackConfig{
			History: 20,
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 300,
		},
	}
}

// loadConfig layers the TOML file, the .env file and the process environment,
// in that order. Both files are optional.
func loadConfig(flags *Flags) (*Config, error) {
	config := defaultConfig()

	if flags.ConfigFile != "" {
		content, err := os.ReadFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(content, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", flags.ConfigFile, err)
		}
	}

	if flags.EnvFile != "" {
		if err := godotenv.Load(flags.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", flags.EnvFile, err)
		}
	}

	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Slack.Token == "" {
		errs = append(errs, errors.New("slack bot token is required (SLACK_BOT_TOKEN)"))
	}
	if c.Slack.SocketMode {
		if c.Slack.AppToken == "" {
			errs = append(errs, errors.New("socket mode needs an app token (SLACK_APP_TOKEN)"))
		}
	} else if c.Slack.Secret == "" {
		errs = append(errs, errors.New("slack signing secret is required (SLACK_SIGNING_SECRET)"))
	}
	if c.OpenAI.ApiKey == "" {
		errs = append(errs, errors.New("openai api key is required (OPENAI_API_KEY)"))
	}
	if c.Sheets.SpreadsheetID == "" {
		errs = append(errs, errors.New("spreadsheet id is required (SPREADSHEET_ID)"))
	}
	if c.Sheets.ServiceAccount == "" && c.Sheets.CredentialsPath == "" {
		errs = append(errs, errors.New("no google sheets credentials (GOOGLE_SERVICE_ACCOUNT or GOOGLE_SHEETS_CREDENTIALS_PATH)"))
	}

	return errors.Join(errs...)
}
