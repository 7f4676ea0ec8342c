package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"
)

// Config is the full process configuration, loaded from the environment.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"`
	OwnerID  int    `envconfig:"OWNER_ID" required:"true"`

	AIAPIKey  string   `envconfig:"AI_API_KEY"`
	AIBaseURL string   `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api"`
	AIModels  []string `envconfig:"AI_MODELS" default:"deepseek/deepseek-chat,meta-llama/llama-3.3-70b-instruct,mistralai/mistral-7b-instruct"`

	WebhookURL string `envconfig:"WEBHOOK_URL"`
	Port       string `envconfig:"PORT" default:"8080"`

	DataDir string `envconfig:"DATA_DIR" default:"data"`

	// When set, operator/conversation state lives in DynamoDB instead of files.
	OperatorsTable string `envconfig:"OPERATORS_TABLE_NAME"`
	ChatsTable     string `envconfig:"CHATS_TABLE_NAME"`
}

func Load() (*Config, error) {
	var s Config
	if err := envconfig.Process("", &s); err != nil {
		return nil, xerrors.Errorf("load config: %w", err)
	}
	for i, m := range s.AIModels {
		s.AIModels[i] = strings.TrimSpace(m)
	}
	return &s, nil
}

func (s *Config) UseDynamo() bool {
	return s.OperatorsTable != "" && s.ChatsTable != ""
}
