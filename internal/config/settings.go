package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the analysis pipeline. These match the behavior of the
// original cron script: a 24h lookback window, a one second pause between
// LLM calls, and a 500-character floor below which an item is treated as a
// bare link rather than an article.
const (
	DefaultProvider         = "anthropic"
	DefaultAnthropicModel   = "claude-sonnet-4-5"
	DefaultGeminiModel      = "gemini-2.5-pro"
	DefaultOpenAIModel      = "gpt-4o-mini"
	DefaultReaderLocation   = "new"
	DefaultWindowHours      = 24
	DefaultDelay            = time.Second
	DefaultMinContentLength = 500
	DefaultMaxPromptContent = 15000
	DefaultContextFile      = "ActiveProblems.md"
	DefaultDailyDir         = "Daily Notes"
)

// Settings is the typed view of everything the run pipeline needs. API keys
// come from the environment only and are never written to the config file.
type Settings struct {
	Provider       string
	AnthropicModel string
	GeminiModel    string
	OpenAIModel    string

	ReaderToken    string
	ReaderLocation string

	AnthropicAPIKey string
	GeminiAPIKey    string
	OpenAIAPIKey    string

	VaultPath   string
	ContextFile string
	DailyDir    string

	WindowHours      int
	Delay            time.Duration
	MinContentLength int
	MaxPromptContent int
}

func setDefaults() {
	viper.SetDefault("provider", DefaultProvider)
	viper.SetDefault("anthropic.model", DefaultAnthropicModel)
	viper.SetDefault("gemini.model", DefaultGeminiModel)
	viper.SetDefault("openai.model", DefaultOpenAIModel)
	viper.SetDefault("reader.location", DefaultReaderLocation)
	viper.SetDefault("vault.path", ".")
	viper.SetDefault("vault.context_file", DefaultContextFile)
	viper.SetDefault("vault.daily_dir", DefaultDailyDir)
	viper.SetDefault("run.window_hours", DefaultWindowHours)
	viper.SetDefault("run.delay", DefaultDelay)
	viper.SetDefault("run.min_content_length", DefaultMinContentLength)
	viper.SetDefault("run.max_prompt_content", DefaultMaxPromptContent)
}

// Current assembles Settings from viper and the process environment.
// Call Load first.
func Current() *Settings {
	return &Settings{
		Provider:       viper.GetString("provider"),
		AnthropicModel: viper.GetString("anthropic.model"),
		GeminiModel:    viper.GetString("gemini.model"),
		OpenAIModel:    viper.GetString("openai.model"),

		ReaderToken:    os.Getenv("READWISE_TOKEN"),
		ReaderLocation: viper.GetString("reader.location"),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),

		VaultPath:   viper.GetString("vault.path"),
		ContextFile: viper.GetString("vault.context_file"),
		DailyDir:    viper.GetString("vault.daily_dir"),

		WindowHours:      viper.GetInt("run.window_hours"),
		Delay:            viper.GetDuration("run.delay"),
		MinContentLength: viper.GetInt("run.min_content_length"),
		MaxPromptContent: viper.GetInt("run.max_prompt_content"),
	}
}
