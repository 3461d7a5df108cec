package cmd

import (
	"strings"

	"github.com/msto63/tuplang/foundation/core/config"
	mdwerror "github.com/msto63/tuplang/foundation/core/error"
	"github.com/msto63/tuplang/internal/history"
	"github.com/msto63/tuplang/tupl"
)

// appSettings holds the effective command line configuration
type appSettings struct {
	ConfigPath      string
	LogLevel        string
	LogFormat       string
	Color           bool
	MaxSourceLength int
	MaxTokens       int
	HistoryPath     string
}

var configDefaults = map[string]interface{}{
	"log.level":                "info",
	"log.format":               "text",
	"output.color":             true,
	"parser.max_source_length": tupl.DefaultMaxSourceLength,
	"parser.max_tokens":        0,
	"history.path":             history.DefaultConfig().Path,
}

var configRules = config.ValidationRules{
	"log.level":                {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
	"log.format":               {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
	"output.color":             {Type: "bool"},
	"parser.max_source_length": {Type: "int", Min: config.IntPtr(1)},
	"parser.max_tokens":        {Type: "int", Min: config.IntPtr(0)},
	"history.path":             {Type: "string", Required: true},
}

// loadSettings reads path, or the first discovered config file when path
// is empty. TUPL_* environment variables override file values.
func loadSettings(path string) (*appSettings, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "TUPL",
			Defaults:  configDefaults,
		})
	} else {
		opts := config.DefaultDiscoveryOptions()
		opts.Defaults = configDefaults
		cfg, err = config.Discover(opts)
	}
	if err != nil {
		return nil, err
	}

	if result := cfg.Validate(configRules); !result.Valid {
		return nil, mdwerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.loadSettings").
			WithDetail("configPath", cfg.FilePath())
	}

	return &appSettings{
		ConfigPath:      cfg.FilePath(),
		LogLevel:        cfg.GetString("log.level"),
		LogFormat:       cfg.GetString("log.format"),
		Color:           cfg.GetBool("output.color"),
		MaxSourceLength: cfg.GetInt("parser.max_source_length"),
		MaxTokens:       cfg.GetInt("parser.max_tokens"),
		HistoryPath:     cfg.GetString("history.path"),
	}, nil
}
