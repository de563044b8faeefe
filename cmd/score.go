package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Glen4687/Resume-Scorer/internal/ai"
	"github.com/Glen4687/Resume-Scorer/internal/ai/gemini"
	"github.com/Glen4687/Resume-Scorer/internal/ai/openai"
	"github.com/Glen4687/Resume-Scorer/internal/config"
	"github.com/Glen4687/Resume-Scorer/internal/extract"
	"github.com/Glen4687/Resume-Scorer/internal/logger"
	"github.com/Glen4687/Resume-Scorer/internal/pipeline"
	"github.com/Glen4687/Resume-Scorer/internal/secrets"
)

// score is the main command for the cli.
func score(cmd *cobra.Command, resumePath, jobTitle string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	base, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer func() { _ = base.Sync() }()

	log := logger.WithRunID(base, uuid.NewString())
	log.Info("starting the resume-scorer", zap.String("version", version))

	path := configPath(cfgFile)
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	provider := strings.ToLower(strings.TrimSpace(firstNonEmpty(viper.GetString("provider"), cfg.Provider)))
	if provider != config.ProviderOpenAI && provider != config.ProviderGemini {
		return fmt.Errorf("unsupported ai provider: %s", provider)
	}

	params := pipeline.Params{
		ResumePath: resumePath,
		JobTitle:   jobTitle,
		Provider:   provider,
		Model:      firstNonEmpty(viper.GetString("model"), cfg.Model),
		APIKey:     apiKeySource(cfg, provider),
		Weights:    cfg.ScoringWeights,
		OutputFile: firstNonEmpty(viper.GetString("output"), cfg.OutputFile),
	}

	log.Debug("loaded configuration", configFields(path, params)...)

	p := &pipeline.Pipeline{
		Extractor:    extract.New(),
		NewCompleter: newCompleter(log),
		Out:          cmd.OutOrStdout(),
		Logger:       log,
	}

	if _, err := p.Run(ctx, params); err != nil {
		return err
	}

	log.Info("done")
	return nil
}

// configPath prefers the --config flag, then config.json beside the executable,
// then config.json in the working directory.
func configPath(flag string) string {
	if flag = strings.TrimSpace(flag); flag != "" {
		return flag
	}

	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), config.FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return config.FileName
}

// configFields describes the effective settings of a run. Keys are left out.
func configFields(path string, params pipeline.Params) []zap.Field {
	return []zap.Field{
		zap.String("path", path),
		zap.String("provider", params.Provider),
		zap.String("model", params.Model),
		zap.String("output_file", params.OutputFile),
		zap.Any("weights", params.Weights.Values()),
	}
}

func apiKeySource(cfg *config.Config, provider string) secrets.Source {
	return secrets.Source{
		Name:         provider + " api key",
		Value:        cfg.APIKey(provider),
		File:         viper.GetString("api-key-file"),
		Fallback:     viper.GetString(provider + "-api-key"),
		Placeholders: []string{config.Placeholder(provider)},
	}
}

func newCompleter(log *zap.Logger) pipeline.CompleterFactory {
	return func(ctx context.Context, provider, model, apiKey string) (ai.Completer, error) {
		var (
			completer ai.Completer
			err       error
		)

		switch provider {
		case config.ProviderOpenAI:
			completer, err = openai.New(apiKey, model)
		case config.ProviderGemini:
			completer, err = gemini.NewGenerator(ctx, apiKey, model)
		default:
			return nil, fmt.Errorf("unsupported ai provider: %s", provider)
		}
		if err != nil {
			return nil, err
		}

		logger.WithCommonFields(log, provider, completer.Model()).Debug("ai client ready")
		return completer, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
