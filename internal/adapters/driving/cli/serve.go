package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	configfile "github.com/quorumhq/quorum/internal/adapters/driven/config/file"
	embeddingollama "github.com/quorumhq/quorum/internal/adapters/driven/embedding/ollama"
	embeddingopenai "github.com/quorumhq/quorum/internal/adapters/driven/embedding/openai"
	"github.com/quorumhq/quorum/internal/adapters/driven/index/postgres"
	llmollama "github.com/quorumhq/quorum/internal/adapters/driven/llm/ollama"
	llmopenai "github.com/quorumhq/quorum/internal/adapters/driven/llm/openai"
	"github.com/quorumhq/quorum/internal/adapters/driving/httpapi"
	"github.com/quorumhq/quorum/internal/core/ports/driven"
	"github.com/quorumhq/quorum/internal/core/services"
	"github.com/quorumhq/quorum/internal/logger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the query HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "quorum.toml", "path to the config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.Load(configPath)
	if err != nil {
		return err
	}

	store, err := postgres.Open(cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("connect to index database: %w", err)
	}
	defer store.Close()

	embedder, err := buildEmbedding(cfg.Embedding)
	if err != nil {
		return err
	}
	defer embedder.Close()

	llm, err := buildLLM(cfg.LLM)
	if err != nil {
		return err
	}
	defer llm.Close()

	pingServices(cmd.Context(), embedder, llm)

	queryService := services.NewQueryService(
		services.NewSemanticRetriever(embedder, postgres.NewVectorIndex(store)),
		services.NewLexicalRetriever(postgres.NewSearchEngine(store)),
		services.NewFuser(cfg.Query.FusionConstant),
		services.NewAssembler(cfg.Query.ContextBudget),
		services.NewSynthesizer(llm, cfg.Query.SynthesisTimeout()),
		services.WithRetrievalTimeout(cfg.Query.RetrievalTimeout()),
	)

	server := httpapi.NewServer(cfg.Server.Addr, queryService, cfg.Server.ShutdownTimeout())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// buildEmbedding constructs the configured embedding service.
func buildEmbedding(cfg configfile.ProviderConfig) (driven.EmbeddingService, error) {
	switch cfg.Provider {
	case "ollama", "":
		return embeddingollama.NewEmbeddingService(embeddingollama.Config{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
		}), nil
	case "openai":
		return embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// buildLLM constructs the configured text generation service.
func buildLLM(cfg configfile.ProviderConfig) (driven.LLMService, error) {
	switch cfg.Provider {
	case "ollama", "":
		return llmollama.NewLLMService(llmollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		}), nil
	case "openai":
		return llmopenai.NewLLMService(llmopenai.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// pingServices probes the AI backends at startup. Failures are logged, not
// fatal: retrieval can still answer with sources while generation is down.
func pingServices(ctx context.Context, embedder driven.EmbeddingService, llm driven.LLMService) {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := embedder.Ping(pingCtx); err != nil {
		logger.Warn("Embedding service unreachable (%s): %v", embedder.ModelName(), err)
	} else {
		logger.Info("Embedding service ready: %s (%d dims)", embedder.ModelName(), embedder.Dimensions())
	}

	if err := llm.Ping(pingCtx); err != nil {
		logger.Warn("LLM service unreachable (%s): %v", llm.ModelName(), err)
	} else {
		logger.Info("LLM service ready: %s", llm.ModelName())
	}
}
