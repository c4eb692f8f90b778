package main

import (
	"context"
	"fmt"
	"log"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion/claude"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion/openai"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/config"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/extract"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/handler"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/preprocess"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/repository/memory"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/router"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register completion providers
	completion.RegisterProvider("openai", func(c *config.CompletionProviderConfig) (port.Completer, error) {
		return openai.NewClient(c), nil
	})
	completion.RegisterProvider("claude", func(c *config.CompletionProviderConfig) (port.Completer, error) {
		return claude.NewClient(c), nil
	})

	completer, err := buildCompleter(&cfg.Completion)
	if err != nil {
		return fmt.Errorf("failed to build completion provider: %w", err)
	}

	// Case text pipeline
	policy := preprocess.DefaultPolicy()
	policy.MinLineChars = cfg.Preprocess.MinLineChars
	policy.UppercaseMinChars = cfg.Preprocess.UppercaseMinChars
	condenser := completion.NewCondenser(completer)
	analysisBudget := preprocess.NewManager(condenser, preprocess.Budget{Trigger: cfg.Budget.AnalysisTrigger})
	sessionBudget := preprocess.NewManager(condenser, preprocess.Budget{Trigger: cfg.Budget.SessionTrigger})

	// Session store with background expiry sweep
	sessions := memory.NewSessionStore()
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go sessions.Sweep(sweepCtx, cfg.Session.SweepInterval, cfg.Session.TTL)

	// Initialize services
	perK := cfg.Cost.PerThousandTokensUSD
	analysisSvc := service.NewAnalysisService(completer, analysisBudget, policy, sessions, perK)
	simulatorSvc := service.NewSimulatorService(completer, sessionBudget, policy, sessions, perK)
	drillSvc := service.NewDrillService(completer, sessionBudget, policy, sessions, perK)

	// Initialize handlers
	analysisH := handler.NewAnalysisHandler(analysisSvc)
	simulationH := handler.NewSimulationHandler(simulatorSvc)
	drillH := handler.NewDrillHandler(drillSvc)
	extractH := handler.NewExtractHandler(extract.NewExtractor(cfg.Extract.Pdftotext), cfg.Extract.MaxFileSizeMB)
	healthH := handler.NewHealthHandler(completer)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, analysisH, simulationH, drillH, extractH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildCompleter creates the primary provider and, when a secondary is
// configured, wraps both in a rate-limit fallback chain.
func buildCompleter(cfg *config.CompletionConfig) (port.Completer, error) {
	primary, err := completion.NewCompleter(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := completion.NewCompleter(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return completion.NewFallbackCompleter(
		[]port.Completer{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
