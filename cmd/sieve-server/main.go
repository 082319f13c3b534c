// Command sieve-server runs the demo HTTP API over a sieve.Sieve,
// exercising internal/config, internal/httpapi, and the engine registry
// end to end the way the teacher's cmd/raito-api exercises its own
// services. It is ambient tooling, not part of the aggregation library's
// core contract.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ncecere/sieve"
	"github.com/ncecere/sieve/internal/config"
	"github.com/ncecere/sieve/internal/engine"
	_ "github.com/ncecere/sieve/internal/engine/mojeek"
	"github.com/ncecere/sieve/internal/httpapi"
	"github.com/ncecere/sieve/internal/httpclient"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.Load(*configPath)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	engines, err := engine.Build(cfg.EnabledEngineNames())
	if err != nil {
		log.Fatalf("failed to build engines: %v", err)
	}

	clientTimeout := 15 * time.Second
	if cfg.HTTPClient.TimeoutMs > 0 {
		clientTimeout = time.Duration(cfg.HTTPClient.TimeoutMs) * time.Millisecond
	}

	sv := sieve.New(httpclient.NewDefault(clientTimeout), engines...).
		WithTimeout(cfg.AggregatorTimeout())
	if cfg.Aggregator.ParseWorkers > 0 {
		sv = sv.WithParseWorkers(cfg.Aggregator.ParseWorkers)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	s := httpapi.NewServer(cfg, sv, logger)
	if err := s.Listen(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
