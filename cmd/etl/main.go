package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CoinPulse/internal/config"
	"CoinPulse/internal/extract"
	"CoinPulse/internal/job"
	"CoinPulse/internal/load"
	"CoinPulse/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CoinPulse starting...")

	var cfgPath string
	var once bool
	flag.StringVar(&cfgPath, "config", getenv("CONFIG_PATH", "configs/config.yaml"), "path to config.yaml")
	flag.BoolVar(&once, "once", false, "run one ETL pass and exit (for external schedulers)")
	flag.Parse()

	// Secrets may live in a local .env; absence is fine.
	godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init fetcher
	fetcher := extract.NewCoinGeckoFetcher(cfg.API.BaseURL, cfg.API.APIKey, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init loader
	var loader load.Loader
	switch {
	case cfg.Database.Host != "":
		pl, err := load.NewPostgresLoader(ctx, load.PostgresConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			Database: cfg.Database.Name,
			Schema:   cfg.Database.Schema,
			Table:    cfg.Database.Table,
		})
		if err != nil {
			log.Fatalf("[FATAL] init postgres loader: %v", err)
		}
		loader = pl
	case cfg.Database.SQLitePath != "":
		sl, err := load.NewSQLiteLoader(cfg.Database.SQLitePath, cfg.Database.Schema+"_"+cfg.Database.Table)
		if err != nil {
			log.Fatalf("[FATAL] init sqlite loader: %v", err)
		}
		loader = sl
	default:
		log.Println("[WARN] no database configured, using noop loader")
		loader = load.NewNoopLoader()
	}
	defer loader.Close()

	j := job.New(fetcher, loader, cfg.API.Coins, cfg.API.Currency)

	if once {
		if err := j.Run(ctx); err != nil {
			log.Fatalf("[FATAL] etl run: %v", err)
		}
		return
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, j)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing etl now")
		go sched.RunNow()
	}

	log.Println("[INFO] CoinPulse is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
