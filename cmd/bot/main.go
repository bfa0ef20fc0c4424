package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"CoinReport/internal/chart"
	"CoinReport/internal/collector"
	"CoinReport/internal/config"
	"CoinReport/internal/news"
	"CoinReport/internal/notifier"
	"CoinReport/internal/pipeline"
	"CoinReport/internal/recorder"
	"CoinReport/internal/scheduler"
	"CoinReport/internal/series"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CoinReport starting...")

	daemon := flag.Bool("daemon", false, "keep running and execute on the configured cron schedule")
	flag.Parse()

	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[ERROR] load config: %v", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		// Missing required config aborts with no side effects; the process
		// still exits normally.
		log.Printf("[ERROR] config validation: %v", err)
		return
	}

	fetcher := collector.NewCoinbaseFetcher(cfg.Exchange.APIKey)
	log.Printf("[INFO] price source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	p := &pipeline.Pipeline{
		Pair:           cfg.Exchange.Pair,
		PurchasePrices: cfg.PurchasePrices,
		Fetcher:        fetcher,
		Store:          series.NewStore(cfg.Series.CSVPath),
		Renderer:       chart.NewRenderer(cfg.Chart.OutputPath),
		News:           news.NewClient(cfg.News.APIKey, cfg.News.Model),
		Sender:         notifier.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Sender, cfg.Mail.Password, cfg.Mail.Recipient),
		Recorder:       rec,
	}

	if !*daemon {
		out := p.Run()
		log.Printf("[INFO] run finished: %s", out.Stage)
		return
	}

	// Daemon mode: schedule the daily report and wait for a shutdown signal.
	sched := scheduler.NewScheduler(p)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Printf("[ERROR] register cron task: %v", err)
		return
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing report now")
		go sched.RunNow()
	}

	log.Println("[INFO] CoinReport is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] CoinReport stopped")
}
