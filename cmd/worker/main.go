package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/app"
	"github.com/madhangowdaa/mak-backend/internal/config"
	"github.com/madhangowdaa/mak-backend/internal/jobs"
)

func main() {
	runOnce := flag.String("run", "", "run one job now and exit ("+jobs.RepairTop10Name+" | "+jobs.RefreshMetadataName+" | "+jobs.BackupName+")")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[worker] config: %v", err)
	}
	defer app.SetupLogging(cfg.LogFile).Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("[worker] error al iniciar: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.Close(closeCtx)
	}()

	sched := jobs.NewScheduler()
	if err := sched.AddJob(cfg.WorkerRepairSpec, jobs.RepairTop10{Top10: a.Top10}); err != nil {
		log.Fatalf("[worker] %v", err)
	}
	if err := sched.AddJob(cfg.WorkerRefreshSpec, jobs.RefreshMetadata{Metadata: a.Metadata}); err != nil {
		log.Fatalf("[worker] %v", err)
	}

	if cfg.WorkerBackupSpec != "off" {
		if err := sched.AddJob(cfg.WorkerBackupSpec, jobs.Backup{Backup: a.Backup}); err != nil {
			log.Fatalf("[worker] %v", err)
		}
	}

	if *runOnce != "" {
		if err := sched.RunJobNow(*runOnce); err != nil {
			log.Printf("[worker] %s: %v", *runOnce, err)
			stop()
			os.Exit(1)
		}
		return
	}

	sched.Start()
	<-ctx.Done()
	log.Println("[worker] apagando")
	sched.Stop()
}
