package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/finwatch/cc-statement-tracker/internal/config"
	"github.com/finwatch/cc-statement-tracker/internal/issuer"
	"github.com/finwatch/cc-statement-tracker/internal/logger"
	"github.com/finwatch/cc-statement-tracker/internal/mailbox"
	"github.com/finwatch/cc-statement-tracker/internal/pdfdoc"
	"github.com/finwatch/cc-statement-tracker/internal/pipeline"
	"github.com/finwatch/cc-statement-tracker/internal/render"
	"github.com/finwatch/cc-statement-tracker/internal/statement"
	"github.com/finwatch/cc-statement-tracker/internal/store"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// app bundles everything a batch run needs.
type app struct {
	cfg        *config.Config
	classifier *issuer.Classifier
	passwords  config.Passwords
	db         *store.DB
	log        zerolog.Logger
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if version != "dev" {
		cfg.Version = version
	}

	log := logger.New(cfg.LogLevel)
	if cfg.IsDebug() {
		log.Debug().Str("config", cfg.String()).Msg("starting")
	}

	a, err := buildApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer a.db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.IsScheduled() {
		runScheduled(ctx, cancel, a)
		return
	}
	a.runAll(ctx)
}

// buildApp loads the credential files and opens the store. Total
// configuration absence (no domains, no passwords) aborts here.
func buildApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	domains, err := config.LoadSenderDomains(cfg.SendersFile)
	if err != nil {
		return nil, err
	}
	passwords, err := config.LoadPasswords(cfg.PasswordsFile)
	if err != nil {
		return nil, err
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:        cfg,
		classifier: issuer.NewClassifier(issuer.DefaultProfiles(), domains),
		passwords:  passwords,
		db:         db,
		log:        log,
	}, nil
}

// runAll processes every configured user sequentially and renders each
// user's bill table afterwards.
func (a *app) runAll(ctx context.Context) {
	unlocker := pdfdoc.NewUnlocker(a.cfg.MaxFileSize)
	extractor := pdfdoc.NewExtractor()
	engine := statement.NewEngine()

	for _, user := range a.cfg.Users {
		log := a.log.With().Str("user", user).Logger()

		if !a.passwords.HasUser(user) {
			log.Warn().Msg("no passwords configured for user, skipping")
			continue
		}

		mail, err := mailbox.NewClient(ctx, a.cfg.CredsDir, user)
		if err != nil {
			log.Error().Err(err).Msg("mailbox authentication failed")
			continue
		}

		runner := pipeline.NewRunner(
			a.classifier, unlocker, extractor, engine,
			a.passwords, mail, a.db, a.cfg.WindowDays, a.log,
		)
		if _, err := runner.Run(ctx, user); err != nil {
			log.Error().Err(err).Msg("run failed")
			continue
		}

		bills, err := a.db.ListByUser(ctx, user)
		if err != nil {
			log.Error().Err(err).Msg("failed to list bills")
			continue
		}
		render.BillTable(os.Stdout, user, bills)
	}
}

// runScheduled re-runs the batch on the configured cron expression until
// interrupted.
func runScheduled(ctx context.Context, cancel context.CancelFunc, a *app) {
	c := cron.New()
	if _, err := c.AddFunc(a.cfg.Schedule, func() { a.runAll(ctx) }); err != nil {
		a.log.Fatal().Err(err).Str("schedule", a.cfg.Schedule).Msg("invalid cron expression")
	}

	// Run once immediately, then on schedule.
	a.runAll(ctx)
	c.Start()
	a.log.Info().Str("schedule", a.cfg.Schedule).Msg("scheduler started")

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	sig := <-signalCh
	a.log.Info().Str("signal", sig.String()).Msg("shutting down")
	cancel()
	<-c.Stop().Done()
}

// printVersion prints version information.
func printVersion() {
	fmt.Printf("Credit Card Statement Tracker\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
