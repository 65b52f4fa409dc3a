package runtime

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/forgoes/gilbert/ai"
	"github.com/forgoes/gilbert/bot"
	"github.com/forgoes/gilbert/store"
)

type Runtime struct {
	Flags  *Flags
	Config *Config
	Logger *slog.Logger
	Mysql  *gorm.DB
	Slack  *Slack
	OpenAI *OpenAI
	Sheets *Sheets

	Registry *prometheus.Registry
	Store    *store.Store
	Bot      *bot.Bot

	handlers sync.WaitGroup
}

// Load reads the configuration and sets up logging without dialing anything.
func Load(flags *Flags) (*Runtime, error) {
	config, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Flags:  flags,
		Config: config,
		Logger: newLogger(config),
	}, nil
}

func New(ctx context.Context, flags *Flags) (*Runtime, error) {
	rt, err := Load(flags)
	if err != nil {
		return nil, err
	}
	if err := rt.Config.Validate(); err != nil {
		return nil, err
	}

	s, err := initSlack(ctx, rt.Config)
	if err != nil {
		return nil, err
	}
	rt.Slack = s

	rt.OpenAI = initOpenAI(&rt.Config.OpenAI)

	sh, err := initSheets(ctx, &rt.Config.Sheets)
	if err != nil {
		return nil, err
	}
	rt.Sheets = sh

	if rt.Config.Mysql.Enabled {
		db, err := initMysql(&rt.Config.Mysql)
		if err != nil {
			return nil, err
		}
		rt.Mysql = db
	}

	rt.wire()

	return rt, nil
}

// wire builds the store and the bot on top of the external clients.
func (r *Runtime) wire() {
	r.Registry = prometheus.NewRegistry()
	r.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r.Store = store.New(store.NewSheetsValues(r.Sheets.Service, r.Sheets.SpreadsheetID))

	var journal bot.Journal = bot.NopJournal{}
	if r.Mysql != nil {
		journal = bot.NewGormJournal(r.Mysql)
	}

	r.Bot = bot.New(
		r.Store,
		ai.NewResponder(r.OpenAI.Client, r.OpenAI.Model, r.OpenAI.MaxTokens, ai.WithTemperature(r.OpenAI.Temperature)),
		r.Slack.Client,
		bot.WithJournal(journal),
		bot.WithMetrics(bot.NewMetrics(r.Registry)),
		bot.WithLogger(r.Logger),
		bot.WithHistory(r.Config.Slack.History),
	)
}

func newLogger(config *Config) *slog.Logger {
	level := slog.LevelInfo
	if config.Mode.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Go runs f in the background and tracks it until it returns.
func (r *Runtime) Go(f func()) {
	r.handlers.Add(1)
	go func() {
		defer r.handlers.Done()
		f()
	}()
}

// Wait blocks until every function started with Go has returned, or ctx is
// done.
func (r *Runtime) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.handlers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runtime) Close(ctx context.Context) error {
	if r.Mysql == nil {
		return nil
	}

	sqlDB, err := r.Mysql.DB()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- sqlDB.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
