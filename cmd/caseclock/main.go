package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lawkit/caseclock/internal/config"
	"github.com/lawkit/caseclock/internal/deadline"
	"github.com/lawkit/caseclock/internal/domain"
	"github.com/lawkit/caseclock/internal/handler"
	"github.com/lawkit/caseclock/internal/logger"
	"github.com/lawkit/caseclock/internal/service"
	"github.com/lawkit/caseclock/internal/store"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "caseclock",
		Usage: "Legal deadline calculator and case tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringSliceFlag{
				Name:    "holidays",
				Usage:   "Holiday dates in YYYY-MM-DD format (repeatable or comma-separated)",
				EnvVars: []string{"HOLIDAYS"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Before: func(c *cli.Context) error {
					logger.Setup(logger.ParseLevel(c.String("log-level")), "json")
					return nil
				},
				Action: runServe,
			},
			{
				Name:  "compute",
				Usage: "Compute a single deadline and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "start",
						Usage:    "Start date in YYYY-MM-DD format",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "duration",
						Usage:    "Duration to add, in units",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "unit",
						Value: string(domain.UnitDays),
						Usage: "Duration unit (days, weeks, months)",
					},
					&cli.BoolFlag{
						Name:  "business-days-only",
						Usage: "Count business days instead of calendar days",
					},
					&cli.BoolFlag{
						Name:  "exclude-weekends",
						Usage: "Treat Saturdays and Sundays as non-business days",
					},
					&cli.BoolFlag{
						Name:  "exclude-holidays",
						Usage: "Treat configured holidays as non-business days",
					},
					&cli.BoolFlag{
						Name:  "adjust-to-next-business-day",
						Usage: "Move a calendar result forward to the next business day",
					},
					&cli.BoolFlag{
						Name:  "start-next-business-day",
						Usage: "Start counting on the next business day",
					},
				},
				Before: func(c *cli.Context) error {
					logger.Setup(logger.ParseLevel(c.String("log-level")), "text")
					return nil
				},
				Action: runCompute,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	calc := deadline.New(c.StringSlice("holidays"))
	slog.Info("holiday calendar loaded", "holidays", calc.Holidays())

	caseStore := store.NewCaseStore()
	caseService := service.NewCaseService(caseStore, calc)

	h := handler.New(calc, caseService)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runCompute(c *cli.Context) error {
	calc := deadline.New(c.StringSlice("holidays"))

	result, err := calc.Compute(
		deadline.StartString(c.String("start")),
		c.Int("duration"),
		domain.Unit(c.String("unit")),
		rulesFromFlags(c),
	)
	if err != nil {
		return fmt.Errorf("compute deadline: %w", err)
	}

	fmt.Println(result.String())
	return nil
}

// rulesFromFlags builds Rules from CLI flags, keeping flags the caller did
// not pass unset so the calculator's default precedence applies.
func rulesFromFlags(c *cli.Context) domain.Rules {
	var rules domain.Rules
	if c.IsSet("business-days-only") {
		rules.BusinessDaysOnly = domain.Bool(c.Bool("business-days-only"))
	}
	if c.IsSet("exclude-weekends") {
		rules.ExcludeWeekends = domain.Bool(c.Bool("exclude-weekends"))
	}
	if c.IsSet("exclude-holidays") {
		rules.ExcludeHolidays = domain.Bool(c.Bool("exclude-holidays"))
	}
	if c.IsSet("adjust-to-next-business-day") {
		rules.AdjustToNextBusinessDay = domain.Bool(c.Bool("adjust-to-next-business-day"))
	}
	if c.IsSet("start-next-business-day") {
		rules.StartCountingOnNextBusinessDay = domain.Bool(c.Bool("start-next-business-day"))
	}
	return rules
}
