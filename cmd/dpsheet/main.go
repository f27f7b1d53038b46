package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jorge-barreto/dpsheet/internal/config"
	"github.com/jorge-barreto/dpsheet/internal/docs"
	"github.com/jorge-barreto/dpsheet/internal/export"
	"github.com/jorge-barreto/dpsheet/internal/logs"
	"github.com/jorge-barreto/dpsheet/internal/scaffold"
	"github.com/jorge-barreto/dpsheet/internal/session"
	"github.com/jorge-barreto/dpsheet/internal/store"
	"github.com/jorge-barreto/dpsheet/internal/ux"
	"github.com/jorge-barreto/dpsheet/internal/worksheet"
	cli "github.com/urfave/cli/v3"
)

func main() {
	// Exports can exceed the default sniff window; JSON is only recognized
	// when the whole document parses.
	mimetype.SetLimit(0)

	app := &cli.Command{
		Name:        "dpsheet",
		Usage:       "Structured thinking worksheet for DP and greedy problems",
		Description: "Run 'dpsheet guide' for the step-by-step How to Solve reference.",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Config file (default: <user config dir>/dpsheet/config.yaml)"},
			&cli.StringFlag{Name: "log-level", Usage: "Override log level: debug, info, warn, error"},
		}, editFlags()...),
		Action: editAction,
		Commands: []*cli.Command{
			editCmd(),
			convertCmd(),
			guideCmd(),
			initCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func editCmd() *cli.Command {
	return &cli.Command{
		Name:   "edit",
		Usage:  "Open an interactive worksheet session (default)",
		Action: editAction,
	}
}

// editFlags live on the root so that both 'dpsheet' and 'dpsheet edit' see them.
func editFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output-dir", Usage: "Directory for exports (overrides config)"},
		&cli.StringFlag{Name: "from", Usage: "Start from a previously exported JSON file"},
	}
}

func editAction(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, closeLog, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.New()
	if from := cmd.String("from"); from != "" {
		ws, err := readExport(from)
		if err != nil {
			return err
		}
		st.Replace(ws)
		logger.Info("loaded export", "path", from, "worksheets", st.Len())
	}

	outputDir := cfg.OutputDir
	if d := cmd.String("output-dir"); d != "" {
		outputDir = d
	}

	s := &session.Session{
		Store:         st,
		Clipboard:     export.SystemClipboard{},
		Indicator:     export.NewIndicator(),
		OutputDir:     outputDir,
		DefaultFormat: cfg.DefaultFormat,
		Logger:        logger,
		Out:           os.Stdout,
	}
	return s.Run(ctx)
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Re-render an exported JSON file as json, md or xlsx",
		ArgsUsage: "<export.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "md", Usage: "Output format: json, md, xlsx"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file (default: stdout; xlsx goes to the output dir)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.Args().First()
			if input == "" {
				return fmt.Errorf("export file argument is required")
			}
			cfg, logger, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			ws, err := readExport(input)
			if err != nil {
				return err
			}
			st := store.New()
			st.Replace(ws)

			a, err := export.Render(cmd.String("format"), st.Worksheets())
			if err != nil {
				return err
			}

			out := cmd.String("output")
			if out == "" && a.MIMEType != export.MIMEXLSX {
				_, err := os.Stdout.Write(a.Content)
				return err
			}
			dir := cfg.OutputDir
			if out != "" {
				dir, a.Filename = filepath.Dir(out), filepath.Base(out)
			}
			path, err := export.Download(dir, a)
			if err != nil {
				return err
			}
			logger.Info("converted", "input", input, "output", path, "worksheets", st.Len())
			ux.Saved(os.Stdout, path)
			return nil
		},
	}
}

func guideCmd() *cli.Command {
	return &cli.Command{
		Name:      "guide",
		Usage:     "Show the How to Solve reference",
		ArgsUsage: "[chapter|all]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			switch name {
			case "":
				ux.RenderChapters(os.Stdout)
				fmt.Println("Run 'dpsheet guide <chapter>' to read a chapter, or 'dpsheet guide all'.")
				return nil
			case "all":
				fmt.Print(docs.Full())
				return nil
			}
			c, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(c.Content)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default config file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			return scaffold.Init(os.Stdout, path)
		},
	}
}

func configPath(cmd *cli.Command) (string, error) {
	if p := cmd.String("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// setup loads config and builds the logger shared by every command.
func setup(cmd *cli.Command) (*config.Config, *slog.Logger, func() error, error) {
	cfg := config.Default()
	if path, err := configPath(cmd); err == nil {
		if cfg, err = config.Load(path); err != nil {
			return nil, nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if lvl := cmd.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := config.Validate(cfg); err != nil {
			return nil, nil, nil, err
		}
	}
	logger, closeLog, err := logs.New(logs.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, closeLog, nil
}

// readExport loads a JSON export, refusing files that are not JSON.
func readExport(path string) ([]worksheet.Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if mt := mimetype.Detect(data); !mt.Is(export.MIMEJSON) {
		return nil, fmt.Errorf("%s is %s, not a JSON export", path, mt.String())
	}
	ws, err := export.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ws, nil
}
