package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/spritelint"
	"github.com/bodgit/spritelint/config"
	"github.com/bodgit/spritelint/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context, cfg config.Config) *zap.Logger {
	level := cfg.Logging.Level

	var console io.Writer
	if c.Bool("verbose") {
		level = "debug"
		console = c.App.ErrWriter
	}

	var fileCfg logger.FileConfig
	if path := c.String("log-file"); path != "" {
		fileCfg = logger.DefaultFileConfig(path)
	} else if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}

	return logger.New(level, console, fileCfg)
}

func setup(c *cli.Context) (*spritelint.Validator, config.Config, *zap.Logger, error) {
	cfg, err := config.LoadFrom(c.String("config"))
	if err != nil {
		return nil, cfg, nil, err
	}

	l := newLogger(c, cfg)

	v, err := spritelint.New(cfg.Sheet, l)
	if err != nil {
		return nil, cfg, l, err
	}

	return v, cfg, l, nil
}

func repoRoot(c *cli.Context) (string, error) {
	if root := c.String("repo-root"); root != "" {
		return filepath.Abs(root)
	}
	return spritelint.DefaultRepoRoot()
}

func validate(c *cli.Context) error {
	v, cfg, l, err := setup(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer l.Sync()

	root, err := repoRoot(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	pass, err := v.Run(c.App.Writer, cfg.Files, root, cfg.SpriteRoot(root))
	if err != nil {
		l.Error("validation aborted", zap.Error(err))
		return cli.Exit(err, 1)
	}
	if !pass {
		return cli.Exit("", 1)
	}

	return nil
}

func check(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	v, _, l, err := setup(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer l.Sync()

	pass, err := v.CheckFiles(c.App.Writer, c.Args().Slice())
	if err != nil {
		l.Error("check aborted", zap.Error(err))
		return cli.Exit(err, 1)
	}
	if !pass {
		return cli.Exit("", 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "spritelint"
	app.Usage = "Sprite sheet validation for the asset pipeline"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"SPRITELINT_CONFIG"},
			Usage:   "path to YAML config file",
		},
		&cli.StringFlag{
			Name:    "repo-root",
			EnvVars: []string{"SPRITELINT_REPO_ROOT"},
			Usage:   "repository root, defaults to the parent of the directory holding this program",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "also write logs to this file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log diagnostics to stderr",
		},
	}

	app.Action = validate

	app.Commands = []*cli.Command{
		{
			Name:        "check",
			Usage:       "Validate individual sheets",
			Description: "Runs the sheet rules against each FILE and reports one line per file.",
			ArgsUsage:   "FILE...",
			Action:      check,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
