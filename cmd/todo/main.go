package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Root options (apply to every subcommand). Empty values keep the config file setting.
type options struct {
	Config     string `short:"c" long:"config" env:"TODO_CONFIG" description:"config file (toml)"`
	DB         string `long:"db" env:"TODO_DB" description:"database file"`
	Driver     string `long:"driver" env:"TODO_DRIVER" choice:"sqlite" choice:"sqlite3" description:"sqlite driver"`
	DeleteMode string `long:"delete-mode" env:"TODO_DELETE_MODE" choice:"id" choice:"text" description:"delete rows by id or by text"`
	Theme      string `long:"theme" env:"TODO_THEME" choice:"classic" choice:"neon" choice:"mono" description:"color theme"`

	Log struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"enable logging"`
		File       string `long:"file" env:"FILE" description:"log file, stderr if empty"`
		MaxSize    int    `long:"max-size" env:"MAX_SIZE" description:"max log file size in MB"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" description:"rotated files to keep"`
	} `group:"log" namespace:"log" env-namespace:"TODO_LOG"`

	Dbg bool `long:"dbg" env:"TODO_DEBUG" description:"debug mode"`
}

var opts options

var revision = "unknown"

func main() {
	os.Exit(run())
}

func run() int {
	p := flags.NewParser(&opts, flags.Default|flags.PassAfterNonOption)
	p.Usage = "[options] [ui|add|ls|rm|help] [args]"
	args, err := p.Parse()
	if err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := makeConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if lj, ok := setupLogs(cfg.Log).(*lumberjack.Logger); ok {
		defer lj.Close()
	}
	log.Printf("[DEBUG] todo %s, db %s", revision, cfg.DBPath)
	ui.SetTheme(cfg.Theme)

	code := cli.Run(args, cli.Options{Config: cfg})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

// makeConfig layers command-line options over the config file.
func makeConfig(o options) (config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return cfg, err
	}
	if o.DB != "" {
		cfg.DBPath = o.DB
	}
	if o.Driver != "" {
		cfg.Driver = o.Driver
	}
	if o.DeleteMode != "" {
		cfg.DeleteMode = o.DeleteMode
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.Log.Enabled {
		cfg.Log.Enabled = true
	}
	if o.Log.File != "" {
		cfg.Log.File = o.Log.File
	}
	if o.Log.MaxSize > 0 {
		cfg.Log.MaxSize = o.Log.MaxSize
	}
	if o.Log.MaxBackups > 0 {
		cfg.Log.MaxBackups = o.Log.MaxBackups
	}
	if o.Dbg {
		cfg.Log.Enabled, cfg.Log.Debug = true, true
	}
	return cfg, cfg.Validate()
}

// setupLogs points lgr at the configured destination and returns it.
// The screen owns the terminal, so logs go to a file or nowhere.
func setupLogs(lc config.Log) io.Writer {
	if !lc.Enabled {
		log.Setup(log.Out(io.Discard), log.Err(io.Discard))
		return io.Discard
	}

	var out io.Writer = os.Stderr
	if lc.File != "" {
		out = &lumberjack.Logger{
			Filename:   lc.File,
			MaxSize:    lc.MaxSize,
			MaxBackups: lc.MaxBackups,
			MaxAge:     lc.MaxAge,
			Compress:   lc.Compress,
		}
	}

	if lc.Debug {
		log.Setup(log.Out(out), log.Err(out), log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return out
	}
	log.Setup(log.Out(out), log.Err(out), log.Msec)
	return out
}
