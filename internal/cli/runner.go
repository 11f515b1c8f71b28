package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options carry the resolved config and the streams subcommands talk to.
type Options struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand starts the interactive screen.
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "ui":
		return doUI(opt)

	case "ls":
		return doList(opt)

	case "add":
		urgent := false
		if len(a) > 0 && (a[0] == "-u" || a[0] == "--urgent") {
			urgent, a = true, a[1:]
		}
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: todo add [-u|--urgent] <text...>")
			return 2
		}
		return doAdd(opt, strings.Join(a, " "), urgent)

	case "rm":
		yes := false
		if len(a) > 0 && (a[0] == "-y" || a[0] == "--yes") {
			yes, a = true, a[1:]
		}
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: todo rm [-y|--yes] <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(opt.Err, "rm: not a number: "+a[0])
			return 2
		}
		return doRemove(opt, n, yes)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny to-do list

Usage:
  todo [options] [subcommand] [args]

Subcommands:
  ui                      Interactive screen (default)
  add [-u] <text...>      Add an item, -u marks it urgent
  ls                      List items
  rm [-y] <index>         Remove item at 1-based index, -y skips the question

Screen keys:
  enter add, tab toggle urgent, ctrl+d delete selected, esc quit

Examples:
  todo add "Buy milk"
  todo add -u Call boss
  todo ls
  todo rm 2
`)
}

// -------------- subcommand impls ----------------

// open acquires the store for the lifetime of one subcommand.
func open(opt Options) (*app.App, bool) {
	a, err := app.Open(opt.Config)
	if err != nil {
		ui.Fail(opt.Err, "open: "+err.Error())
		return nil, false
	}
	return a, true
}

func closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		log.Printf("[WARN] %v", err)
	}
}

func doUI(opt Options) int {
	a, ok := open(opt)
	if !ok {
		return 1
	}
	defer closeApp(a)

	if err := tui.Run(a); err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	a, ok := open(opt)
	if !ok {
		return 1
	}
	defer closeApp(a)

	lines := a.Lines()
	out := []string{ui.Header(lines), ""}
	out = append(out, ui.NumberedLines(lines)...)
	out = append(out, "", ui.Current().Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(opt.Out, out)
	return 0
}

func doAdd(opt Options, text string, urgent bool) int {
	if strings.TrimSpace(text) == "" {
		ui.Fail(opt.Err, "add: empty text")
		return 2
	}
	a, ok := open(opt)
	if !ok {
		return 1
	}
	defer closeApp(a)

	if err := a.Add(text, urgent); err != nil {
		ui.Fail(opt.Err, "save: "+err.Error())
		return 1
	}
	ui.OK(opt.Out, "added")
	return 0
}

func doRemove(opt Options, userIndex int, yes bool) int {
	a, ok := open(opt)
	if !ok {
		return 1
	}
	defer closeApp(a)

	have := len(a.Lines())
	if userIndex < 1 || userIndex > have {
		ui.Fail(opt.Err, fmt.Sprintf("index out of range: have %d, got %d", have, userIndex))
		fmt.Fprintln(opt.Err, ui.Current().Muted.Render("Hint: run `todo ls` to see valid indexes"))
		return 2
	}

	if !yes {
		a.OnPrompt = func(pos int) {
			fmt.Fprintf(opt.Out, ui.Text.ConfirmQuestion, pos+1)
		}
	}
	if err := a.LongPress(userIndex - 1); err != nil {
		ui.Fail(opt.Err, "rm: "+err.Error())
		return 1
	}

	if !yes && !confirmed(opt.In) {
		if err := a.Decline(); err != nil {
			ui.Fail(opt.Err, "rm: "+err.Error())
			return 1
		}
		ui.OK(opt.Out, "kept")
		return 0
	}
	if err := a.Confirm(); err != nil {
		ui.Fail(opt.Err, "delete: "+err.Error())
		return 1
	}
	ui.OK(opt.Out, "removed")
	return 0
}

// confirmed reads one answer line; only y/yes counts.
func confirmed(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
