// Command rolema converts names into readable three-letter codes.
//
//	rolema Eiffel Tower        # prints EIF-TOW
//	rolema                     # interactive mode
//	rolema batch names.txt     # one code per line
//	rolema dict add --store community.db "Sydney Opera House" SYD-OPE-HOU
//	rolema convert version     # text that is also a command name; prints VER
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set at build time via -ldflags.
var version = "dev"

// configPath is the optional JSON file holding flag defaults.
var configPath = "~/.config/rolema/config.json"

// Globals are flags shared by every command.
type Globals struct {
	Dict      []string `name:"dict" short:"d" sep:"," env:"ROLEMA_DICT" help:"Community dictionary file (json, csv, pb, sqlite; optionally .xz). Repeatable; later files win."`
	Store     string   `name:"store" env:"ROLEMA_STORE" type:"path" help:"SQLite database of community submissions, consulted after --dict files."`
	StopWords bool     `name:"stop-words" help:"Drop filler words (the, and, of, ...)."`
	WordCodes bool     `name:"word-codes" help:"Use well-known brand abbreviations (KFC, BMW, IPH, ...)."`
	LogLevel  string   `name:"log-level" default:"warn" enum:"debug,info,warn,error" env:"ROLEMA_LOG_LEVEL" help:"Log level (${enum})."`
	LogFormat string   `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})."`
}

// CLI defines the command-line interface for rolema.
type CLI struct {
	Globals `embed:""`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert text to a code; interactive when no text is given"`
	Batch   BatchCmd   `cmd:"" help:"Convert one name per line from a file or stdin"`
	DictCmd DictGroup  `cmd:"" name:"dict" help:"Community dictionary tools"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// exitCode carries kong's exit requests out of run.
type exitCode int

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("rolema"),
		kong.Description("RO-LE-MA: readable three-letter codes for anything (EIF-TOW = Eiffel Tower).\n\n"+
			"Text whose first word is a command name (batch, dict, version, convert) must follow an explicit convert: rolema convert version."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(kong.JSON, configPath),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "rolema: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	app, err := newApp(cli.Globals, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "rolema: %v\n", err)
		return 1
	}
	defer app.Close()

	if err := ctx.Run(app); err != nil {
		fmt.Fprintf(stderr, "rolema: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
