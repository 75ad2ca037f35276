package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamesainslie/rolema/dictionary"
)

var errNoStore = errors.New("no community store: pass --store or set ROLEMA_STORE")

// ConvertCmd converts text given on the command line.
type ConvertCmd struct {
	Text      []string `arg:"" optional:"" help:"Text to convert; words are joined with spaces."`
	Copy      bool     `short:"c" help:"Copy the code to the clipboard."`
	MaxGroups int      `name:"max-groups" help:"Show at most this many groups (0 shows all)."`
	Verbose   bool     `short:"v" help:"Also show the compact form and source."`
}

func (c *ConvertCmd) Run(app *App) error {
	if len(c.Text) == 0 {
		return app.interactive(c.Copy, c.MaxGroups)
	}

	conv := app.convert(strings.Join(c.Text, " "))
	if conv.Code == "" {
		app.Logger.Warn("input has no letters or digits", "text", conv.Original)
	}

	code := limitGroups(conv.Code, c.MaxGroups)
	fmt.Fprintln(app.Out, code)
	if c.Verbose {
		fmt.Fprintf(app.Out, "compact: %s\n", strings.ReplaceAll(code, "-", ""))
		if conv.FromDictionary {
			fmt.Fprintln(app.Out, "source:  community dictionary")
		} else {
			fmt.Fprintln(app.Out, "source:  generated")
		}
	}

	if c.Copy {
		app.copyCode(code)
	}
	return nil
}

// BatchCmd converts one name per line.
type BatchCmd struct {
	File   string `arg:"" optional:"" type:"existingfile" help:"File with one name per line (default: stdin)."`
	Export string `short:"o" type:"path" help:"Also write the results to this CSV file."`
	Stats  bool   `help:"Print session statistics to stderr when done."`
}

func (c *BatchCmd) Run(app *App) error {
	in := app.In
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	n, err := app.batch(in)
	if err != nil {
		return err
	}
	app.Logger.Info("batch converted", "items", n)

	if c.Export != "" {
		rows, err := app.Session.ExportFile(c.Export)
		if err != nil {
			return err
		}
		fmt.Fprintf(app.Err, "Saved %d rows to %s\n", rows, c.Export)
	}
	if c.Stats {
		app.printStats(app.Err)
	}
	return nil
}

// batch converts every non-blank line of r and prints "name -> code".
func (a *App) batch(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	var n int
	for scanner.Scan() {
		item := strings.TrimSpace(scanner.Text())
		if item == "" {
			continue
		}
		conv := a.convert(item)
		fmt.Fprintf(a.Out, "%-30s -> %s\n", item, conv.Code)
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("reading batch input: %w", err)
	}
	return n, nil
}

// DictGroup contains community dictionary operations.
type DictGroup struct {
	Lookup  DictLookupCmd  `cmd:"" help:"Show the community code for a name"`
	Decode  DictDecodeCmd  `cmd:"" help:"Show the names registered for a code"`
	List    DictListCmd    `cmd:"" help:"List all community codes"`
	Info    DictInfoCmd    `cmd:"" help:"Show dictionary size and digest"`
	Add     DictAddCmd     `cmd:"" help:"Submit a community code to the store"`
	Remove  DictRemoveCmd  `cmd:"" help:"Remove a community code from the store"`
	Import  DictImportCmd  `cmd:"" help:"Import a dictionary file into the store"`
	Compile DictCompileCmd `cmd:"" help:"Write the merged dictionary to a file (.json, .csv, .pb, optionally .xz)"`
}

// DictLookupCmd prints the code for an exact name.
type DictLookupCmd struct {
	Name []string `arg:"" help:"Name to look up; words are joined with spaces."`
}

func (c *DictLookupCmd) Run(app *App) error {
	name := strings.Join(c.Name, " ")
	code, ok := app.Dict.Lookup(name)
	if !ok {
		return fmt.Errorf("%q is not in the community dictionary (generated code: %s)", name, app.Encoder.Encode(name, nil))
	}
	fmt.Fprintln(app.Out, code)
	return nil
}

// DictDecodeCmd prints the names registered for a code.
type DictDecodeCmd struct {
	Code string `arg:"" help:"Code to decode."`
}

func (c *DictDecodeCmd) Run(app *App) error {
	names := app.Dict.NamesForCode(strings.ToUpper(strings.TrimSpace(c.Code)))
	if len(names) == 0 {
		return fmt.Errorf("no community entry uses %s", c.Code)
	}
	for _, name := range names {
		fmt.Fprintln(app.Out, name)
	}
	return nil
}

// DictListCmd prints every entry.
type DictListCmd struct{}

func (c *DictListCmd) Run(app *App) error {
	for _, e := range app.Dict.Entries() {
		fmt.Fprintf(app.Out, "%-30s %s\n", e.Name, e.Code)
	}
	return nil
}

// DictInfoCmd prints a summary of the loaded dictionary.
type DictInfoCmd struct{}

func (c *DictInfoCmd) Run(app *App) error {
	fmt.Fprintf(app.Out, "entries: %d\n", app.Dict.Len())
	fmt.Fprintf(app.Out, "digest:  %s\n", app.Dict.Digest())
	return nil
}

// DictAddCmd stores a community submission.
type DictAddCmd struct {
	Name string `arg:"" help:"Exact name."`
	Code string `arg:"" help:"Code, e.g. SYD-OPE-HOU."`
}

func (c *DictAddCmd) Run(app *App) error {
	if app.Store == nil {
		return errNoStore
	}
	code := strings.ToUpper(strings.TrimSpace(c.Code))

	// Duplicate codes are allowed but worth flagging
	for _, other := range app.Dict.NamesForCode(code) {
		if other != strings.TrimSpace(c.Name) {
			app.Logger.Warn("code already used by another name", "code", code, "name", other)
		}
	}

	ctx := context.Background()
	if err := app.Store.Add(ctx, c.Name, code); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "%s = %s\n", code, strings.TrimSpace(c.Name))
	return app.refreshStore(ctx)
}

// DictRemoveCmd deletes a community submission.
type DictRemoveCmd struct {
	Name string `arg:"" help:"Exact name."`
}

func (c *DictRemoveCmd) Run(app *App) error {
	if app.Store == nil {
		return errNoStore
	}
	return app.Store.Remove(context.Background(), c.Name)
}

// DictImportCmd copies a dictionary file into the store.
type DictImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Dictionary file to import."`
}

func (c *DictImportCmd) Run(app *App) error {
	if app.Store == nil {
		return errNoStore
	}
	d, err := dictionary.Load(c.File)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err := app.Store.Import(ctx, d); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "imported %d entries\n", d.Len())
	return app.refreshStore(ctx)
}

// DictCompileCmd writes the merged dictionary to a single file.
type DictCompileCmd struct {
	Output string `arg:"" type:"path" help:"Output file; the extension selects the format."`
}

func (c *DictCompileCmd) Run(app *App) error {
	d := app.Dict
	if d == nil {
		d, _ = dictionary.New(nil)
	}
	if err := dictionary.Save(c.Output, d); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "wrote %d entries to %s (digest %s)\n", d.Len(), c.Output, d.Digest())
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	fmt.Fprintf(app.Out, "rolema version %s\n", version)
	return nil
}
