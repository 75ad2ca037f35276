package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const prompt = "ro-le-ma> "

const replHelp = `Commands:
  convert <text>   convert text (plain text works too)
  batch            convert lines until an empty line
  stats            show session statistics
  export <file>    save the session history as CSV
  clear            clear the session history
  help             show this help
  exit, quit       leave
`

// interactive runs the read-convert-print loop until exit or EOF.
func (a *App) interactive(copyCodes bool, maxGroups int) error {
	fmt.Fprintln(a.Out, "RO-LE-MA interactive mode. Type 'help' for commands, 'exit' to quit.")

	scanner := bufio.NewScanner(a.In)
	for {
		fmt.Fprint(a.Out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(a.Out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Bare keywords are commands; "Clear Lake" is a name to convert
		switch strings.ToLower(line) {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprint(a.Out, replHelp)
			continue
		case "stats":
			a.printStats(a.Out)
			continue
		case "clear":
			a.Session.Clear()
			fmt.Fprintln(a.Out, "History cleared.")
			continue
		case "batch":
			fmt.Fprintln(a.Out, "Enter one name per line, empty line to finish.")
			a.replBatch(scanner)
			continue
		case "convert":
			fmt.Fprintln(a.Out, "usage: convert <text>")
			continue
		case "export":
			fmt.Fprintln(a.Out, "usage: export <file>")
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(cmd) {
		case "convert":
			a.replConvert(rest, copyCodes, maxGroups)
		case "export":
			n, err := a.Session.ExportFile(rest)
			if err != nil {
				a.Logger.Warn("export failed", "path", rest, "err", err)
				continue
			}
			fmt.Fprintf(a.Out, "Saved %d rows to %s\n", n, rest)
		default:
			a.replConvert(line, copyCodes, maxGroups)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (a *App) replConvert(text string, copyCodes bool, maxGroups int) {
	conv := a.convert(text)
	if conv.Code == "" {
		fmt.Fprintln(a.Out, "(no letters or digits)")
		return
	}
	code := limitGroups(conv.Code, maxGroups)
	fmt.Fprintf(a.Out, "%s -> %s\n", text, code)
	if copyCodes && a.copyCode(code) {
		fmt.Fprintln(a.Out, "(copied)")
	}
}

func (a *App) replBatch(scanner *bufio.Scanner) {
	for {
		fmt.Fprint(a.Out, "... ")
		if !scanner.Scan() {
			return
		}
		item := strings.TrimSpace(scanner.Text())
		if item == "" {
			return
		}
		conv := a.convert(item)
		fmt.Fprintf(a.Out, "%-30s -> %s\n", item, conv.Code)
	}
}

func (a *App) printStats(w io.Writer) {
	st := a.Session.Stats()
	fmt.Fprintf(w, "version:            %s\n", st.Version)
	fmt.Fprintf(w, "session:            %s\n", st.SessionID)
	fmt.Fprintf(w, "conversions:        %d\n", st.TotalConversions)
	fmt.Fprintf(w, "unique codes:       %d\n", st.UniqueCodes)
	fmt.Fprintf(w, "dictionary entries: %d\n", st.DictionaryEntries)
	fmt.Fprintf(w, "dictionary hits:    %d\n", st.DictionaryHits)
}
