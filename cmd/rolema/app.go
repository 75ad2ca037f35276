package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/jamesainslie/rolema"
	"github.com/jamesainslie/rolema/dictionary"
	"github.com/jamesainslie/rolema/internal/clip"
	"github.com/jamesainslie/rolema/internal/logging"
	"github.com/jamesainslie/rolema/internal/session"
)

// clipboardCopy is replaced in tests.
var clipboardCopy = clip.Copy

// App is the state shared by every command.
type App struct {
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
	Logger  *slog.Logger
	Encoder *rolema.Encoder
	Dict    *dictionary.Dictionary
	Store   *dictionary.Store
	Session *session.Session
	Copy    func(string) error
}

func newApp(g Globals, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	level, err := logging.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(g.LogFormat)
	if err != nil {
		return nil, err
	}
	logger := logging.Init(stderr, level, format)

	app := &App{
		In:     stdin,
		Out:    stdout,
		Err:    stderr,
		Logger: logger,
		Copy:   clipboardCopy,
	}

	opts := []rolema.Option{rolema.WithLogger(logger)}
	if g.StopWords {
		opts = append(opts, rolema.WithDefaultStopWords())
	}
	if g.WordCodes {
		opts = append(opts, rolema.WithDefaultWordCodes())
	}
	app.Encoder = rolema.New(opts...)

	app.Dict = app.loadDictionaries(g.Dict)

	if g.Store != "" {
		store, err := dictionary.OpenStore(context.Background(), g.Store)
		if err != nil {
			logger.Warn("community store unavailable, continuing without it", "store", g.Store, "err", err)
		} else {
			app.Store = store
			if err := app.refreshStore(context.Background()); err != nil {
				logger.Warn("community store unreadable, continuing without it", "store", g.Store, "err", err)
			}
		}
	}

	app.Session = session.New(
		session.WithVersion(version),
		session.WithDictionarySizeFunc(func() int { return app.Dict.Len() }),
	)
	return app, nil
}

// loadDictionaries loads each file independently so one bad file does not
// discard the others.
func (a *App) loadDictionaries(paths []string) *dictionary.Dictionary {
	var loaded []*dictionary.Dictionary
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		d, err := rolema.OpenDictionary(path)
		if err != nil {
			a.Logger.Warn("dictionary unreadable, continuing without it", "path", path, "err", err)
			continue
		}
		a.Logger.Info("dictionary loaded", "path", path, "entries", d.Len(), "digest", d.Digest())
		loaded = append(loaded, d)
	}
	if len(loaded) == 0 {
		return nil
	}
	return loaded[0].Merge(loaded[1:]...)
}

// refreshStore merges the current store snapshot over the file dictionaries.
func (a *App) refreshStore(ctx context.Context) error {
	snap, err := a.Store.Snapshot(ctx)
	if err != nil {
		return err
	}
	a.Dict = a.Dict.Merge(snap)
	return nil
}

// dictionary returns the loaded dictionary as a rolema.Dictionary, keeping
// a nil snapshot a nil interface.
func (a *App) dictionary() rolema.Dictionary {
	if a.Dict == nil {
		return nil
	}
	return a.Dict
}

func (a *App) convert(text string) rolema.Conversion {
	conv := a.Encoder.Convert(text, a.dictionary())
	a.Session.Record(conv)
	return conv
}

// copyCode puts code on the clipboard; failures are reported, never fatal.
func (a *App) copyCode(code string) bool {
	if err := a.Copy(code); err != nil {
		a.Logger.Warn("clipboard copy failed", "err", err)
		return false
	}
	return true
}

// Close releases the store, if any.
func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Warn("closing store", "err", err)
		}
	}
}

// limitGroups keeps at most max groups of code; max <= 0 keeps all.
func limitGroups(code string, max int) string {
	if max <= 0 || code == "" {
		return code
	}
	groups := strings.Split(code, rolema.Separator)
	if len(groups) <= max {
		return code
	}
	return strings.Join(groups[:max], rolema.Separator)
}
