package inspect

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/lmittmann/tint"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"rtspresp/pkg/rtsp"
)

var formatAttrs = slogformatter.NewFormatterHandler(
	slogformatter.FormatByType(func(e *rtsp.StatusError) slog.Value {
		return slog.GroupValue(
			slog.Int("code", e.Code),
			slog.String("message", e.Message),
		)
	}),
	slogformatter.ErrorFormatter("err"),
)

// InitLogger installs the default slog logger. Reports go to stdout, so logs
// are written to stderr.
func InitLogger(config *Config) {
	slog.SetDefault(slog.New(newHandler(config, os.Stderr)))
}

func newHandler(config *Config, w io.Writer) slog.Handler {
	level := config.GetSlogLevel()

	var handler slog.Handler
	switch strings.ToLower(config.Logging.Format) {
	case FormatConsole:
		handler = console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	case FormatDev:
		handler = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339,
		})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:       level,
			AddSource:   true,
			TimeFormat:  time.RFC3339,
			ReplaceAttr: relativeSource(projectRoot()),
		})
	}

	return formatAttrs(handler)
}

// relativeSource trims the project root from source file paths
func relativeSource(root string) func(groups []string, a slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key != slog.SourceKey {
			return a
		}
		source, ok := a.Value.Any().(*slog.Source)
		if !ok || root == "" || !strings.HasPrefix(source.File, root+"/") {
			return a
		}
		source.File = source.File[len(root)+1:]
		return slog.Any(a.Key, source)
	}
}

// projectRoot guesses the module root from this file's location, two levels
// below it (internal/inspect).
func projectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.ToSlash(filepath.Dir(filepath.Dir(filepath.Dir(filename))))
}
