package sqlq

import (
	"log/slog"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/util"

	"github.com/qjebbs/go-sqlq/dialect"
)

type debugger struct {
	debug  bool // debug mode
	name   string
	logger *slog.Logger
}

func (b *debugger) enable(name ...string) {
	b.debug = true
	if len(name) == 0 {
		b.name = "sqlq"
		return
	}
	b.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// logIfDebug logs the built query and args, along with the query
// interpolated in the dialect d.
func (b *debugger) logIfDebug(d dialect.Dialect, query string, args []any) {
	if !b.debug {
		return
	}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{
		slog.String("name", b.name),
		slog.String("query", query),
		slog.Any("args", args),
	}
	interpolated, ok := util.Interpolate(query, args, d.Base())
	if !ok {
		attrs = append(attrs, slog.String("interpolating", interpolated))
	} else {
		attrs = append(attrs, slog.String("interpolated", interpolated))
	}
	logger.Info("sqlq query", attrs...)
}
