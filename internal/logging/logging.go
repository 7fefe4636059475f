package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"elysium-casino/internal/config"
)

type writerBox struct{ w io.Writer }

var activeWriter atomic.Value

// Writer returns the sink installed by Init so other log producers can
// share it. Defaults to stdout before Init runs.
func Writer() io.Writer {
	if b, ok := activeWriter.Load().(writerBox); ok {
		return b.w
	}
	return os.Stdout
}

// Init installs the global logger from config. When cfg.File is set the
// output goes to a size-capped file instead of stdout; the returned
// closer flushes it and is a no-op otherwise.
func Init(cfg config.LogConfig) (io.Closer, error) {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var output io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		w, err := newCappedFileWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return nil, err
		}
		output = w
		closer = w
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}
	activeWriter.Store(writerBox{w: output})

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	log.Logger = logger
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
