// Command byteshift prints the offsets at which a needle occurs in files.
package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/jeschkies/go-byteshift/pkg/search"
)

func main() {
	app := kingpin.New("byteshift", "Find a byte sequence in files.")

	var cfg config
	app.Flag("nul", "Treat haystack and needle as NUL-terminated strings.").BoolVar(&cfg.nul)
	app.Flag("hex", "Decode the needle from hex, e.g. 6e00ff.").BoolVar(&cfg.hex)
	app.Flag("all", "Print every non-overlapping match instead of the first.").BoolVar(&cfg.all)
	mode := app.Flag("mode", "Prefilter used by the scan.").Default(search.ModeAuto.String()).
		Enum(modeNames()...)
	app.Flag("skip", "Skip ahead to the next rare byte after a failed comparison.").
		Default(strconv.FormatBool(search.New().SkipAhead())).BoolVar(&cfg.skipAhead)
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").Enum("debug", "info", "warn", "error")
	app.Arg("needle", "Byte sequence to search for.").Required().StringVar(&cfg.needle)
	app.Arg("file", "Files to search. Reads stdin when none are given.").StringsVar(&cfg.files)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, levelFilter(*logLevel))

	m, err := search.ParseMode(*mode)
	if err != nil {
		level.Error(logger).Log("msg", "invalid mode", "err", err)
		os.Exit(2)
	}
	cfg.mode = m

	matched, err := run(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		level.Error(logger).Log("msg", "search failed", "err", err)
		os.Exit(2)
	}
	if !matched {
		os.Exit(1)
	}
}

func modeNames() []string {
	var names []string
	for _, m := range search.Modes() {
		names = append(names, m.String())
	}
	return names
}

func levelFilter(s string) level.Option {
	switch s {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
