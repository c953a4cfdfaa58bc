package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tkdn/berlin-clock/clock"
)

var ErrTimeArgRequired = errors.New("usage: berlin-clock HH:MM:SS")

// stdout は変換結果だけを出すため、ログは stderr に書く。
var logger = &Logger{slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{}))}

type Logger struct {
	logger *slog.Logger
}

func (l *Logger) Error(err error) { l.logger.Error(err.Error()) }

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// run は引数の時刻を変換して w に書き込む。失敗時は何も書かない。
func run(args []string, w io.Writer) error {
	if len(args) != 1 {
		return ErrTimeArgRequired
	}
	display, err := clock.Convert(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, display)
	return err
}
