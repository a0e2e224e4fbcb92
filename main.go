package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"polish-calc-go/polish-go"
)

// / closeAll closes every closer in order, logging failures.
func closeAll(logger polish_go.Logger, closers ...io.Closer) func() {
	return func() {
		for _, closer := range closers {
			if err := closer.Close(); err != nil {
				logger.Warning("closing: %s", err)
			}
		}
	}
}

func TerminateHandler(cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	s := <-quit
	fmt.Println("terminate handler called:", s)
	cleanup()
	os.Exit(130)
}

func real_main() int {
	config := polish_go.NewConfig()
	args := os.Args
	exit_code := polish_go.ReadFlags(&args, config, os.Stderr)
	if exit_code >= 0 {
		return exit_code
	}

	printer := polish_go.NewConsolePrinter()
	logger := polish_go.NewConsoleLogger(config.LogLevel, printer)

	var journal *polish_go.Journal
	if !config.NoJournal {
		var err error
		journal, err = polish_go.OpenJournal()
		if err != nil {
			logger.Warning("session journal disabled: %s", err)
			journal = nil
		} else {
			defer journal.Close()
		}
	}

	var metrics *polish_go.Metrics
	if config.ShowStats {
		metrics = polish_go.NewMetrics()
	}

	// Closed on a signal as well; os.Exit skips the deferred closes.
	var closers []io.Closer
	var in polish_go.LineReader
	if polish_go.IsTerminal(0) {
		liner := polish_go.NewLinerReader(printer)
		defer liner.Close()
		closers = append(closers, liner)
		in = liner
	} else {
		in = polish_go.NewScannerReader(os.Stdin, printer)
	}
	if journal != nil {
		closers = append(closers, journal)
	}
	go TerminateHandler(closeAll(logger, closers...))

	shell := polish_go.NewShell(config, in, printer, logger, journal, metrics)
	shell.Run()
	shell.Finish()
	return 0
}

func main() {
	os.Exit(real_main())
}
