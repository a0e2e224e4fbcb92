package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"polish-calc-go/polish-go"
)

var (
	dsn        = flag.String("db", "file:polish?mode=memory&cache=shared", "sqlite DSN of the result cache.")
	addr       = flag.String("addr", "localhost:8080", "TCP address to listen to")
	expiry     = flag.Duration("expiry", 5*time.Minute, "How long a cached result lives after its last access")
	cleanEvery = flag.Duration("cleanEvery", time.Minute, "How often expired results are removed")
	logLevel   = flag.String("logLevel", "silent", "Minimum level of calculation logs: verbose, debug, info, warning, error, silent")
)

func main() {
	// Parse command-line flags.
	flag.Parse()
	level, ok := polish_go.ParseLogLevel(*logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *logLevel)
		os.Exit(2)
	}
	coreLogger = polish_go.NewStdLogger(level, log.Default())
	entryExpiry = *expiry

	if err := OpenDb(*dsn); err != nil {
		log.Fatalln(err)
	}
	if err := StartExpiredCleanSchedule(*cleanEvery); err != nil {
		log.Fatalln(err)
	}
	go Serve(*addr)
	// Make a signal channel. Register SIGINT.
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)

	// Wait for the signal.
	<-sigch

	fmt.Println("Interrupted. Exiting.")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(ctx)
}
