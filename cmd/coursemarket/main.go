// Package main runs the coursemarket command.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/omkumar23112003/course-selling-app/internal/cmd/coursemarket"
	entrypoint "github.com/omkumar23112003/course-selling-app/internal/platform/cmd"
	"github.com/omkumar23112003/course-selling-app/internal/platform/config"
)

func main() {
	log.SetPrefix("[COURSEMARKET] ")
	flag.Usage = func() {
		coursemarket.Usage(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "\nFlags:")
		flag.PrintDefaults()
	}
	cfg, err := coursemarket.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCourseMarket, func(ctx context.Context) error {
		return coursemarket.Run(ctx, cfg, os.Stdout, os.Stderr)
	})
	if err != nil {
		cancel()
		stop()
		config.ExitCodef(coursemarket.ExitCode(err), "Error: %s", coursemarket.Describe(err, cfg.Locale))
	}
}
