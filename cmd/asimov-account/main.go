package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/asimov-account/internal/cli"
	"github.com/MKhiriev/asimov-account/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	stop()
	os.Exit(code)
}
