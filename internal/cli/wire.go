package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/asimov-account/internal/adapter"
	"github.com/MKhiriev/asimov-account/internal/config"
	"github.com/MKhiriev/asimov-account/internal/console"
	"github.com/MKhiriev/asimov-account/internal/crypto"
	"github.com/MKhiriev/asimov-account/internal/logger"
	"github.com/MKhiriev/asimov-account/internal/service"
	"github.com/MKhiriev/asimov-account/internal/store"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const loggerRole = "asimov-account"

// wire resolves the configuration from the parsed flags and builds the
// services the subcommands run on.
func (a *app) wire(cmd *cobra.Command) error {
	cfg, err := config.GetCLIConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	a.printer = console.NewPrinter(a.stdout, a.stderr, cfg.App.Verbosity)
	a.logger = logger.NewCLILogger(loggerRole, a.stderr, logger.Options{
		Debug:     cfg.App.Debug,
		Verbosity: cfg.App.Verbosity,
		NoColor:   !isTerminal(a.stderr),
	})

	networkAdapter, err := adapter.NewNetworkAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	storages := store.NewStorages(cfg.Storage, a.logger)

	a.services = service.NewServices(storages, networkAdapter, crypto.NewKeyService(), a.printer, a.logger)

	cmd.SetContext(a.logger.WithContext(cmd.Context()))
	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("registry_dir", cfg.Storage.RegistryDir).
		Msg("services ready")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
