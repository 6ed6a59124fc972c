// Package main runs the storefront preview server and config checks.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	"github.com/hellofanny/faststore"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront section overrides and product grid preview",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (YAML)")

	rootCmd.AddCommand(newServeCmd(), newValidateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront preview server",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "Listen address, overrides http.addr")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check configuration and section overrides without serving",
		RunE:  runValidate,
	}
}

func loadConfig(cmd *cobra.Command) (faststore.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return faststore.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return faststore.DefaultConfig(), nil
	}
	return faststore.LoadConfig(path)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	module, err := faststore.New(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "items per page: %d\n", module.ItemsPerPage())
	var failures []error
	for _, name := range faststore.RecognizedSections() {
		res, err := module.ResolveSection(name.String())
		if err != nil {
			fmt.Fprintf(out, "%-18s error: %v\n", name, err)
			failures = append(failures, err)
			continue
		}
		fmt.Fprintf(out, "%-18s %s\n", name, res.Source)
	}
	if len(failures) > 0 {
		return fmt.Errorf("storefront: %d section(s) failed to resolve: %w", len(failures), goerrors.Join(failures...))
	}
	fmt.Fprintln(out, "configuration ok")
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); strings.TrimSpace(addr) != "" {
		cfg.HTTP.Addr = addr
	}

	module, err := faststore.New(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.OutOrStdout(), "storefront preview listening on %s\n", cfg.HTTP.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
