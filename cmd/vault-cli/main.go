// Package main implements vault-cli, a command-line client for the
// Obsidian Local REST API aimed at automated agents: every command prints
// exactly one JSON result envelope on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fiddeb/obsidian-local-rest-api/internal/config"
	"github.com/fiddeb/obsidian-local-rest-api/internal/logger"
	"github.com/fiddeb/obsidian-local-rest-api/internal/restapi"
	"github.com/fiddeb/obsidian-local-rest-api/internal/router"
	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

var (
	cfg *config.Config
	log zerolog.Logger
	rt  *router.Router
)

var (
	flagConfig    string
	flagAPIURL    string
	flagVerifyTLS bool
	flagVerbose   bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "vault-cli",
		Short: "Manipulate an Obsidian vault through the Local REST API",
		Long: `vault-cli lets automated agents read and write notes in an Obsidian
vault through the Local REST API plugin. Every command prints a single
JSON envelope on stdout and exits non-zero when the operation failed,
so output stays easy to consume programmatically.

The API key is read from the OBSIDIAN_API_KEY environment variable (or
the config file); the endpoint defaults to https://127.0.0.1:27124 and
can be overridden with OBSIDIAN_API_URL, the config file, or --api-url.`,
		Example:           `vault-cli search "quarterly report" -n 5`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/vault-cli/config.toml)")
	cmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "base URL of the Local REST API")
	cmd.PersistentFlags().BoolVar(&flagVerifyTLS, "verify-tls", false, "verify the endpoint's TLS certificate (off by default; the local endpoint is self-signed)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(
		newSearchCmd(),
		newGetCmd(),
		newListCmd(),
		newCreateCmd(),
		newAppendCmd(),
		newPatchCmd(),
		newDailyCmd(),
		newDeleteCmd(),
		newMCPCmd(),
	)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration and builds the shared client and router.
// Precedence: flags over environment over config file over defaults.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFromFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	cfg.Resolve()

	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if cmd.Flags().Changed("verify-tls") {
		cfg.VerifyTLS = flagVerifyTLS
	}

	if cfg.APIKey == "" {
		emit(types.Failure(config.EnvAPIKey + " environment variable not set"))
	}

	log = logger.New(os.Stderr, flagVerbose)
	client := restapi.New(cfg.APIURL, cfg.APIKey, restapi.Options{
		VerifyTLS: cfg.VerifyTLS,
		Logger:    log,
	})
	rt = router.New(client)
	return nil
}

// emit prints the envelope on stdout and terminates the process with the
// matching exit status: 0 for success envelopes, 1 for failures.
func emit(env types.Envelope) {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode result:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	if !env.OK {
		os.Exit(1)
	}
	os.Exit(0)
}
