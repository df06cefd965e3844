package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/providerkeys/internal/output"
	"github.com/agentstation/providerkeys/pkg/errors"
	"github.com/agentstation/providerkeys/pkg/providers"
)

// NewProvidersCommand creates the providers command and its subcommands.
func (a *App) NewProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider", "p"},
		Short:   "List providers and check their API keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(a.newProvidersListCommand())
	cmd.AddCommand(a.newProvidersStatusCommand())
	cmd.AddCommand(a.newProvidersActiveCommand())

	return cmd
}

func (a *App) newProvidersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the providers offered by the agent backend",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.Client().ListProviders(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing providers: %w", err)
			}
			return a.render(list, func(wide bool) output.Data {
				return output.ProvidersTable(list, wide)
			})
		},
	}
}

func (a *App) newProvidersStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status [provider-id...]",
		Short: "Show which provider keys are stored",
		Long: `Show, for every provider, whether each of its required keys is stored.

Pass provider ids to limit the output to those providers.`,
		Example: `  providerkeys providers status
  providerkeys providers status openai anthropic -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.Client().GetSecretsStatus(cmd.Context())
			if err != nil {
				return fmt.Errorf("checking secrets: %w", err)
			}

			status, err = filterStatus(status, args)
			if err != nil {
				return err
			}

			return a.render(status, func(bool) output.Data {
				return output.SecretsTable(status)
			})
		},
	}
}

func (a *App) newProvidersActiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Print the names of providers with at least one key stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := a.Client().GetActiveProviderNames(cmd.Context())

			format := output.DetectFormat(a.flags.Format)
			if !format.IsTable() {
				return output.NewFormatter(format).Format(a.stdout, names)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(a.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// filterStatus keeps only the given provider ids. No ids keeps everything.
func filterStatus(status providers.SecretsStatus, ids []string) (providers.SecretsStatus, error) {
	if len(ids) == 0 {
		return status, nil
	}

	filtered := make(providers.SecretsStatus, len(ids))
	for _, id := range ids {
		resp, ok := status[id]
		if !ok {
			return nil, errors.NewNotFoundError("provider", id)
		}
		filtered[id] = resp
	}
	return filtered, nil
}
