// Package linkcmder provides the link command for connecting external
// accounts with the authenticated user's email address.
package linkcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modhubco/modhub/pkg/auth"
	"github.com/modhubco/modhub/pkg/client"
	"github.com/modhubco/modhub/pkg/config"
	"github.com/modhubco/modhub/pkg/credentials"
)

const linkLongDesc = `Link an external account id with your ModHub account.

Linking requires an access token; obtain one with 'modhub login' and pass it
via --token.

Examples:
  modhub link --email you@example.com --service steam --service-id 76561198000000000 --token <token>
  modhub link --email you@example.com --service itch --service-id 42 --token <token>`

// NewLinkCmd creates the link command.
func NewLinkCmd() *cobra.Command {
	var email, service, token string
	var serviceID uint64

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link an external account",
		Long:  linkLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts auth.LinkOptions
			switch strings.ToLower(strings.TrimSpace(service)) {
			case "steam":
				opts = auth.LinkSteam(email, serviceID)
			case "gog":
				opts = auth.LinkGOG(email, serviceID)
			case "itch", "itchio":
				opts = auth.LinkItchio(email, serviceID)
			default:
				return fmt.Errorf("unsupported service %q; expected steam, gog, or itch", service)
			}

			c, err := newAPIClient(cmd, token)
			if err != nil {
				return err
			}

			if err := auth.NewFlow(c).Link(cmd.Context(), opts); err != nil {
				return fmt.Errorf("linking account: %w", err)
			}

			cmd.Printf("Linked %s account %d to %s.\n", service, serviceID, email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address of the ModHub account")
	cmd.Flags().StringVar(&service, "service", "", "External service (steam, gog, itch)")
	cmd.Flags().Uint64Var(&serviceID, "service-id", 0, "Numeric account id on the external service")
	cmd.Flags().StringVar(&token, "token", "", "ModHub access token")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("service-id")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newAPIClient(cmd *cobra.Command, token string) (*client.Client, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	hostFlag, _ := cmd.Flags().GetString("host")

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if hostFlag != "" {
		cfg.Host = hostFlag
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured; set api_key in config.toml or MODHUB_API_KEY")
	}

	opts := []client.Option{}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}

	return client.New(credentials.WithToken(apiKey, token), opts...), nil
}
