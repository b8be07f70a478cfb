// Package logincmder provides the login command for obtaining access tokens.
package logincmder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/modhubco/modhub/pkg/auth"
	"github.com/modhubco/modhub/pkg/client"
	"github.com/modhubco/modhub/pkg/config"
	"github.com/modhubco/modhub/pkg/credentials"
)

const loginLongDesc = `Obtain a ModHub access token.

The email flow sends a security code to your inbox and exchanges it for a
token. The external flows exchange identity material from a third-party
platform (Steam, GOG Galaxy, itch.io, Oculus) for a token directly.

Tokens are printed, never stored. Put the API key in config.toml in the
.modhub/ directory or in MODHUB_API_KEY.

Examples:
  modhub login email you@example.com
  modhub login steam --ticket <encrypted app ticket>
  modhub login galaxy --ticket <encrypted app ticket> --email you@example.com
  modhub login itchio --token <jwt>
  modhub login oculus --nonce n --user-id 42 --auth-token t`

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// NewLoginCmd creates the login command tree.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a ModHub access token",
		Long:  loginLongDesc,
	}

	cmd.AddCommand(newEmailCmd())
	cmd.AddCommand(newSteamCmd())
	cmd.AddCommand(newGalaxyCmd())
	cmd.AddCommand(newItchioCmd())
	cmd.AddCommand(newOculusCmd())

	return cmd
}

// newAPIClient builds a client from the persistent flags and the config file.
func newAPIClient(cmd *cobra.Command) (*client.Client, error) {
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

	return client.New(credentials.New(apiKey), opts...), nil
}

func printToken(cmd *cobra.Command, creds credentials.Credentials) {
	cmd.Println(successStyle.Render("Authenticated."))
	cmd.Println("Access token:", creds.Token.Value)
	if creds.Token.ExpiredAt != 0 {
		cmd.Printf("Expires at: %d (unix)\n", creds.Token.ExpiredAt)
	}
	cmd.Println(warnStyle.Render("The token is not stored; export it before it scrolls away."))
}

func newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email [address]",
		Short: "Authenticate with an emailed security code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient(cmd)
			if err != nil {
				return err
			}

			email := ""
			if len(args) == 1 {
				email = strings.TrimSpace(args[0])
			}
			if email == "" {
				email, err = promptLine(cmd, "Enter email: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				return fmt.Errorf("email cannot be empty")
			}

			if err := auth.NewFlow(c).RequestCode(cmd.Context(), email); err != nil {
				return fmt.Errorf("requesting security code: %w", err)
			}
			cmd.Println("A security code was sent to", email)

			code, err := readSecret(cmd, "Enter security code: ")
			if err != nil {
				return err
			}
			if code == "" {
				return fmt.Errorf("security code cannot be empty")
			}

			// The first flow was spent by RequestCode; the exchange needs
			// a fresh one.
			creds, err := auth.NewFlow(c).SecurityCode(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchanging security code: %w", err)
			}

			printToken(cmd, creds)
			return nil
		},
	}
}

// external runs one external exchange and prints the resulting token.
func external(cmd *cobra.Command, opts auth.ExternalOptions) error {
	c, err := newAPIClient(cmd)
	if err != nil {
		return err
	}

	creds, err := auth.NewFlow(c).External(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("exchanging external credentials: %w", err)
	}

	printToken(cmd, creds)
	return nil
}

func newSteamCmd() *cobra.Command {
	var ticket, email string
	var expiresAt uint64

	cmd := &cobra.Command{
		Use:   "steam",
		Short: "Authenticate with an encrypted Steam app ticket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := auth.NewSteamOptions(ticket)
			if email != "" {
				opts.Email(email)
			}
			if expiresAt != 0 {
				opts.ExpiredAt(expiresAt)
			}
			return external(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "Encrypted app ticket")
	cmd.Flags().StringVar(&email, "email", "", "Email address to link the account with")
	cmd.Flags().Uint64Var(&expiresAt, "expires-at", 0, "Unix timestamp the token should expire at")
	_ = cmd.MarkFlagRequired("ticket")

	return cmd
}

func newGalaxyCmd() *cobra.Command {
	var ticket, email string
	var expiresAt uint64

	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Authenticate with an encrypted GOG Galaxy app ticket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := auth.NewGalaxyOptions(ticket)
			if email != "" {
				opts.Email(email)
			}
			if expiresAt != 0 {
				opts.ExpiredAt(expiresAt)
			}
			return external(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&ticket, "ticket", "", "Encrypted app ticket")
	cmd.Flags().StringVar(&email, "email", "", "Email address to link the account with")
	cmd.Flags().Uint64Var(&expiresAt, "expires-at", 0, "Unix timestamp the token should expire at")
	_ = cmd.MarkFlagRequired("ticket")

	return cmd
}

func newItchioCmd() *cobra.Command {
	var token, email string
	var expiresAt uint64

	cmd := &cobra.Command{
		Use:   "itchio",
		Short: "Authenticate with an itch.io JWT token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := auth.NewItchioOptions(token)
			if email != "" {
				opts.Email(email)
			}
			if expiresAt != 0 {
				opts.ExpiredAt(expiresAt)
			}
			return external(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "itch.io JWT token")
	cmd.Flags().StringVar(&email, "email", "", "Email address to link the account with")
	cmd.Flags().Uint64Var(&expiresAt, "expires-at", 0, "Unix timestamp the token should expire at")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newOculusCmd() *cobra.Command {
	var nonce, authToken, email string
	var userID, expiresAt uint64

	cmd := &cobra.Command{
		Use:   "oculus",
		Short: "Authenticate an Oculus user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := auth.NewOculusOptions(nonce, userID, authToken)
			if email != "" {
				opts.Email(email)
			}
			if expiresAt != 0 {
				opts.ExpiredAt(expiresAt)
			}
			return external(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce from the Oculus SDK")
	cmd.Flags().Uint64Var(&userID, "user-id", 0, "Oculus user id")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "Auth token from the Oculus SDK")
	cmd.Flags().StringVar(&email, "email", "", "Email address to link the account with")
	cmd.Flags().Uint64Var(&expiresAt, "expires-at", 0, "Unix timestamp the token should expire at")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("auth-token")

	return cmd
}
