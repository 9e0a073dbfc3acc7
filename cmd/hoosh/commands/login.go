package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/hooshpro/hoosh-client-go/pkg/hoosh"
	"github.com/hooshpro/hoosh-client-go/pkg/hooshclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Hoosh Pro CMS",
		Long:  "Authenticate against the CMS and persist the session for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := viper.GetString("api")
			if endpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				endpoint, _ = reader.ReadString('\n')
				endpoint = strings.TrimSpace(endpoint)
			}

			if endpoint == "" {
				return ErrNoEndpointConfigured
			}

			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			client, err := hooshclient.New(newClientConfig(endpoint))
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			session, err := client.Auth().Login(context.Background(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set("api", endpoint)
			viper.Set("session_token", session.Token)
			viper.Set("csrf_token", session.CSRFToken)

			if err := saveConfig(); err != nil {
				return err
			}

			if session.User != nil {
				fmt.Printf("Logged in as %s\n", session.User.Email)
			} else {
				fmt.Println("Logged in")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "admin account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the CMS",
		Long:  "Invalidate the current session and remove it from the config",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			// Best effort: the session may already be expired server-side;
			// the local credentials are dropped either way.
			if err := client.Auth().Logout(context.Background()); err != nil && !hoosh.IsUnauthorized(err) {
				return fmt.Errorf("logout failed: %w", err)
			}

			viper.Set("session_token", "")
			viper.Set("csrf_token", "")

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
