// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"

	"snapcli/cli/internal/auth"
	"snapcli/cli/internal/keychain"

	"github.com/spf13/cobra"
)

var importFrom string

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the snap credential stored in the OS keychain",
	Long: `The credential commands copy the snap auth file into the OS keychain and
manage the stored copy. Set credential_source to "keychain" in the config file,
or pass --credential-source keychain, to use it.`,
}

var credentialImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the snap auth file into the keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := importFrom
		if path == "" {
			path = cfg.AuthFile
		}
		cred, err := auth.ReadAuth(path)
		if err != nil {
			return report("reading the auth file", err)
		}
		if err := saveToKeychain(cred); err != nil {
			return report("saving the credential", err)
		}
		fmt.Printf("✅ Credential for %s imported into the keychain\n", displayEmail(cred))
		return nil
	},
}

var credentialShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored credential with the macaroon masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		cred, err := auth.Load(km)
		if err != nil {
			if errors.Is(err, keychain.ErrNotFound) {
				fmt.Println("No credential stored in the keychain.")
				return nil
			}
			return report("reading the keychain", err)
		}
		fmt.Printf("email:    %s\n", displayEmail(cred))
		fmt.Printf("macaroon: %s\n", maskMacaroon(cred.Macaroon))
		return nil
	},
}

var credentialClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored credential from the keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := auth.Clear(km); err != nil {
			return err
		}
		fmt.Println("✅ Stored credential removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(credentialCmd)
	credentialCmd.AddCommand(credentialImportCmd, credentialShowCmd, credentialClearCmd)
	credentialImportCmd.Flags().StringVar(&importFrom, "from", "", "auth file to import (default: the configured auth file)")
}

func displayEmail(c auth.Credential) string {
	if c.Email == "" {
		return "(unknown email)"
	}
	return c.Email
}

// maskMacaroon keeps the first and last four characters.
func maskMacaroon(m string) string {
	if len(m) <= 12 {
		return "****"
	}
	return m[:4] + "…" + m[len(m)-4:]
}
