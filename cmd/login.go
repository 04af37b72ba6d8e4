// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"

	"snapcli/cli/internal/auth"
	snaperr "snapcli/cli/internal/errors"
	"snapcli/cli/internal/keychain"
	"snapcli/cli/internal/snapd"
	"snapcli/cli/internal/terminal"

	"github.com/spf13/cobra"
)

var (
	loginOTP  string
	loginSave bool
)

// loginCmd exchanges store credentials for a macaroon.
var loginCmd = &cobra.Command{
	Use:   "login [EMAIL]",
	Short: "Log in to the snap store through snapd",
	Long: `The login command sends your store email and password to snapd, which
answers with a macaroon. The macaroon is printed as the account it belongs to
and, with --save, stored in the OS keychain for later commands.

snapd only accepts logins from root, and the macaroon it returns is not bound
to a session, so a later 'snapcli logout' with it is expected to fail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := ""
		if len(args) == 1 {
			email = args[0]
		} else {
			prompt := "Email address: "
			line, err := terminal.ReadLine(prompt)
			if err != nil {
				return err
			}
			terminal.ClearPreviousLines(len(prompt) + len(line))
			email = line
		}
		if email == "" {
			return errors.New("email is required")
		}
		password, err := terminal.ReadPassword(fmt.Sprintf("Password of %q: ", email))
		if err != nil {
			return err
		}

		req := snapd.LoginRequest{Email: email, Password: password, OTP: loginOTP}
		cred, err := newClient().Login(cmd.Context(), req)
		if err != nil {
			return report("logging in", err)
		}
		logger.Debug("login succeeded", logger.Args("email", cred.Email))

		if loginSave {
			if err := saveToKeychain(cred); err != nil {
				return report("saving the credential", err)
			}
			fmt.Printf("✅ Logged in as %s; credential saved to the keychain\n", cred.Email)
			return nil
		}
		fmt.Printf("✅ Logged in as %s\n", cred.Email)
		return nil
	},
}

// logoutCmd asks snapd to forget the configured credential.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the snap store through snapd",
	Long: `The logout command asks snapd to end the session of the configured
credential. When the credential came from the keychain the stored copy is
removed as well, whatever snapd answers. A credential given through
SNAPCLI_MACAROON leaves the keychain untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := newClient().Logout(cmd.Context(), credentials())

		if keychainInUse() {
			if km, kerr := keychain.GetManager(); kerr == nil {
				_ = auth.Clear(km)
			}
		}
		if err != nil {
			return report("logging out", err)
		}
		if ok {
			fmt.Println("✅ Logged out")
		}
		return nil
	},
}

// whoamiCmd shows which account the configured credential belongs to.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account of the configured credential",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cred, err := credentials()(cmd.Context())
		if err != nil || !cred.Valid() {
			if err != nil && !snaperr.IsCredential(err) {
				return report("reading the credential", err)
			}
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'snapcli login' or 'snapcli credential import' to get started.")
			return nil
		}
		who := cred.Email
		if who == "" {
			who = "(unknown email)"
		}
		fmt.Printf("👤 Current user: %s\n", who)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	loginCmd.Flags().StringVar(&loginOTP, "otp", "", "One-time passcode for two-factor authentication")
	loginCmd.Flags().BoolVar(&loginSave, "save", false, "Store the returned credential in the OS keychain")
}

func saveToKeychain(cred auth.Credential) error {
	km, err := keychain.GetManager()
	if err != nil {
		return snaperr.Wrap(snaperr.CredentialRead, "open keychain", err)
	}
	return auth.Save(km, cred)
}
