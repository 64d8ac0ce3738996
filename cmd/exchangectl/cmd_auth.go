package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginName     string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as an admin",
	Long: `Exchanges admin credentials for a session token and stores it in the
session file. The password is read from stdin when --password is omitted.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := clearSession(sessionFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the admin owning the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(sessionFile)
		if err != nil {
			return err
		}
		admin, err := newClient().Me(cmd.Context(), s)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), session valid until %s\n", admin.Name, admin.AdminID, s.ExpiresAt.Local().Format(time.RFC1123))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "Admin name")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Admin password")
	_ = loginCmd.MarkFlagRequired("name")
}

func runLogin(cmd *cobra.Command, args []string) error {
	password := loginPassword
	if password == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	s, err := newClient().Login(cmd.Context(), loginName, password)
	if err != nil {
		return err
	}
	if err := saveSession(sessionFile, s); err != nil {
		return err
	}
	logger.Debug("Session stored", "path", sessionFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s.\n", s.AdminName)
	return nil
}
