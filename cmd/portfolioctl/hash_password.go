package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long: `Hash an admin password with bcrypt. The password is read from the first
argument, or from the first line of stdin when no argument is given.

Examples:
  portfolioctl hash-password 'correct horse battery staple'
  echo -n "$PASSWORD" | portfolioctl hash-password`,
	Args: cobra.MaximumNArgs(1),
	// No config or database needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
	hashPasswordCmd.Flags().Int("cost", bcrypt.DefaultCost, "bcrypt cost")
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	cost, _ := cmd.Flags().GetInt("cost")

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(hash))
	return nil
}
