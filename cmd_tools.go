package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"foodexchange-admin/internal/registration"
	"foodexchange-admin/internal/session"

	"github.com/spf13/cobra"
)

var registrationFile string

var validateRegistrationCmd = &cobra.Command{
	Use:   "validate-registration",
	Short: "Check a registration form (JSON) without submitting it",
	Long: `Runs the registration checks against a JSON form and prints the first
failing check's message, or "ok". Exits non-zero when the form is rejected.

Example:
  foodexchange-admin validate-registration --file form.json`,
	RunE: runValidateRegistration,
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Read a password from stdin and print its bcrypt hash",
	Long: `Prints a bcrypt hash suitable for auth.accounts[].password_hash.

Example:
  echo -n 's3cret' | foodexchange-admin hash-password`,
	RunE: runHashPassword,
}

func init() {
	validateRegistrationCmd.Flags().StringVar(&registrationFile, "file", "", "path to the registration form JSON")
	_ = validateRegistrationCmd.MarkFlagRequired("file")
}

func runValidateRegistration(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(registrationFile)
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	var form registration.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	err = registration.Validate(form)
	var verr *registration.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(cmd.OutOrStdout(), verr.Message)
		return errors.New("registration rejected")
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func runHashPassword(cmd *cobra.Command, _ []string) error {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read password: %w", err)
	}
	hash, err := session.HashPassword(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
