package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const generatedSecretBytes = 32

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Generate values for OWNER_PASSWORD_HASH and JWT_SECRET",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "hash-password [password]",
			Short: "Print the bcrypt hash of a password (read from stdin when omitted)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var password string
				if len(args) == 1 {
					password = args[0]
				} else {
					read, err := readPassword(cmd)
					if err != nil {
						return err
					}
					password = read
				}
				if password == "" {
					return errors.New("password must not be empty")
				}
				hash, err := utils.HashOwnerPassword(password)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s\n", hash)
				return nil
			},
		},
		&cobra.Command{
			Use:   "secret",
			Short: "Print a random JWT signing secret",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				secret, err := utils.GenerateJWTSecret(generatedSecretBytes)
				if err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "%s\n", secret)
				return nil
			},
		},
	)
	return cmd
}

// readPassword reads one line from stdin. When stdin is a terminal the
// password is read without echo.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		printf(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		printf(cmd.ErrOrStderr(), "\n")
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return readLine(in)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("no password given")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
