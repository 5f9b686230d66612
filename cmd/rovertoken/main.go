// Command rovertoken mints an operator token for the protected exploration routes.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-rover/config"
	"github.com/beka-birhanu/vinom-rover/infrastruture/token"
	"github.com/spf13/cobra"
)

var errNoSecret = errors.New("JWT_SECRET is not set")

func newRootCmd(cfg config.Config) *cobra.Command {
	var (
		operator string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:           "rovertoken",
		Short:         "Mint an operator token for the rover API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.JWTSecret == "" {
				return errNoSecret
			}
			tokenizer := token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
			signed, err := tokenizer.Generate(map[string]interface{}{"operator": operator}, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return err
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "operator", "operator name stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func execute(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func main() {
	if err := execute(config.Load(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
