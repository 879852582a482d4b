package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/hexport/internal/app"
	"github.com/bft-labs/hexport/internal/domain"
)

type userFlags struct {
	name      string
	email     string
	dob       string
	usersFile string
}

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Export users",
	}

	var f userFlags
	exp := &cobra.Command{
		Use:   "export",
		Short: "Export users with the configured format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := f.users()
			if err != nil {
				return err
			}
			return c.exportUsers(cmd.Context(), users)
		},
	}
	exp.Flags().StringVar(&f.name, "name", "", "user name")
	exp.Flags().StringVar(&f.email, "email", "", "user email")
	exp.Flags().StringVar(&f.dob, "dob", "", "date of birth (YYYY-MM-DD)")
	exp.Flags().StringVar(&f.usersFile, "users-file", "", "YAML list of users with name, email and date_of_birth")

	cmd.AddCommand(exp)
	return cmd
}

func (f userFlags) users() ([]domain.User, error) {
	if f.usersFile != "" {
		if f.name != "" || f.email != "" || f.dob != "" {
			return nil, errors.New("--users-file cannot be combined with --name, --email or --dob")
		}
		return loadUsers(f.usersFile)
	}
	if f.name == "" {
		return nil, errors.New("nothing to export: set --name or --users-file")
	}
	u, err := userEntry{Name: f.name, Email: f.email, DateOfBirth: f.dob}.toUser()
	if err != nil {
		return nil, err
	}
	return []domain.User{u}, nil
}

func (c *cli) exportUsers(ctx context.Context, users []domain.User) error {
	exporter, err := newUserExporter(c.cfg)
	if err != nil {
		return err
	}
	uc := app.NewExportUser(exporter, app.WithLogger(c.portLogger()))

	for _, u := range users {
		if err := uc.Execute(ctx, u); err != nil {
			return fmt.Errorf("export %q: %w", u.Name, err)
		}
		c.log.Info().Str("name", u.Name).Str("format", c.cfg.Format).Msg("user exported")
	}
	return nil
}

// userEntry is one record of a users file.
type userEntry struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	DateOfBirth string `yaml:"date_of_birth"`
}

func (e userEntry) toUser() (domain.User, error) {
	u := domain.User{Name: e.Name, Email: e.Email}
	if e.DateOfBirth == "" {
		return u, nil
	}
	dob, err := time.Parse(domain.DateLayout, e.DateOfBirth)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %q: parse date of birth: %w", e.Name, err)
	}
	u.DateOfBirth = dob
	return u, nil
}

// loadUsers reads a YAML sequence of userEntry records.
func loadUsers(path string) ([]domain.User, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []userEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	users := make([]domain.User, 0, len(entries))
	for _, e := range entries {
		u, err := e.toUser()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
