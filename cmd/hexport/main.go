package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/hexport/internal/adapters/export"
	logAdapter "github.com/bft-labs/hexport/internal/adapters/log"
	"github.com/bft-labs/hexport/internal/cliconfig"
)

const longHelp = `Look up blog posts and export users through swappable adapters.

Posts come from an in-memory demo store, a JSON file or MySQL.
Users are exported as CSV, PDF, JSON or YAML files, or posted to an HTTP service.
Configure via $HOME/.hexport/config.toml, a .env file, HEXPORT_* variables or flags.`

var exampleUsage = strings.TrimSpace(`
  hexport post get p1
  hexport post lookup --store file --posts-file posts.json --watch
  hexport user export --name "John Doe" --email john.doe@mail.com --dob 1990-01-01 --format pdf
  hexport user export --users-file users.yaml --format yaml --out ./exports
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries state shared by all commands.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	envFile string

	log zerolog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{
		cfg:    cliconfig.DefaultConfig(),
		log:    cliconfig.Logger(stderr, "info"),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "hexport",
		Short:         "Look up blog posts and export users through swappable adapters",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.hexport/config.toml)")
	pf.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before HEXPORT_* variables are read")

	pf.StringVar(&c.cfg.Store, "store", c.cfg.Store, "post store: memory, file or mysql")
	pf.StringVar(&c.cfg.PostsFile, "posts-file", c.cfg.PostsFile, "JSON file of posts for the file store")
	pf.StringVar(&c.cfg.MySQLDSN, "mysql-dsn", c.cfg.MySQLDSN, "MySQL DSN for the mysql store")

	pf.StringVar(&c.cfg.Format, "format", c.cfg.Format, "export format: "+strings.Join(export.Formats(), ", "))
	pf.StringVar(&c.cfg.OutputDir, "out", c.cfg.OutputDir, "directory receiving exported files")
	pf.StringVar(&c.cfg.ServiceURL, "service-url", c.cfg.ServiceURL, "base service URL for http export")
	pf.StringVar(&c.cfg.AuthKey, "auth-key", c.cfg.AuthKey, "API key for http export")
	pf.DurationVar(&c.cfg.HTTPTimeout, "timeout", c.cfg.HTTPTimeout, "HTTP timeout")

	pf.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn, error or disabled")

	root.AddCommand(newPostCmd(c), newUserCmd(c))
	return root
}

// loadConfig resolves configuration in order: flags, environment, config file, defaults.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.LoadDotEnv(c.envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.log = cliconfig.Logger(c.stderr, c.cfg.LogLevel)
	c.log.Debug().Interface("config", c.cfg.Masked()).Msg("configuration")
	return nil
}

func (c *cli) portLogger() *logAdapter.ZerologAdapter {
	return logAdapter.NewZerologAdapterWithLogger(c.log)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		c.log.Error().Err(err).Msg("hexport")
		stop()
		os.Exit(1)
	}
}
