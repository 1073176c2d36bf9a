package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ifrof/IFROF-WP/pkg/config"
	"github.com/ifrof/IFROF-WP/pkg/logging"
	"github.com/ifrof/IFROF-WP/pkg/storage"
)

// globals is shared by every subcommand after the root pre-run.
type globals struct {
	envFile  string
	logLevel string
	logFile  string

	env       *config.Env
	logger    *slog.Logger
	logCloser io.Closer
}

func newRootCmd(g *globals) *cobra.Command {
	root := &cobra.Command{
		Use:           "blogseed",
		Short:         "blogseed converts article datasets into blog_posts INSERT migrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.envFile, "env-file", ".env", "dotenv file to load if present")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (default from BLOGSEED_LOG_LEVEL)")
	flags.StringVar(&g.logFile, "log-file", "", "also write JSON logs to this rotating file")

	root.AddCommand(
		newGenerateCmd(g),
		newApplyCmd(g),
		newProbeCmd(g),
		newVersionCmd(),
	)
	return root
}

func (g *globals) init(cmd *cobra.Command) error {
	env, err := config.LoadEnv(g.envFile)
	if err != nil {
		return err
	}
	g.env = env

	opts := logging.Options{Level: env.LogLevel, File: env.LogFile}
	if g.logLevel != "" {
		opts.Level = g.logLevel
	}
	if g.logFile != "" {
		opts.File = g.logFile
	}

	logger, closer, err := logging.Setup(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	g.logger = logger
	g.logCloser = closer
	slog.SetDefault(logger)
	return nil
}

// close releases the log file opened by init. cobra skips post-run hooks
// when a command fails, so run calls this once Execute returns.
func (g *globals) close() error {
	if g.logCloser == nil {
		return nil
	}
	err := g.logCloser.Close()
	g.logCloser = nil
	return err
}

func (g *globals) store(cmd *cobra.Command) *storage.Store {
	s := storage.NewStore(storage.S3Options{
		Region:          g.env.AWSRegion,
		Endpoint:        g.env.S3Endpoint,
		AccessKeyID:     g.env.S3AccessKey,
		SecretAccessKey: g.env.S3SecretKey,
	})
	s.Stdin = cmd.InOrStdin()
	s.Stdout = cmd.OutOrStdout()
	return s
}

// jobFlags selects and adjusts the job for generate and apply.
type jobFlags struct {
	configPath string
	preset     string
	output     string
	comment    string
}

func (f *jobFlags) register(cmd *cobra.Command, outputHelp string) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML job file")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", fmt.Sprintf("built-in job %v (default final when no --config)", config.PresetNames()))
	cmd.Flags().StringVarP(&f.output, "output", "o", "", outputHelp)
	cmd.Flags().StringVar(&f.comment, "comment", "", "override the migration comment line")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
}

func (f *jobFlags) load(cmd *cobra.Command, env *config.Env) (*config.Job, error) {
	var job *config.Job
	var err error
	if f.configPath != "" {
		job, err = config.Load(f.configPath)
	} else {
		name := f.preset
		if name == "" {
			name = "final"
		}
		job, err = config.Preset(name)
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		job.Output = f.output
	}
	if cmd.Flags().Changed("comment") {
		job.Comment = f.comment
	}
	if err := env.Apply(job); err != nil {
		return nil, err
	}
	return job, nil
}
