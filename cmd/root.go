package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/franv314/task-maker-go/internal/config"
	"github.com/franv314/task-maker-go/internal/log"
	"github.com/franv314/task-maker-go/internal/ui"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "task-maker-ui [events-file]",
	Short:   "Render a task-maker evaluation event stream",
	Long: `Reads a stream of task-maker evaluation events (one JSON envelope per
line, as produced by the json front-end) from a file or stdin and renders
it through the selected front-end.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runReplay,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/task-maker/config.yaml)")
	rootCmd.Flags().StringP("ui", "u", "",
		"front-end to use: print, raw, curses, json, silent")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging to the log file")

	_ = viper.BindPFlag("ui", rootCmd.Flags().Lookup("ui"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui", defaults.UI)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetEnvPrefix("task_maker")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .task-maker/config.yaml (current directory)
		// 2. ~/.config/task-maker/config.yaml (user config)
		if _, err := os.Stat(".task-maker/config.yaml"); err == nil {
			viper.SetConfigFile(".task-maker/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "task-maker"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(".task-maker", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If the write fails, continue with defaults.
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runReplay(cmd *cobra.Command, args []string) error {
	// The selector must fail before any event flows.
	uiType, err := cfg.UIType()
	if err != nil {
		return err
	}

	if cfg.Debug {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
	} else {
		log.SetEnabled(false)
	}
	if os.Getenv("TASK_MAKER_DEBUG") != "" {
		log.SetEnabled(true)
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening events file: %w", err)
		}
		defer f.Close()
		in = f
	}

	front := newFrontEnd(uiType, cmd.OutOrStdout())
	sender, receiver := ui.NewChannel()

	go produce(sender, bufio.NewScanner(in))
	ui.Run(receiver, front)
	return nil
}

// produce decodes one envelope per line and feeds the channel. Malformed
// lines become warnings; the stream must keep flowing. A Stop is sent at
// the end so the dispatch loop terminates even when the producer's
// stream had none.
func produce(sender ui.Sender, scanner *bufio.Scanner) {
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		m, err := ui.UnmarshalMessage(line)
		if err != nil {
			log.Warn(log.CatProto, "skipping malformed event", "err", err)
			if sendErr := sender.Send(ui.Warning{Message: fmt.Sprintf("malformed event: %v", err)}); sendErr != nil {
				return
			}
			continue
		}
		if err := sender.Send(m); err != nil {
			// The consumer shut down deliberately; stop producing.
			log.Debug(log.CatChannel, "consumer gone, stopping producer")
			return
		}
	}
	if err := scanner.Err(); err != nil {
		_ = sender.Send(ui.Warning{Message: fmt.Sprintf("reading events: %v", err)})
	}
	_ = sender.Send(ui.Stop{})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
