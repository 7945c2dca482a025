// Command mailgun is a small CLI around the client, useful for poking at
// an account from the terminal: sending test messages and dumping
// suppression lists, events and stats as JSON.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mailgun "github.com/mailgun-sdk/client-go"
)

var (
	cfgFile string
	debug   bool

	logger zerolog.Logger
	client *mailgun.Client
)

var rootCmd = &cobra.Command{
	Use:   "mailgun",
	Short: "Interact with the Mailgun API from the command line",
	Long: `mailgun sends messages and lists bounces, complaints, events,
stats, unsubscribes and whitelist records for a domain.

Credentials come from MAILGUN_API_KEY and MAILGUN_DOMAIN, or from a
config file with api_key and domain keys.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mailgun.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(bouncesCmd)
	rootCmd.AddCommand(complaintsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(unsubscribesCmd)
	rootCmd.AddCommand(whitelistsCmd)
}

// initializeApp loads configuration and builds the API client.
func initializeApp(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	v := viper.New()
	v.SetEnvPrefix("MAILGUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("mailgun")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	apiKey := v.GetString("api_key")
	domain := v.GetString("domain")

	opts := []mailgun.Option{}
	if base := v.GetString("base_url"); base != "" {
		opts = append(opts, mailgun.WithBaseURL(base))
	}

	var err error
	client, err = mailgun.New(apiKey, domain, opts...)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger.Debug().Str("domain", client.Domain()).Msg("client initialized")
	return nil
}
