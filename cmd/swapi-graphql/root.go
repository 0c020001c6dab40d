package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	v          = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "swapi-graphql",
	Short:        "GraphQL adapter for the Star Wars API",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (YAML, TOML or JSON)")
}
