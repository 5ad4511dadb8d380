package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxline/delog/internal/catalogue"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "delog",
	Short: "Strip catalogued verbose log statements from source files",
	Long: `Delog removes a curated catalogue of verbose log statements from a source
file, collapses the blank lines the removals leave behind, and writes the
file back in place. Error logs and ⏱️-prefixed performance logs are always
kept.

Examples:
  delog strip src/websocket/handlers/exotelVoice.handler.ts
  delog rules --format table
  delog watch src/handler.ts
  delog suggest src/handler.ts`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.delog.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringP("catalogue", "c", "", "custom rule catalogue (YAML, default is the built-in catalogue)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("catalogue", rootCmd.PersistentFlags().Lookup("catalogue"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".delog")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DELOG")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("catalogue", "")
	viper.SetDefault("llm.provider", "ollama")
	viper.SetDefault("llm.temperature", 0)
	viper.SetDefault("llm.max_tokens", 0)
	viper.SetDefault("llm.ollama.host", "http://localhost:11434")
	viper.SetDefault("llm.ollama.model", "llama3.2")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// activeCatalogue returns the rule catalogue selected by configuration:
// the custom YAML file when --catalogue is set, the built-in set otherwise.
func activeCatalogue() ([]catalogue.Rule, error) {
	path := viper.GetString("catalogue")
	if path == "" {
		return catalogue.Default(), nil
	}
	return catalogue.Load(path)
}
