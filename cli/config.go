package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/termacli/terma/config"
	"github.com/termacli/terma/errors"
)

var providerAPIKey string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Terma's provider configuration",
}

var providerCmd = &cobra.Command{
	Use:   "provider [name]",
	Short: "Set the provider, its default model, and the API key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSetProvider,
}

var apiKeyCmd = &cobra.Command{
	Use:   "api-key [key]",
	Short: "Set the API key for the current configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSetAPIKey,
}

var modelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Set the model for the configured provider",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSetModel,
}

var peekCmd = &cobra.Command{
	Use:   "peek",
	Short: "Print the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runPeek,
}

func init() {
	providerCmd.Flags().StringVar(&providerAPIKey, "api-key", "", "API key for the provider")
	configCmd.AddCommand(providerCmd, apiKeyCmd, modelCmd, peekCmd)
	rootCmd.AddCommand(configCmd)
}

func runSetProvider(cmd *cobra.Command, args []string) error {
	provider := ""
	if len(args) > 0 {
		provider = args[0]
	}
	if provider == "" {
		provider = promptLine("Provider")
	}

	if !config.ValidProvider(provider) {
		var list strings.Builder
		for _, name := range config.ProviderList() {
			fmt.Fprintf(&list, "- %s\n", name)
		}
		return errors.New("invalid provider.\n> Choose from one of the following providers:\n%s", list.String())
	}

	apiKey := providerAPIKey
	if apiKey == "" {
		apiKey = promptLine("API Key")
	}

	cfg := &config.Config{
		Provider: provider,
		Model:    config.DefaultModel(provider),
		APIKey:   apiKey,
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("Provider set to: %s\n", color.GreenString(cfg.Provider))
	fmt.Printf("Model set to: %s (default)\n", color.GreenString(cfg.Model))
	fmt.Printf("API Key set to: %s\n\n", color.GreenString(config.MaskKey(cfg.APIKey)))
	return nil
}

func runSetAPIKey(cmd *cobra.Command, args []string) error {
	if !config.Exists() {
		return errors.New("invalid configuration.\n> run \"%s\"", color.CyanString("terma config provider <name>"))
	}

	apiKey := ""
	if len(args) > 0 {
		apiKey = args[0]
	}
	if apiKey == "" {
		apiKey = promptLine("API Key")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.APIKey = apiKey
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("API Key set to: %s\n\n", color.GreenString(config.MaskKey(apiKey)))
	return nil
}

func runSetModel(cmd *cobra.Command, args []string) error {
	if !config.Exists() {
		return errors.New("invalid configuration.\n> run \"%s\"", color.CyanString("terma config provider <name>"))
	}

	model := ""
	if len(args) > 0 {
		model = args[0]
	}
	if model == "" {
		model = promptLine("Model")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !config.ValidModel(cfg.Provider, model) {
		return errors.New("invalid model name for provider %q", cfg.Provider)
	}

	cfg.Model = model
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Printf("Model set to: %s\n\n", color.GreenString(model))
	return nil
}

func runPeek(cmd *cobra.Command, args []string) error {
	if !config.Exists() {
		return errors.New("invalid configuration.\n> run \"%s\"", color.CyanString("terma config provider <name>"))
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Provider: %s\n", color.GreenString(cfg.Provider))
	fmt.Printf("Model: %s\n", color.GreenString(cfg.Model))
	fmt.Printf("API Key: %s\n\n", color.GreenString(config.MaskKey(cfg.APIKey)))
	return nil
}

func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}
