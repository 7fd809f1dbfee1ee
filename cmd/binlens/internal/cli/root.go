package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the base command when binlens is invoked without a
// subcommand, grounded on Manu343726-cucaracha/cmd/root.go's RootCmd.
var rootCmd = &cobra.Command{
	Use:   "binlens",
	Short: "Inspect ELF object files and their DWARF debugging information",
	Long: `binlens reads an ELF object file and lets you walk its sections,
segments, symbol tables, and the DWARF v2-4 compilation-unit/DIE tree
embedded in its .debug_* sections.`,
}

// Execute runs rootCmd (its subcommands are registered in init) and
// exits with status 1 if it fails. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.binlens.yaml)")
	rootCmd.AddCommand(sectionsCmd, segmentsCmd, symsCmd, treeCmd, findpcCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads ~/.binlens.yaml and BINLENS_* environment variables,
// the same shape as cucaracha's initConfig for ~/.cucaracha.yaml.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".binlens")
	}

	viper.SetEnvPrefix("binlens")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
