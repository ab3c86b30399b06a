package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "retailctl",
	Short: "Demo retail backend: API service and MongoDB seeder",
	Long: `retailctl bundles the two pieces of the retail demo:

  serve   start the HTTP API (health check + demo product list)
  seed    populate MongoDB with synthetic users, products, carts,
          orders and reviews for development and testing`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("retailctl version %s\n", Version)
			os.Exit(0)
		}
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	viper.BindEnv("mongo_uri", "MONGO_URI")
	viper.BindEnv("database", "RETAIL_DB")
	viper.BindEnv("listen_addr", "LISTEN_ADDR")
	viper.BindEnv("log_level", "LOG_LEVEL")
	viper.AutomaticEnv()
}
