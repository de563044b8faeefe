package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-scorer"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app + " <resume_file> <job_title>",
		Short: "resume-scorer scores a PDF, DOCX or TXT resume against a job title with an LLM",
		Long: "resume-scorer extracts the text of a resume, asks the model which skills a job title calls for,\n" +
			"then scores the resume against them. Results are printed as a table and saved as JSON.",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return score(cmd, args[0], args[1])
		},
	}
)

// ExecuteContext executes the root command with ctx available to every stage.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	if err := viper.BindEnv("openai-api-key", "OPENAI_API_KEY"); err != nil {
		log.Fatalf("binding OPENAI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("gemini-api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is config.json beside the executable, then in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	rootCmd.Flags().String("provider", "", "llm provider: openai or gemini (overrides the config file)")
	rootCmd.Flags().String("model", "", "model name (overrides the config file)")
	rootCmd.Flags().StringP("output", "o", "", "file for the JSON results (default is resume_score_results.json)")
	rootCmd.Flags().String("api-key-file", "", "read the api key from this file instead of the config file")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("provider", rootCmd.Flags().Lookup("provider"))
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("api-key-file", rootCmd.Flags().Lookup("api-key-file"))
}
