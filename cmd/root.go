package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-matcher"
)

type Config struct {
	Resume      string `mapstructure:"resume"`
	ResumeText  string `mapstructure:"resume-text"`
	Data        string `mapstructure:"data"`
	Output      string `mapstructure:"output"`
	Top         int    `mapstructure:"top"`
	ExcludeFile string `mapstructure:"exclude-file"`
	Exclude     *struct {
		Companies []string
	}
	Matching *MatchingConfig `mapstructure:"matching"`
}

type MatchingConfig struct {
	Strategy     string  `mapstructure:"strategy"`
	VectorSize   int     `mapstructure:"vector-size"`
	Epochs       int     `mapstructure:"epochs"`
	MinCount     int     `mapstructure:"min-count"`
	Negative     int     `mapstructure:"negative"`
	LearningRate float64 `mapstructure:"learning-rate"`
	Seed         int64   `mapstructure:"seed"`
	TopKeywords  int     `mapstructure:"top-keywords"`
	VectorsFile  string  `mapstructure:"vectors-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher is a simple cli for ranking job descriptions from a csv dataset against a resume",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	if err := viper.BindEnv("resume", "RESUME_MATCHER_RESUME"); err != nil {
		log.Fatalf("binding RESUME_MATCHER_RESUME environment variable: %v", err)
	}

	viper.SetDefault("matching.strategy", "corpus")
	viper.SetDefault("matching.vector-size", 50)
	viper.SetDefault("matching.epochs", 40)
	viper.SetDefault("matching.min-count", 2)
	viper.SetDefault("matching.negative", 5)
	viper.SetDefault("matching.learning-rate", 0.025)
	viper.SetDefault("matching.seed", 1)
	viper.SetDefault("matching.top-keywords", 8)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A config file is optional; flags and defaults cover every setting.
	// A file given explicitly or parsed with errors is another matter.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Matching == nil {
		config.Matching = &MatchingConfig{}
	}

	return config, nil
}
