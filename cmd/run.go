package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/corpus"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/filtering"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/logger"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/ranker"
	"github.com/AphelionMax/Resume-Job-Description-Matching/internal/report"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowTop             = "Show top matches"
	PromptReportByCompany     = "Report by company"
	PromptMatchesToFile       = "Dump matches to file"
	PromptAppendToExcludeFile = "Append all jobs to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowTop, PromptReportByCompany, PromptMatchesToFile, PromptAppendToExcludeFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Rank job descriptions from the dataset against the resume",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "private/resume.txt", "path to the plain-text resume file")
	runCmd.Flags().String("data", "data.csv", "path to the csv dataset with job descriptions")
	runCmd.Flags().StringP("output", "o", "ranked_matches.csv", "path for the ranked csv output")
	runCmd.Flags().IntP("top", "n", 5, "how many top matches to print")
	runCmd.Flags().StringP("strategy", "s", "corpus", "ranking strategy: corpus or pretrained")
	runCmd.Flags().String("vectors-file", "", "word vectors in word2vec text format (pretrained strategy)")
	runCmd.Flags().Int64("seed", 1, "random seed for the corpus strategy")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with jobs to exclude. Default is unset.")
	runCmd.Flags().BoolP("interactive", "i", false, "open an action prompt after ranking")

	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
	viper.BindPFlag("data", runCmd.Flags().Lookup("data"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
	viper.BindPFlag("top", runCmd.Flags().Lookup("top"))
	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
	viper.BindPFlag("matching.strategy", runCmd.Flags().Lookup("strategy"))
	viper.BindPFlag("matching.vectors-file", runCmd.Flags().Lookup("vectors-file"))
	viper.BindPFlag("matching.seed", runCmd.Flags().Lookup("seed"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-matcher", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config.Top < 1 {
		logger.Fatal("invalid configuration", zap.String("reason", "top must be at least 1"), zap.Int("top", config.Top))
	}

	resumeText, err := corpus.LoadResume(corpus.ResumeSource{
		File: config.Resume,
		Text: config.ResumeText,
	})
	if err != nil {
		logger.Fatal("loading resume",
			zap.Error(err),
			zap.String("hint", "set the --resume flag, the RESUME_MATCHER_RESUME environment variable or the 'resume' key in the configuration file"),
		)
	}

	jobs, columns, err := corpus.LoadCSV(config.Data)
	if err != nil {
		logger.Fatal("loading job dataset", zap.Error(err))
	}

	logger.Info("loaded job dataset",
		zap.Int("count", jobs.Len()),
		zap.String("description_column", columns.Description),
	)

	filtered, err := prepareFilters(config, logger).RunFilters(ctx, jobs)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	jobs = filtered

	matcher, err := ranker.New(matchingConfig(config), logger)
	if err != nil {
		logger.Fatal("preparing the ranker", zap.Error(err))
	}

	matches, err := matcher.Rank(resumeText, jobs)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	rows := report.Build(matches)

	if err := report.Write(config.Output, rows); err != nil {
		logger.Fatal("writing ranked matches", zap.Error(err))
	}

	logger.Info("wrote ranked matches",
		zap.String("filename", config.Output),
		zap.Int("count", len(rows)),
	)

	report.Preview(os.Stdout, rows, config.Top)

	if cmd.Flag("interactive").Value.String() == "false" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, jobs, rows); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, jobs *corpus.Jobs, rows []report.Row) error {
	switch action {
	case PromptShowTop:
		report.Preview(os.Stdout, rows, config.Top)
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(jobs.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("jobs count", jobs.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := jobs.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, config, jobs)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendToExcludeFile(logger *zap.Logger, config *Config, jobs *corpus.Jobs) error {
	path := viper.GetString("exclude-file")
	if path == "" {
		logger.Warn("exclude file is not configured",
			zap.String("hint", "set the --exclude-file flag or the 'exclude-file' key in the configuration file"),
		)
		return nil
	}

	excluded, err := corpus.GetExcludedJobsFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		excluded = &corpus.ExcludedJobs{}
	}

	excluded.Append(jobs.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", path))
	return nil
}

func matchingConfig(config *Config) ranker.Config {
	return ranker.Config{
		Strategy:     config.Matching.Strategy,
		VectorSize:   config.Matching.VectorSize,
		Epochs:       config.Matching.Epochs,
		MinCount:     config.Matching.MinCount,
		Negative:     config.Matching.Negative,
		LearningRate: config.Matching.LearningRate,
		Seed:         config.Matching.Seed,
		TopKeywords:  config.Matching.TopKeywords,
		VectorsFile:  config.Matching.VectorsFile,
	}
}

func prepareFilters(config *Config, logger *zap.Logger) *filtering.Filtering {
	var companies []string
	if config.Exclude != nil {
		companies = config.Exclude.Companies
	}

	steps := []filtering.Filter{
		filtering.NewEmptyDescription(),
		filtering.NewExcludedCompanies(companies),
		filtering.NewExcludeFile(config.ExcludeFile),
	}

	return filtering.New(steps, logger)
}
