package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventconsumers"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventpubsub"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventservices"
	"github.com/MikuMikuMe/smart-asset-tracker/src/utils"
)

type RunArgs struct {
	GoEnv      string
	ConfigPath string
	Symbols    []string
	Interval   int
}

var runCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Track and report the daily performance of a set of ticker symbols",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		symbols, err := cmd.Flags().GetStringSlice("symbols")
		if err != nil {
			log.Fatalf("error getting symbols: %v", err)
		}

		interval, err := cmd.Flags().GetInt("interval")
		if err != nil {
			log.Fatalf("error getting interval: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:      goEnv,
			ConfigPath: configPath,
			Symbols:    symbols,
			Interval:   interval,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func loadConfig(args RunArgs) (*eventmodels.TrackerConfigYAML, error) {
	data, err := os.ReadFile(args.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loadConfig: failed to read config file: %w", err)
	}

	var config eventmodels.TrackerConfigYAML
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("loadConfig: failed to unmarshal config: %w", err)
	}

	if len(args.Symbols) > 0 {
		config.Symbols = args.Symbols
	}

	if args.Interval > 0 {
		config.PollIntervalSeconds = args.Interval
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("loadConfig: invalid config: %w", err)
	}

	return &config, nil
}

func buildFetcher(provider string) (eventservices.QuoteFetcher, error) {
	switch provider {
	case eventmodels.ProviderTradier:
		quotesURL, err := utils.GetEnv("TRADIER_QUOTES_URL")
		if err != nil {
			return nil, err
		}

		bearerToken, err := utils.GetEnv("TRADIER_BEARER_TOKEN")
		if err != nil {
			return nil, err
		}

		return eventservices.NewTradierQuoteFetcher(quotesURL, bearerToken), nil

	case eventmodels.ProviderPolygon:
		apiKey, err := utils.GetEnv("POLYGON_API_KEY")
		if err != nil {
			return nil, err
		}

		return eventservices.NewPolygonQuoteFetcher(apiKey), nil

	default:
		return nil, fmt.Errorf("buildFetcher: unknown provider %q", provider)
	}
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return fmt.Errorf("Run: failed to init environment variables: %w", err)
	}

	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	fetcher, err := buildFetcher(config.Provider)
	if err != nil {
		return err
	}

	eventpubsub.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}

	reporter := eventconsumers.NewPerformanceReporter(&wg)
	reporter.Start(ctx)

	worker := eventconsumers.NewTrackerWorker(&wg, fetcher, config.StockSymbols(), config.PollInterval())

	if config.MarketHoursOnly {
		calendarURL, err := utils.GetEnv("TRADIER_MARKET_CALENDAR_URL")
		if err != nil {
			return err
		}

		bearerToken, err := utils.GetEnv("TRADIER_BEARER_TOKEN")
		if err != nil {
			return err
		}

		worker.RestrictToMarketHours(calendarURL, bearerToken)
	}

	log.Infof("tracking %d symbols every %v via %s", len(config.Symbols), config.PollInterval(), config.Provider)

	worker.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Infof("received %v, shutting down ...", sig)

	cancel()
	wg.Wait()
	eventpubsub.WaitAsync()

	return nil
}

func main() {
	log.SetOutput(os.Stdout)

	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")
	runCmd.PersistentFlags().String("config", "tracker.yaml", "Path to the tracker config file")
	runCmd.PersistentFlags().StringSlice("symbols", nil, "Override the symbol list from the config file")
	runCmd.PersistentFlags().Int("interval", 0, "Override the poll interval, in seconds")

	runCmd.Execute()
}
