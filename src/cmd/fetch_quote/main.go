package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MikuMikuMe/smart-asset-tracker/src/eventmodels"
	"github.com/MikuMikuMe/smart-asset-tracker/src/eventservices"
	"github.com/MikuMikuMe/smart-asset-tracker/src/utils"
)

type RunArgs struct {
	GoEnv    string
	Symbol   string
	Provider string
}

var runCmd = &cobra.Command{
	Use:   "fetch_quote --symbol AAPL",
	Short: "Fetch the latest daily record for a single symbol and print its performance",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		provider, err := cmd.Flags().GetString("provider")
		if err != nil {
			log.Fatalf("error getting provider: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:    goEnv,
			Symbol:   symbol,
			Provider: provider,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
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

	fetcher, err := buildFetcher(args.Provider)
	if err != nil {
		return err
	}

	symbol := eventmodels.NewStockSymbol(args.Symbol)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	record, err := fetcher.FetchDailyRecord(ctx, symbol)
	if err != nil {
		return fmt.Errorf("Run: failed to fetch daily record for %v: %w", symbol, err)
	}

	data := map[eventmodels.StockSymbol]eventmodels.DailyRecord{
		symbol: *record,
	}

	summary := eventservices.CalculatePerformance(data, []eventmodels.StockSymbol{symbol}, time.Now())
	if summary.IsEmpty() {
		return fmt.Errorf("Run: no performance data for %v", symbol)
	}

	fmt.Printf("%s\n", summary)

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in")
	runCmd.PersistentFlags().String("symbol", "", "The ticker symbol to fetch")
	runCmd.PersistentFlags().String("provider", eventmodels.ProviderTradier, "The market data provider to use: tradier or polygon")

	runCmd.MarkPersistentFlagRequired("symbol")

	runCmd.Execute()
}
