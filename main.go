package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parcelbridge/novapost/pkg/novapost"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "novapost",
	Short:   "Nova Poshta API client - cities, warehouses, shipments, tracking",
	Version: version,
}

var citiesCmd = &cobra.Command{
	Use:   "cities [query]",
	Short: "Search cities by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *novapost.Client) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			resp, err := client.GetCities(ctx, query)
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		})
	},
}

var warehousesCmd = &cobra.Command{
	Use:   "warehouses <city> [query]",
	Short: "List warehouses in a city (by name or reference)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *novapost.Client) error {
			query := ""
			if len(args) > 1 {
				query = args[1]
			}
			resp, err := client.GetWarehouses(ctx, args[0], query)
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		})
	},
}

var trackPhone string

var trackCmd = &cobra.Command{
	Use:   "track <number>...",
	Short: "Track shipment documents by number",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *novapost.Client) error {
			documents := make([]novapost.DocumentNumber, 0, len(args))
			for _, number := range args {
				documents = append(documents, novapost.DocumentNumber{
					DocumentNumber: number,
					Phone:          trackPhone,
				})
			}
			resp, err := client.TrackDocuments(ctx, documents)
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		})
	},
}

var priceSpec struct {
	senderCity    string
	recipientCity string
	weight        float64
	cost          int
	seats         int
	redelivery    int
}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Estimate the delivery cost between two cities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *novapost.Client) error {
			now := time.Now()
			resp, err := client.GetDocumentPrice(ctx, novapost.PriceSpec{
				CitySender:       priceSpec.senderCity,
				CityRecipient:    priceSpec.recipientCity,
				Weight:           priceSpec.weight,
				ServiceType:      novapost.ServiceWarehouseWarehouse,
				Cost:             priceSpec.cost,
				CargoType:        novapost.CargoParcel,
				SeatsAmount:      priceSpec.seats,
				Date:             &now,
				RedeliveryAmount: priceSpec.redelivery,
			})
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		})
	},
}

var scanSheetsCmd = &cobra.Command{
	Use:   "scansheets",
	Short: "List the account's scan sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, client *novapost.Client) error {
			resp, err := client.ListScanSheets(ctx)
			if err != nil {
				return err
			}
			return printJSON(resp.Data)
		})
	},
}

func init() {
	trackCmd.Flags().StringVar(&trackPhone, "phone", "", "sender or recipient phone for full tracking detail")

	priceCmd.Flags().StringVar(&priceSpec.senderCity, "from", "", "sender city reference")
	priceCmd.Flags().StringVar(&priceSpec.recipientCity, "to", "", "recipient city reference")
	priceCmd.Flags().Float64Var(&priceSpec.weight, "weight", 1, "weight in kilograms")
	priceCmd.Flags().IntVar(&priceSpec.cost, "cost", 300, "declared value in UAH")
	priceCmd.Flags().IntVar(&priceSpec.seats, "seats", 1, "number of seats")
	priceCmd.Flags().IntVar(&priceSpec.redelivery, "redelivery", 0, "cash-on-delivery amount in UAH")
	priceCmd.MarkFlagRequired("from")
	priceCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(citiesCmd, warehousesCmd, trackCmd, priceCmd, scanSheetsCmd)
}

// withClient runs one command body with a fully wired client: config from the
// environment, logger, optional tracer, and metrics.
func withClient(cmd *cobra.Command, run func(context.Context, *novapost.Client) error) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(ctx)
	}

	return run(ctx, initClient(cfg, logger))
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
