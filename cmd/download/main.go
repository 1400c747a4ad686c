package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/uplight-dev/alpaca-history/internal/events"
	"github.com/uplight-dev/alpaca-history/internal/logger"
	"github.com/uplight-dev/alpaca-history/internal/types"
	"github.com/uplight-dev/alpaca-history/internal/version"
	"github.com/uplight-dev/alpaca-history/pkg/marketdata"
)

// downloadAction parses the flags, builds the market data client, and runs
// the download.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer appLogger.Sync()

	clientConfig := marketdata.ClientConfig{
		APIKey:     os.Getenv("APCA_API_KEY_ID"),
		APISecret:  os.Getenv("APCA_API_SECRET_KEY"),
		BaseURL:    cmd.String("base-url"),
		WriterType: marketdata.WriterType(cmd.String("writer")),
		DataPath:   cmd.String("data"),
	}

	ticker := cmd.String("ticker")

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", ticker)),
		progressbar.OptionShowCount())

	client, err := marketdata.NewClient(clientConfig, events.NewLogSink(appLogger), appLogger,
		func(written int64) {
			bar.Add(1)
		})
	if err != nil {
		return fmt.Errorf("failed to create market data client: %w", err)
	}

	downloadParams := marketdata.DownloadParams{
		Ticker:               ticker,
		SecurityType:         types.SecurityType(cmd.String("security-type")),
		TickType:             types.TickType(cmd.String("tick-type")),
		Resolution:           types.Resolution(cmd.String("resolution")),
		Start:                cmd.Timestamp("start"),
		End:                  cmd.Timestamp("end"),
		IncludeExtendedHours: cmd.Bool("extended-hours"),
	}

	if err := client.Download(ctx, downloadParams); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	bar.Finish()
	fmt.Println()

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "download",
		Usage:   "Download historical market data from Alpaca",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Ticker symbol (equity: AAPL, crypto: BTC/USD, option: OCC symbol)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "security-type",
				Usage: fmt.Sprintf("Security type (%s, %s, %s)", types.SecurityTypeEquity, types.SecurityTypeOption, types.SecurityTypeCrypto),
				Value: string(types.SecurityTypeEquity),
			},
			&cli.StringFlag{
				Name:  "tick-type",
				Usage: fmt.Sprintf("Data kind (%s, %s)", types.TickTypeTrade, types.TickTypeQuote),
				Value: string(types.TickTypeTrade),
			},
			&cli.StringFlag{
				Name:    "resolution",
				Aliases: []string{"r"},
				Usage:   "Record resolution (tick, second, minute, hour, daily)",
				Value:   string(types.ResolutionMinute),
			},
			&cli.TimestampFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start date in `YYYY-MM-DD` format (or other RFC3339 compatible)",
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format (or other RFC3339 compatible). Defaults to now.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.BoolFlag{
				Name:  "extended-hours",
				Usage: "Include records outside regular trading hours",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Override the market data API endpoint",
			},
			&cli.StringFlag{
				Name:    "writer",
				Aliases: []string{"w"},
				Usage:   fmt.Sprintf("Data writer format (e.g., %s)", marketdata.WriterDuckDB),
				Value:   string(marketdata.WriterDuckDB),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the data output directory",
				Value:   "data",
			},
		},
		Action: downloadAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
