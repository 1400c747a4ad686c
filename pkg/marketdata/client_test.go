package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/uplight-dev/alpaca-history/internal/events"
	"github.com/uplight-dev/alpaca-history/internal/logger"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

type ClientTestSuite struct {
	suite.Suite
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) validConfig() ClientConfig {
	return ClientConfig{
		APIKey:     "key",
		APISecret:  "secret",
		WriterType: WriterDuckDB,
		DataPath:   suite.T().TempDir(),
	}
}

func (suite *ClientTestSuite) newClient(config ClientConfig) (*Client, error) {
	return NewClient(config, events.NewRecorder(), logger.NewNopLogger(), nil)
}

func (suite *ClientTestSuite) TestNewClientValidConfig() {
	client, err := suite.newClient(suite.validConfig())
	suite.Require().NoError(err)
	suite.NotNil(client)
}

func (suite *ClientTestSuite) TestNewClientRejectsInvalidConfig() {
	tests := []struct {
		name   string
		mutate func(config *ClientConfig)
	}{
		{
			name:   "missing api key",
			mutate: func(config *ClientConfig) { config.APIKey = "" },
		},
		{
			name:   "missing api secret",
			mutate: func(config *ClientConfig) { config.APISecret = "" },
		},
		{
			name:   "missing data path",
			mutate: func(config *ClientConfig) { config.DataPath = "" },
		},
		{
			name:   "unknown writer",
			mutate: func(config *ClientConfig) { config.WriterType = "csv" },
		},
		{
			name:   "malformed base url",
			mutate: func(config *ClientConfig) { config.BaseURL = "not a url" },
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			config := suite.validConfig()
			tt.mutate(&config)

			_, err := suite.newClient(config)
			suite.Error(err)
		})
	}
}

func (suite *ClientTestSuite) validParams() DownloadParams {
	return DownloadParams{
		Ticker:       "AAPL",
		SecurityType: types.SecurityTypeEquity,
		TickType:     types.TickTypeTrade,
		Resolution:   types.ResolutionMinute,
		Start:        time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		End:          time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *ClientTestSuite) TestDownloadRejectsInvalidParams() {
	client, err := suite.newClient(suite.validConfig())
	suite.Require().NoError(err)

	tests := []struct {
		name   string
		mutate func(params *DownloadParams)
	}{
		{
			name:   "missing ticker",
			mutate: func(params *DownloadParams) { params.Ticker = "" },
		},
		{
			name:   "unknown security type",
			mutate: func(params *DownloadParams) { params.SecurityType = "future" },
		},
		{
			name:   "unknown resolution",
			mutate: func(params *DownloadParams) { params.Resolution = "weekly" },
		},
		{
			name:   "end before start",
			mutate: func(params *DownloadParams) { params.Start, params.End = params.End, params.Start },
		},
		{
			name:   "malformed option ticker",
			mutate: func(params *DownloadParams) { params.SecurityType = types.SecurityTypeOption },
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			params := suite.validParams()
			tt.mutate(&params)

			suite.Error(client.Download(suite.T().Context(), params))
		})
	}
}

func (suite *ClientTestSuite) TestSanitizeTicker() {
	suite.Equal("BTC-USD", sanitizeTicker("BTC/USD"))
	suite.Equal("AAPL", sanitizeTicker("AAPL"))
}
