// Package alpaca speaks the provider's historical market data REST API and
// exposes one-page-at-a-time fetch operations for trades, quotes and bars.
package alpaca

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/uplight-dev/alpaca-history/internal/logger"
	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

// DefaultBaseURL is the production market data endpoint.
const DefaultBaseURL = "https://data.alpaca.markets"

// DataClient fetches a single page of historical records per call. The
// returned page carries the cursor for the next page; an empty cursor marks
// the end of the stream.
type DataClient interface {
	GetTrades(ctx context.Context, req Request) (TradePage, error)
	GetQuotes(ctx context.Context, req Request) (QuotePage, error)
	GetBars(ctx context.Context, req Request) (BarPage, error)
}

// HTTPClient implements DataClient over the provider's REST API.
type HTTPClient struct {
	baseURL   string
	apiKey    string
	apiSecret string
	client    *http.Client
	logger    *logger.Logger
}

// NewHTTPClient creates an HTTPClient. An empty baseURL selects the
// production endpoint.
func NewHTTPClient(baseURL, apiKey, apiSecret string, l *logger.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &HTTPClient{
		baseURL:   baseURL,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    l,
	}
}

// GetTrades implements DataClient.
func (c *HTTPClient) GetTrades(ctx context.Context, req Request) (TradePage, error) {
	body, err := c.get(ctx, req, "trades")
	if err != nil {
		return TradePage{}, err
	}

	if req.Kind.IsStock() {
		var response struct {
			Trades        []Trade `json:"trades"`
			NextPageToken *string `json:"next_page_token"`
		}

		if err := json.Unmarshal(body, &response); err != nil {
			return TradePage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse trades response", err)
		}

		return TradePage{Trades: response.Trades, NextPageToken: tokenValue(response.NextPageToken)}, nil
	}

	var response struct {
		Trades        map[string][]Trade `json:"trades"`
		NextPageToken *string            `json:"next_page_token"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return TradePage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse trades response", err)
	}

	return TradePage{Trades: response.Trades[req.Symbol], NextPageToken: tokenValue(response.NextPageToken)}, nil
}

// GetQuotes implements DataClient.
func (c *HTTPClient) GetQuotes(ctx context.Context, req Request) (QuotePage, error) {
	body, err := c.get(ctx, req, "quotes")
	if err != nil {
		return QuotePage{}, err
	}

	if req.Kind.IsStock() {
		var response struct {
			Quotes        []Quote `json:"quotes"`
			NextPageToken *string `json:"next_page_token"`
		}

		if err := json.Unmarshal(body, &response); err != nil {
			return QuotePage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse quotes response", err)
		}

		return QuotePage{Quotes: response.Quotes, NextPageToken: tokenValue(response.NextPageToken)}, nil
	}

	var response struct {
		Quotes        map[string][]Quote `json:"quotes"`
		NextPageToken *string            `json:"next_page_token"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return QuotePage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse quotes response", err)
	}

	return QuotePage{Quotes: response.Quotes[req.Symbol], NextPageToken: tokenValue(response.NextPageToken)}, nil
}

// GetBars implements DataClient.
func (c *HTTPClient) GetBars(ctx context.Context, req Request) (BarPage, error) {
	body, err := c.get(ctx, req, "bars")
	if err != nil {
		return BarPage{}, err
	}

	if req.Kind.IsStock() {
		var response struct {
			Bars          []Bar   `json:"bars"`
			NextPageToken *string `json:"next_page_token"`
		}

		if err := json.Unmarshal(body, &response); err != nil {
			return BarPage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse bars response", err)
		}

		return BarPage{Bars: response.Bars, NextPageToken: tokenValue(response.NextPageToken)}, nil
	}

	var response struct {
		Bars          map[string][]Bar `json:"bars"`
		NextPageToken *string          `json:"next_page_token"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return BarPage{}, errors.Wrap(errors.ErrCodeResponseParseFailed, "failed to parse bars response", err)
	}

	return BarPage{Bars: response.Bars[req.Symbol], NextPageToken: tokenValue(response.NextPageToken)}, nil
}

// get performs a single GET against the endpoint for the request kind and
// returns the raw response body.
func (c *HTTPClient) get(ctx context.Context, req Request, dataset string) ([]byte, error) {
	endpoint, query := c.endpoint(req, dataset)

	requestURL := endpoint + "?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestFailed, "failed to build request", err)
	}

	httpReq.Header.Set("APCA-API-KEY-ID", c.apiKey)
	httpReq.Header.Set("APCA-API-SECRET-KEY", c.apiSecret)
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching historical data page",
		zap.String("kind", string(req.Kind)),
		zap.String("symbol", req.Symbol),
		zap.String("dataset", dataset),
		zap.String("page_token", req.PageToken))

	response, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestFailed, "request failed", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRequestFailed, "failed to read response body", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, NewStatusError(response.StatusCode, apiErrorMessage(body))
	}

	return body, nil
}

// endpoint maps a request kind to its REST path and base query parameters.
// Stock data uses the per-symbol paths; option and crypto data use the
// multi-symbol endpoints with a symbols query parameter.
func (c *HTTPClient) endpoint(req Request, dataset string) (string, url.Values) {
	query := url.Values{}
	query.Set("start", req.Start.UTC().Format(time.RFC3339Nano))
	query.Set("end", req.End.UTC().Format(time.RFC3339Nano))
	query.Set("sort", "asc")

	if limit, err := req.PageSize.Take(); err == nil {
		query.Set("limit", strconv.Itoa(limit))
	}

	if req.PageToken != "" {
		query.Set("page_token", req.PageToken)
	}

	if req.Timeframe != "" {
		query.Set("timeframe", req.Timeframe)
	}

	switch {
	case req.Kind.IsStock():
		if dataset == "bars" {
			query.Set("adjustment", "raw")
		}

		return fmt.Sprintf("%s/v2/stocks/%s/%s", c.baseURL, url.PathEscape(req.Symbol), dataset), query
	case req.Kind.IsOption():
		query.Set("symbols", req.Symbol)

		return fmt.Sprintf("%s/v1beta1/options/%s", c.baseURL, dataset), query
	default:
		query.Set("symbols", req.Symbol)

		return fmt.Sprintf("%s/v1beta3/crypto/us/%s", c.baseURL, dataset), query
	}
}

// NewStatusError creates the error reported for a non-2xx API response. The
// API's message is embedded verbatim so callers can recognize subscription
// rejections.
func NewStatusError(status int, message string) error {
	return errors.Newf(errors.ErrCodeUnexpectedStatus, "unexpected status %d: %s", status, message)
}

// apiErrorMessage extracts the error message the API embeds in failed
// responses, falling back to the raw body.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return string(body)
}

// tokenValue unwraps the nullable pagination cursor.
func tokenValue(token *string) string {
	if token == nil {
		return ""
	}

	return *token
}
