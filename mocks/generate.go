package mocks

//go:generate mockgen -destination=./mock_data_client.go -package=mocks github.com/uplight-dev/alpaca-history/internal/alpaca DataClient
