package alpaca

import "time"

// Trade is a raw trade record as returned by the provider.
type Trade struct {
	Timestamp  time.Time `json:"t"`
	Price      float64   `json:"p"`
	Size       float64   `json:"s"`
	Exchange   string    `json:"x"`
	Conditions []string  `json:"c"`
	Tape       string    `json:"z"`
}

// Quote is a raw NBBO quote record as returned by the provider.
type Quote struct {
	Timestamp   time.Time `json:"t"`
	BidExchange string    `json:"bx"`
	BidPrice    float64   `json:"bp"`
	BidSize     float64   `json:"bs"`
	AskExchange string    `json:"ax"`
	AskPrice    float64   `json:"ap"`
	AskSize     float64   `json:"as"`
	Conditions  []string  `json:"c"`
}

// Bar is a raw aggregate record as returned by the provider.
type Bar struct {
	Timestamp time.Time `json:"t"`
	Open      float64   `json:"o"`
	High      float64   `json:"h"`
	Low       float64   `json:"l"`
	Close     float64   `json:"c"`
	Volume    float64   `json:"v"`
}

// TradePage is one page of trade records plus the cursor for the next page.
// An empty NextPageToken marks the end of the stream.
type TradePage struct {
	Trades        []Trade
	NextPageToken string
}

// QuotePage is one page of quote records.
type QuotePage struct {
	Quotes        []Quote
	NextPageToken string
}

// BarPage is one page of bar records.
type BarPage struct {
	Bars          []Bar
	NextPageToken string
}
