package collector

// Fetcher defines the interface for fetching a current spot price.
type Fetcher interface {
	FetchSpotPrice(pair string) (float64, error)
	Name() string
}
