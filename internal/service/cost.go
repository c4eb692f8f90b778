package service

// Cost converts a token count to a USD estimate at the configured
// per-thousand-token rate.
func Cost(tokens int, perThousandUSD float64) float64 {
	return float64(tokens) / 1000 * perThousandUSD
}
