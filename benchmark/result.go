// Package benchmark - timing loop, statistics and suite for the signature
// scheme comparison.
package benchmark

// Result is the statistical summary of one benchmarked operation. All times
// are wall-clock milliseconds; StdDev is the population standard deviation
// (divide by n, not n-1). A Result is immutable once returned by Run.
type Result struct {
	AverageTime float64 `json:"average_time_ms"`
	MinTime     float64 `json:"min_time_ms"`
	MaxTime     float64 `json:"max_time_ms"`
	StdDev      float64 `json:"std_dev_ms"`
	Iterations  int     `json:"iterations"`
}

// SchemeResult bundles the three per-operation Results for one signature
// scheme together with its reported artifact sizes.
type SchemeResult struct {
	Name           string `json:"name"`
	Security       string `json:"security"`
	KeyGen         Result `json:"keygen"`
	Sign           Result `json:"sign"`
	Verify         Result `json:"verify"`
	PublicKeyBytes int    `json:"public_key_bytes"`
	SignatureBytes int    `json:"signature_bytes"`
}
