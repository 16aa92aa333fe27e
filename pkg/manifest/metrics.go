package manifest

import "time"

// Metrics receives codec observations. Implementations must be safe for
// concurrent use. A nil Metrics disables collection.
type Metrics interface {
	// ObserveDecode records one Decode call. version is 0 when the header
	// could not be read.
	ObserveDecode(version Version, size int, duration time.Duration, err error)

	// ObserveEncode records one Encode call.
	ObserveEncode(version Version, size int, duration time.Duration, err error)
}
