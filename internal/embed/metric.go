// internal/embed/metric.go
package embed

import (
	"fmt"

	"github.com/viant/vec/search"
)

// Metric enumerates the supported distance metrics.
type Metric string

const (
	// MetricEuclidean is the default metric and matches reference outputs.
	MetricEuclidean Metric = "euclidean"
	// MetricCosine ranks by cosine distance (1 - cosine similarity).
	MetricCosine Metric = "cosine"
)

// DistanceFunc computes the distance between two vectors of equal length.
type DistanceFunc func(a, b []float32) float32

// Func resolves the callable distance implementation, or an error for an
// unrecognized metric name.
func (m Metric) Func() (DistanceFunc, error) {
	switch m {
	case MetricEuclidean, "":
		return euclideanDistance, nil
	case MetricCosine:
		return cosineDistance, nil
	default:
		return nil, fmt.Errorf("unsupported metric %q", string(m))
	}
}

func euclideanDistance(a, b []float32) float32 {
	return search.Float32s(a).EuclideanDistance(b)
}

func cosineDistance(a, b []float32) float32 {
	va := search.Float32s(a)
	if va.Magnitude() == 0 || search.Float32s(b).Magnitude() == 0 {
		return 1
	}
	return va.CosineDistance(b)
}
