// internal/glove/registry.go
// Package glove fetches, unpacks, and parses pretrained GloVe vector sets
// into embed.Table instances, caching both the downloaded archives and a
// binary sidecar of the parsed table.
package glove

import (
	"fmt"
	"sort"
)

// Dataset describes one named pretrained vector set and the dimensionalities
// it ships with.
type Dataset struct {
	Name string
	URL  string
	Dims []int
}

// Source pins a dataset to a concrete dimensionality and the vector file
// inside its archive.
type Source struct {
	Name string
	Dim  int
	URL  string
	File string
}

// NotFoundError reports a dataset name or dimensionality that is not in the
// registry.
type NotFoundError struct {
	Dataset string
	Dim     int
}

func (e *NotFoundError) Error() string {
	if e.Dim > 0 {
		return fmt.Sprintf("pretrained set %q has no %d-dimensional vectors", e.Dataset, e.Dim)
	}
	return fmt.Sprintf("unknown pretrained set %q", e.Dataset)
}

var datasets = map[string]Dataset{
	"glove.6B": {
		Name: "glove.6B",
		URL:  "https://nlp.stanford.edu/data/glove.6B.zip",
		Dims: []int{50, 100, 200, 300},
	},
	"glove.42B.300d": {
		Name: "glove.42B.300d",
		URL:  "https://nlp.stanford.edu/data/glove.42B.300d.zip",
		Dims: []int{300},
	},
	"glove.840B.300d": {
		Name: "glove.840B.300d",
		URL:  "https://nlp.stanford.edu/data/glove.840B.300d.zip",
		Dims: []int{300},
	},
	"glove.twitter.27B": {
		Name: "glove.twitter.27B",
		URL:  "https://nlp.stanford.edu/data/glove.twitter.27B.zip",
		Dims: []int{25, 50, 100, 200},
	},
}

// Resolve maps a dataset name and dimensionality to a concrete source,
// returning a *NotFoundError when either is not in the registry.
func Resolve(name string, dim int) (Source, error) {
	ds, ok := datasets[name]
	if !ok {
		return Source{}, &NotFoundError{Dataset: name}
	}
	found := false
	for _, d := range ds.Dims {
		if d == dim {
			found = true
			break
		}
	}
	if !found {
		return Source{}, &NotFoundError{Dataset: name, Dim: dim}
	}

	file := ds.Name + ".txt"
	if len(ds.Dims) > 1 {
		file = fmt.Sprintf("%s.%dd.txt", ds.Name, dim)
	}
	return Source{Name: ds.Name, Dim: dim, URL: ds.URL, File: file}, nil
}

// DatasetNames returns the registered dataset names in sorted order.
func DatasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
