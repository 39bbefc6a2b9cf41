package network

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

//go:embed vienna.csv
var viennaCSV []byte

// SampleCSV returns the embedded Vienna network in CSV form.
func SampleCSV() []byte {
	return bytes.Clone(viennaCSV)
}

// Sample builds the embedded Vienna U-Bahn excerpt: parts of U1, U2, U3, U4
// and U6 with their shared transfer stations.
func Sample() *core.Graph {
	g, err := LoadReader(bytes.NewReader(viennaCSV))
	if err != nil {
		panic(fmt.Sprintf("network: embedded sample is invalid: %v", err))
	}

	return g
}
