package runner

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/utkarsh5026/membw/bandwidth"
	"github.com/utkarsh5026/membw/internal/hostinfo"
)

// JSONBenchmarkOutput wraps benchmark results for JSON output
type JSONBenchmarkOutput struct {
	Host     hostinfo.Info      `json:"host"`
	Features string             `json:"cpu_features"`
	Runs     []bandwidth.Result `json:"runs"`
	Stats    Stats              `json:"stats"`
}

// SerializeToJSON converts results to indented JSON bytes
func SerializeToJSON(info hostinfo.Info, features string, results []bandwidth.Result) ([]byte, error) {
	output := JSONBenchmarkOutput{
		Host:     info,
		Features: features,
		Runs:     results,
		Stats:    CalculateStats(results),
	}

	return json.MarshalIndent(output, "", "  ")
}

// OutputJSON writes the JSON document to w
func OutputJSON(w io.Writer, info hostinfo.Info, features string, results []bandwidth.Result) error {
	data, err := SerializeToJSON(info, features, results)
	if err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
