package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadChart reads a pre-parsed chart from a json file.
func LoadChart(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart file: %w", err)
	}
	var c Chart
	if err := json.Unmarshal(data, &c); nil != err {
		return nil, fmt.Errorf("unable to parse chart file %v: %w", path, err)
	}
	return &c, nil
}
