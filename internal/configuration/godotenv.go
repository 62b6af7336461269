package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation wrapping the Gotdotenv framework.
type GodotenvProvider struct{}

// Read reads a generic Unix-type configuration file into a map (map[key]value).
func (*GodotenvProvider) Read(filename string) (map[string]string, error) {
	data, err := godotenv.Read(filename)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}

// Marshal renders a map (map[key]value) as a generic Unix-type configuration
// file, with sorted and quoted entries.
func (*GodotenvProvider) Marshal(envMap map[string]string) (string, error) {
	data, err := godotenv.Marshal(envMap)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
