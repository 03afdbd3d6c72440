// Package schemas holds the Avro schemas of the change events published to
// Kafka.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.avsc
var files embed.FS

func Load(name string) (string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading schema %s: %w", name, err)
	}
	return string(data), nil
}
