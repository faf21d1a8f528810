// Command catalog validates the static product catalog and prints it as
// JSON, for the SPA build to consume as its product data.
package main

import (
	"encoding/json"
	"log"
	"os"

	"neonburro-api/internal/catalog"
)

func main() {
	registry := catalog.Default()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(registry.List()); err != nil {
		log.Fatalf("encode catalog: %v", err)
	}
}
