// genfavicon: one-shot generator for the GhostShift favicon assets (ghost
// mask + neon eye). Writes favicon.ico, the small PNG favicons, and the
// apple touch icon into ./public.
package main

import (
	"fmt"
	"log"

	"github.com/ghostshift/favicon"
)

func main() {
	fmt.Println("Generating GhostShift favicon assets...")

	written, err := favicon.ExportAll("public")
	for _, path := range written {
		fmt.Printf("Created %s\n", path)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nAll favicon assets created successfully!")
}
