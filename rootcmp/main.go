// Command rootcmp draws side-by-side and ratio comparisons of the histograms
// shared by several ROOT files.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
