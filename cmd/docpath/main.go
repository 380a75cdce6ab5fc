// Command docpath reads, writes and tests values inside JSON and YAML
// documents:
//
//	docpath get  --path items.0.name catalog.json
//	docpath set  --path items.0.price --value 12.5 catalog.yaml
//	docpath test --path enabled --value true feature.json
package main

import (
	"os"

	"github.com/authcorp/libs/go/fantasy/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Streams{Out: os.Stdout, Err: os.Stderr}))
}
