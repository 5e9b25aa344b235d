// Command corsflow explains how browsers resolve cross-origin requests.
package main

import "github.com/jub0bs/corsflow/internal/cli"

func main() {
	cli.Execute()
}
