// Command swapi-graphql serves the Star Wars API as a Relay GraphQL schema.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
