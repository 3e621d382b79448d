// cmd/wordvec/main.go
package main

import (
	cmd "github.com/mwiater/wordvec/internal/cli"
)

// main starts the wordvec CLI application by delegating to the
// cobra root command defined in the wordvec package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
