// cmd/main.go
package main

import cmd "github.com/mwiater/perfreport/cmd/perfreport"

// main starts the perfreport CLI by delegating to the cobra root command
// defined in the perfreport package.
func main() {
	cmd.Execute()
}
