// Command idgen prints a task-trace ID and advances the persisted counter.
package main

import "github.com/papapumpkin/idgen/cmd"

func main() {
	cmd.Execute()
}
