// Command idgenctl inspects the counter and history written by idgen.
package main

import "github.com/papapumpkin/idgen/cmd"

func main() {
	cmd.ExecuteCtl()
}
