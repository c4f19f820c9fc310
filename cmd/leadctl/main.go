// Command leadctl sends test leads to the lead intake API and inspects the
// submission outcome log.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
