package main

import "github.com/validator-ops/solana-version-check/cmd"

func main() {
	cmd.Execute()
}
