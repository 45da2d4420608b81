package main

import "github.com/LegacyCodeHQ/mkdep/cmd"

func main() {
	cmd.Execute()
}
