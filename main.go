package main

import "github.com/KaramelBytes/crosstab-cli/cmd"

func main() {
	cmd.Execute()
}
