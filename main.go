package main

import "github.com/vcode-cli/vcode/cmd"

func main() {
	cmd.Execute()
}
