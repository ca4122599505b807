package main

import "github.com/CUBETIQ/cubis-lang-go/cmd/cubislang/cmd"

func main() {
	cmd.Execute()
}
