package main

import "github.com/ratewise/store-ratings-api/cmd"

func main() {
	cmd.Execute()
}
