package main

import "github.com/jsphweid/abcroll/cmd"

func main() {
	cmd.Execute()
}
