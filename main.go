package main

import "github.com/olivierh59500/generative-gallery/cmd"

func main() {
	cmd.Execute()
}
