package main

import "github.com/ridoystarlord/crafto/cmd"

func main() {
	cmd.Execute()
}
