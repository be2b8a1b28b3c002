package main

import "careerhub-backend/cmd"

func main() {
	cmd.Run()
}
