package main

import "github.com/Salah-Sal/cursor-chat-viewer/cmd"

func main() {
	cmd.Execute()
}
