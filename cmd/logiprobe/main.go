package main

import "github.com/Egor213/LogiProbe/internal/app"

func main() {
	app.Run()
}
