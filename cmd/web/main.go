package main

import "heptabet_backend/internal/app"

func main() {
	app.Run()
}
