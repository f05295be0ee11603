package main

import "hostreel_backend/internal/app"

func main() {
	app.Run()
}
