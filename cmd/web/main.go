package main

import "dejavu_backend/internal/app"

func main() {
	app.Run()
}
