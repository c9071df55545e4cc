package main

import "domwork_backend/internal/app"

func main() {
	app.Run()
}
