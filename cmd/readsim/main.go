// cmd/readsim/main.go
package main

import (
	"readsim/internal/app"
	"readsim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
