// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"

	_ "github.com/GYRAG/beetkar-hub/docs"
	"github.com/GYRAG/beetkar-hub/internal/config"
	"github.com/GYRAG/beetkar-hub/internal/server"
)

func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting Beetkar Sensor Hub v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____             __  __             ",
		"   / __ )___  ___  / /_/ /______ ______",
		"  / __  / _ \\/ _ \\/ __/ //_/ __ `/ ___/",
		" / /_/ /  __/  __/ /_/ ,< / /_/ / /    ",
		"/_____/\\___/\\___/\\__/_/|_|\\__,_/_/     ",
		"......................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
