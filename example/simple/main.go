package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/histlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[histlog]
  file = "./simple_logs/app.log"
  max_file_size = 4096
  create_dirs = true
`

func main() {
	fmt.Println("--- Simple histlog Example ---")

	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		os.Exit(1)
	}

	logger, err := histlog.NewBuilder().
		FromFile(configFile).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	// Each call returns a new value; earlier values keep their shorter history
	empty := logger
	logger, _ = logger.Info("Application started")
	logger, _ = logger.Warning("Low disk space")
	logger, _ = logger.Error("Failed to connect to database")

	fmt.Println("--- Full history ---")
	fmt.Println(logger)

	fmt.Println("--- Errors only ---")
	for _, e := range logger.Logs(histlog.LevelError) {
		fmt.Println(e)
	}

	fmt.Printf("original value still has %d entries, derived has %d\n",
		empty.Len(), logger.Len())

	if err := logger.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
	}
}
