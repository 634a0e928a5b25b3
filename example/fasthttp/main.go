package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/histlog"
	"github.com/lixenwraith/histlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure the seed logger value
	logger, err := histlog.NewBuilder().
		File("/var/log/fasthttp/server.log").
		MaxFileSizeMB(5).
		Build()
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(histlog.LevelInfo),
		compat.WithLevelDetector(compat.DetectLogLevel),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}
