package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/latex-render-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("latex-render-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("latex-mcp - MCP server for rendering LaTeX math to images")
			fmt.Println()
			fmt.Println("Usage: latex-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  LATEX_MCP_TRANSPORT=http       Serve HTTP instead of stdio")
			fmt.Println("  LATEX_MCP_BACKEND=remote       Fetch from a rendering endpoint")
			fmt.Println("                                 instead of rendering in-process")
			fmt.Println("  LATEX_MCP_ENDPOINT=<url>       Rendering endpoint override")
			fmt.Println("  HOST, PORT                     HTTP bind address (0.0.0.0:8000)")
			fmt.Println("  LATEX_MCP_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println()
			fmt.Println("By default this server communicates via MCP protocol over")
			fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.Config{
		Backend:  os.Getenv("LATEX_MCP_BACKEND"),
		Endpoint: os.Getenv("LATEX_MCP_ENDPOINT"),
	}

	logLevel := os.Getenv("LATEX_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("LaTeX MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New(cfg)

	if os.Getenv("LATEX_MCP_TRANSPORT") == "http" {
		host := os.Getenv("HOST")
		if host == "" {
			host = "0.0.0.0"
		}
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		addr := host + ":" + port
		log.Printf("Serving HTTP on %s", addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
