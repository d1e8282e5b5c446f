package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vikashloomba/mcp-toolset-go/pkg/mcptoolset"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getwd: %v\n", err)
		os.Exit(1)
	}

	toolset, err := mcptoolset.Open(context.Background(), cwd, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open toolset: %v\n", err)
		os.Exit(1)
	}
	defer toolset.Close()

	if toolset.ConfigPath() == "" {
		fmt.Println("no .mcp.json found")
		return
	}

	fmt.Printf("Config: %s\n", toolset.ConfigPath())
	for _, tool := range toolset.Tools() {
		fmt.Printf("  %s [%s] %s\n", tool.Name, tool.Transport, tool.Description)
	}
	for _, msg := range toolset.Errors() {
		fmt.Printf("warning: %s\n", msg)
	}
}
