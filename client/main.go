package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const callTimeout = 45 * time.Second

// Smoke-tests a server binary over stdio:
//
//	go run ./client -tool get_table_schema -args '{"tables":["orders"],"database":"shop"}' \
//	    bin/mysql-schema-mcp --mysql-host 127.0.0.1
func main() {
	tool := flag.String("tool", "list_databases", "tool to call after listing tools")
	rawArgs := flag.String("args", "{}", "tool arguments as a JSON object")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: client [-tool NAME] [-args JSON] <server binary> [server flags...]")
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(*rawArgs), &args); err != nil {
		log.Fatalf("invalid -args: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:], *tool, args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, program string, serverArgs []string, tool string, args map[string]any) error {
	c, err := client.NewStdioMCPClient(program, os.Environ(), serverArgs...)
	if err != nil {
		return fmt.Errorf("spawn %s: %w", program, err)
	}
	defer c.Close()
	relayServerLog(c)

	if err := c.Start(ctx); err != nil {
		return fmt.Errorf("start client: %w", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{Name: "mysql-schema-mcp-smoke", Version: "0.1.0"}
	initResult, err := c.Initialize(ctx, initRequest)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	fmt.Printf("connected to %s %s\n", initResult.ServerInfo.Name, initResult.ServerInfo.Version)

	if err := c.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	listed, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}
	for _, t := range listed.Tools {
		schema, _ := json.Marshal(t.InputSchema)
		fmt.Printf("  %-18s %s\n", t.Name, schema)
	}

	callRequest := mcp.CallToolRequest{}
	callRequest.Params.Name = tool
	callRequest.Params.Arguments = args
	result, err := c.CallTool(ctx, callRequest)
	if err != nil {
		return fmt.Errorf("call %s: %w", tool, err)
	}
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			fmt.Println(text.Text)
		}
	}
	if result.IsError {
		return fmt.Errorf("%s returned a tool error", tool)
	}
	return nil
}

// relayServerLog copies the server's stderr (its log output) to ours line by line.
func relayServerLog(c *client.Client) {
	stderr, ok := client.GetStderr(c)
	if !ok {
		return
	}
	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			fmt.Fprintf(os.Stderr, "[server] %s\n", scanner.Text())
		}
	}()
}
