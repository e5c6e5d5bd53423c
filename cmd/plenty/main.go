// Command plenty is a small helper for poking the PlentyMarkets REST API
// from the shell. Credentials and connection settings come from environment
// variables (or a .env file): PLENTY_BASE_URL, PLENTY_EMAIL, PLENTY_PASSWORD,
// PLENTY_ID, PLENTY_TIMEOUT_SECONDS, LOG_LEVEL.
//
// Usage:
//
//	plenty login
//	plenty get <endpoint> [key=value ...]
//	plenty post <endpoint> [key=value ...]
//	plenty put <endpoint> [key=value ...]
//	plenty delete <endpoint>
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	plentymarkets "github.com/plentymarkets/client-go"
	"github.com/plentymarkets/client-go/internal/config"
	"github.com/plentymarkets/client-go/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: plenty <login|get|post|put|delete> [args]")
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	log := logging.New(cfg.LogLevel)
	defer log.Sync()

	client, err := plentymarkets.New(
		plentymarkets.WithBaseURL(cfg.BaseURL),
		plentymarkets.WithTimeout(cfg.Timeout),
		plentymarkets.WithLogger(log),
	)
	if err != nil {
		fatal("create client: %v", err)
	}

	ctx := context.Background()

	login := func() {
		if cfg.Email == "" || cfg.Password == "" {
			fatal("PLENTY_EMAIL and PLENTY_PASSWORD are required")
		}
		resp, err := client.Login(ctx, cfg.Email, cfg.Password, plentymarkets.WithPlentyID(cfg.PlentyID))
		if err != nil {
			fatal("login: %v", err)
		}
		log.Infow("login ok", "status", resp.StatusCode)
	}

	switch os.Args[1] {
	case "login":
		login()
	case "get":
		endpoint := endpointArg()
		login()
		printResponse(client.Get(ctx, endpoint, paramArgs()))
	case "post":
		endpoint := endpointArg()
		login()
		printResponse(client.Post(ctx, endpoint, paramArgs()))
	case "put":
		endpoint := endpointArg()
		login()
		printResponse(client.Put(ctx, endpoint, paramArgs()))
	case "delete":
		endpoint := endpointArg()
		login()
		printResponse(client.Delete(ctx, endpoint))
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func endpointArg() string {
	if len(os.Args) < 3 {
		fatal("usage: plenty %s <endpoint> [key=value ...]", os.Args[1])
	}
	return os.Args[2]
}

// paramArgs parses trailing key=value arguments into an ordered Params list.
func paramArgs() plentymarkets.Params {
	var params plentymarkets.Params
	for _, arg := range os.Args[3:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fatal("invalid parameter %q, want key=value", arg)
		}
		params = append(params, plentymarkets.P(key, value))
	}
	return params
}

func printResponse(resp *plentymarkets.Response, err error) {
	if err != nil {
		if resp != nil {
			fmt.Fprintf(os.Stderr, "status %d: %s\n", resp.StatusCode, resp.Body)
		}
		fatal("%v", err)
	}
	fmt.Printf("status %d\n", resp.StatusCode)
	if len(resp.Body) > 0 {
		os.Stdout.Write(resp.Body)
		fmt.Println()
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
