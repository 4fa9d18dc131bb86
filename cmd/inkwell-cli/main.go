// ABOUTME: Command-line client for the inkwell API
// ABOUTME: Stores the access token from login in a file beside the config

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/2389/inkwell/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inkwell-cli <command> [args]")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  register <email> <password>        Create an account")
		fmt.Println("  login <email> <password>           Log in and save the access token")
		fmt.Println("  me                                 Show the identity behind the saved token")
		fmt.Println("  list                               List your pages")
		fmt.Println("  create <title> [content]           Create a page")
		fmt.Println("  update <id> <title> [content]      Update a page")
		fmt.Println("  delete <id>                        Delete a page")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "register":
		err = c.register(ctx, args)
	case "login":
		err = c.login(ctx, args)
	case "me":
		err = c.me(ctx)
	case "list":
		err = c.list(ctx)
	case "create":
		err = c.create(ctx, args)
	case "update":
		err = c.update(ctx, args)
	case "delete":
		err = c.delete(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the path to the inkwell config file, shared with the server.
func getConfigPath() string {
	if envPath := os.Getenv("INKWELL_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "inkwell.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "inkwell", "inkwell.yaml")
}

// client talks to a running inkwell server.
type client struct {
	baseURL   string
	tokenPath string
}

func newClient() (*client, error) {
	configPath := getConfigPath()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &client{
		baseURL:   "http://" + cfg.Server.HTTPAddr,
		tokenPath: filepath.Join(filepath.Dir(configPath), "token"),
	}, nil
}

// do sends a JSON request, attaching the saved bearer token when withAuth is set.
// Returns the response status and decoded body bytes.
func (c *client) do(ctx context.Context, method, path string, body any, withAuth bool) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if withAuth {
		token, err := os.ReadFile(c.tokenPath)
		if err != nil {
			return 0, nil, fmt.Errorf("no saved token, run: inkwell-cli login <email> <password>")
		}
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(string(token)))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}

// apiError extracts the error message from a JSON error body.
func apiError(status int, body []byte) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("%s (status %d)", e.Error, status)
	}
	return fmt.Errorf("unexpected status %d", status)
}

func (c *client) register(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: inkwell-cli register <email> <password>")
	}

	status, body, err := c.do(ctx, http.MethodPost, "/register", map[string]string{
		"email":    args[0],
		"password": args[1],
	}, false)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return apiError(status, body)
	}

	var resp struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	color.Green("✓ Registered %s", args[0])
	fmt.Printf("  user id: %s\n", resp.UserID)
	return nil
}

func (c *client) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: inkwell-cli login <email> <password>")
	}

	status, body, err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"email":    args[0],
		"password": args[1],
	}, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if err := os.WriteFile(c.tokenPath, []byte(resp.AccessToken), 0600); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	color.Green("✓ Logged in as %s", args[0])
	fmt.Printf("  token saved: %s\n", c.tokenPath)
	return nil
}

func (c *client) me(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodGet, "/me", nil, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}

	var resp struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	fmt.Printf("user id: %s\n", resp.UserID)
	fmt.Printf("email:   %s\n", resp.Email)
	return nil
}

func (c *client) list(ctx context.Context) error {
	status, body, err := c.do(ctx, http.MethodGet, "/pages", nil, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}

	var pages []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &pages); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if len(pages) == 0 {
		fmt.Println("no pages")
		return nil
	}

	cyan := color.New(color.FgCyan)
	for _, p := range pages {
		cyan.Printf("%s  ", p.ID)
		fmt.Println(p.Title)
	}
	return nil
}

func (c *client) create(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: inkwell-cli create <title> [content]")
	}

	content := ""
	if len(args) == 2 {
		content = args[1]
	}

	status, body, err := c.do(ctx, http.MethodPost, "/pages", map[string]string{
		"title":   args[0],
		"content": content,
	}, true)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return apiError(status, body)
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	color.Green("✓ Created page %s", resp.ID)
	return nil
}

func (c *client) update(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: inkwell-cli update <id> <title> [content]")
	}

	content := ""
	if len(args) == 3 {
		content = args[2]
	}

	status, body, err := c.do(ctx, http.MethodPut, "/pages/"+args[0], map[string]string{
		"title":   args[1],
		"content": content,
	}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return apiError(status, body)
	}

	color.Green("✓ Updated page %s", args[0])
	return nil
}

func (c *client) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: inkwell-cli delete <id>")
	}

	status, body, err := c.do(ctx, http.MethodDelete, "/pages/"+args[0], nil, true)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return apiError(status, body)
	}

	color.Green("✓ Deleted page %s", args[0])
	return nil
}
