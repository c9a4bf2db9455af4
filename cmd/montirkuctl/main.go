// Command montirkuctl is a small operator client for the montirku API.
// It prints the data portion of each response as indented JSON and exits
// with 0 on success, 1 when the server rejected the call and 2 when the
// server or the network failed.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const usage = `Usage: montirkuctl [flags] <command> [command flags]

Commands:
  register        create an account
  login           obtain a token
  find-nearby     find mechanics around a point
  create-request  create a service request
  transition      move a service request to a new status
  requests        list your service requests
  rate            rate a mechanic after a completed job

Flags:
  -addr   API base URL (default $MONTIRKU_ADDR or http://localhost:9990)
  -token  bearer token (default $MONTIRKU_TOKEN)
`

type client struct {
	base  string
	token string
	http  *http.Client
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// call performs one API request. A non-2xx status becomes an error tagged
// with the status code so main can pick the exit code.
func (c *client) call(method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transportError{err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err}
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &apiError{status: resp.StatusCode, message: strings.TrimSpace(string(raw))}
	}
	if resp.StatusCode >= 400 {
		return nil, &apiError{status: resp.StatusCode, message: parsed.Error}
	}

	return parsed.Data, nil
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.message, e.status)
}

type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var api *apiError
	if errors.As(err, &api) && api.status < 500 {
		return 1
	}
	return 2
}

func printData(data json.RawMessage) {
	if len(data) == 0 {
		fmt.Println("ok")
		return
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(out.String())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	addr := flag.String("addr", envOr("MONTIRKU_ADDR", "http://localhost:9990"), "API base URL")
	token := flag.String("token", os.Getenv("MONTIRKU_TOKEN"), "bearer token")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	c := &client{
		base:  strings.TrimRight(*addr, "/"),
		token: *token,
		http:  &http.Client{Timeout: 15 * time.Second},
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	var (
		data json.RawMessage
		err  error
	)
	switch command {
	case "register":
		data, err = runRegister(c, args)
	case "login":
		data, err = runLogin(c, args)
	case "find-nearby":
		data, err = runNearby(c, args)
	case "create-request":
		data, err = runCreateRequest(c, args)
	case "transition":
		data, err = runTransition(c, args)
	case "requests":
		data, err = c.call(http.MethodGet, "/requests", nil)
	case "rate":
		data, err = runRate(c, args)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
	printData(data)
}

func runRegister(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "display name")
	role := fs.String("role", "user", "user or mechanic")
	fs.Parse(args)

	return c.call(http.MethodPost, "/auth/register", map[string]interface{}{
		"email":    *email,
		"password": *password,
		"name":     *name,
		"role":     *role,
	})
}

func runLogin(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	return c.call(http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    *email,
		"password": *password,
	})
}

func runNearby(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("find-nearby", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	radius := fs.Float64("radius", 0, "search radius in km (0 uses the server default)")
	minRating := fs.Float64("min-rating", 0, "minimum average rating")
	services := fs.String("services", "", "comma separated service types")
	availableOnly := fs.Bool("available-only", false, "only mechanics currently online")
	fs.Parse(args)

	query := fmt.Sprintf("/mechanics/nearby?lat=%v&lng=%v", *lat, *lng)
	if *radius > 0 {
		query += fmt.Sprintf("&radius_km=%v", *radius)
	}
	if *minRating > 0 {
		query += fmt.Sprintf("&min_rating=%v", *minRating)
	}
	if *services != "" {
		query += "&services=" + *services
	}
	if *availableOnly {
		query += "&available_only=true"
	}
	return c.call(http.MethodGet, query, nil)
}

func runCreateRequest(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("create-request", flag.ExitOnError)
	mechanicID := fs.String("mechanic", "", "mechanic ID")
	serviceType := fs.String("service", "", "service type")
	lat := fs.Float64("lat", 0, "breakdown latitude")
	lng := fs.Float64("lng", 0, "breakdown longitude")
	address := fs.String("address", "", "breakdown address")
	description := fs.String("description", "", "what went wrong")
	fs.Parse(args)

	return c.call(http.MethodPost, "/requests", map[string]interface{}{
		"mechanic_id":  *mechanicID,
		"service_type": *serviceType,
		"latitude":     *lat,
		"longitude":    *lng,
		"address":      *address,
		"description":  *description,
	})
}

func runTransition(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("transition", flag.ExitOnError)
	requestID := fs.String("request", "", "service request ID")
	status := fs.String("to", "", "target status (accepted, reached, completed, cancelled)")
	fs.Parse(args)

	path := fmt.Sprintf("/requests/%s/status", *requestID)
	return c.call(http.MethodPost, path, map[string]interface{}{
		"status": *status,
	})
}

func runRate(c *client, args []string) (json.RawMessage, error) {
	fs := flag.NewFlagSet("rate", flag.ExitOnError)
	mechanicID := fs.String("mechanic", "", "mechanic ID")
	rating := fs.Int("rating", 0, "rating from 1 to 5")
	review := fs.String("review", "", "optional review text")
	fs.Parse(args)

	return c.call(http.MethodPost, "/reviews", map[string]interface{}{
		"mechanic_id": *mechanicID,
		"rating":      *rating,
		"review":      *review,
	})
}
