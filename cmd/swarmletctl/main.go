// swarmletctl is a small operator CLI for the orchestrator API: submit a
// run and follow its event stream, list runs, cancel a run.
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/swarmlet/swarmlet/pkg/version"
)

// Exit codes: 0 success, 1 domain error, 2 timeout, 3 not found,
// 4 configuration error.
const (
	exitDomainError = 1
	exitTimeout     = 2
	exitNotFound    = 3
	exitConfigError = 4
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return exitConfigError
	}
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		if apiErr.Type == "not_found" {
			return exitNotFound
		}
		return exitDomainError
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return exitTimeout
	}
	return exitDomainError
}

type configError struct{ msg string }

func (e *configError) Error() string { return e.msg }

// apiError is a failed envelope surfaced as an error.
type apiError struct {
	Type    string
	Message string
}

func (e *apiError) Error() string { return fmt.Sprintf("%s: %s", e.Type, e.Message) }

func newRootCmd() *cobra.Command {
	cli := &client{}

	root := &cobra.Command{
		Use:           "swarmletctl",
		Short:         "Operator CLI for the swarmlet orchestrator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.base = strings.TrimRight(cli.base, "/")
			if cli.token == "" {
				return &configError{msg: "a token is required (--token or SWARMLET_TOKEN)"}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cli.base, "server", envOrDefault("SWARMLET_URL", "http://localhost:8080"), "orchestrator base URL")
	root.PersistentFlags().StringVar(&cli.token, "token", os.Getenv("SWARMLET_TOKEN"), "API bearer token")

	root.AddCommand(
		newRunCmd(cli),
		newRunsCmd(cli),
		newCancelCmd(cli),
		newVersionCmd(),
	)
	return root
}

func newRunCmd(cli *client) *cobra.Command {
	return &cobra.Command{
		Use:   "run <task...>",
		Short: "Submit a run and stream its events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.submitAndFollow(strings.Join(args, " "))
		},
	}
}

func newRunsCmd(cli *client) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.listRuns()
		},
	}
}

func newCancelCmd(cli *client) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <run-id>",
		Short: "Cancel a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.cancelRun(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Full())
		},
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type client struct {
	base  string
	token string
}

// envelope mirrors the API's uniform result wrapper.
type envelope struct {
	OK          bool            `json:"ok"`
	Data        json.RawMessage `json:"data"`
	ErrorType   string          `json:"error_type"`
	UserMessage string          `json:"user_message"`
}

func (c *client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: unexpected response (%s)", method, path, resp.Status)
	}
	if !env.OK {
		return &apiError{Type: env.ErrorType, Message: env.UserMessage}
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

type runInfo struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Task      string    `json:"task"`
	Error     string    `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *client) submitAndFollow(task string) error {
	var created runInfo
	if err := c.do(http.MethodPost, "/api/runs", map[string]string{"task": task}, &created); err != nil {
		return err
	}
	fmt.Println("run:", created.ID)
	return c.follow(created.ID)
}

func (c *client) listRuns() error {
	var runs []runInfo
	if err := c.do(http.MethodGet, "/api/runs", nil, &runs); err != nil {
		return err
	}
	for _, r := range runs {
		task := r.Task
		if len(task) > 60 {
			task = task[:60] + "…"
		}
		fmt.Printf("%s  %-9s  %s\n", r.ID, r.Status, task)
	}
	return nil
}

func (c *client) cancelRun(runID string) error {
	if err := c.do(http.MethodPost, "/api/runs/"+runID+"/cancel", nil, nil); err != nil {
		return err
	}
	fmt.Println("cancelled:", runID)
	return nil
}

// streamEvent is the SSE data payload for one run event.
type streamEvent struct {
	ID      int64          `json:"id"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// follow streams a run's events to stdout until the close barrier,
// reconnecting with Last-Event-ID on dropped connections. Returns an
// error when the run finished in failure, so the process exit code
// reflects the run outcome.
func (c *client) follow(runID string) error {
	var lastID int64
	var failure string
	for {
		closed, err := c.streamOnce(runID, &lastID, &failure)
		if err != nil {
			fmt.Fprintln(os.Stderr, "stream interrupted, reconnecting:", err)
			time.Sleep(time.Second)
			continue
		}
		if closed {
			if failure != "" {
				return fmt.Errorf("run failed: %s", failure)
			}
			return nil
		}
	}
}

func (c *client) streamOnce(runID string, lastID *int64, failure *string) (bool, error) {
	path := fmt.Sprintf("%s/api/runs/%s/events?include_tokens=true", c.base, runID)
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if *lastID > 0 {
		req.Header.Set("Last-Event-ID", fmt.Sprintf("%d", *lastID))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("stream returned %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var evt streamEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &evt); err != nil {
			continue // notice frames and heartbeats are not run events
		}
		if evt.ID > 0 {
			*lastID = evt.ID
		}
		if done := printEvent(evt, failure); done {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// printEvent renders one event and reports whether the stream is done.
func printEvent(evt streamEvent, failure *string) bool {
	str := func(key string) string {
		s, _ := evt.Payload[key].(string)
		return s
	}
	switch evt.Type {
	case "supervisor_token":
		fmt.Print(str("text"))
	case "supervisor_tool_started":
		fmt.Printf("\n[tool] %s\n", str("tool"))
	case "worker_spawned":
		fmt.Printf("\n[worker %s] %s\n", str("worker_id"), str("command_preview"))
	case "worker_complete":
		fmt.Printf("[worker %s] done\n", str("worker_id"))
	case "worker_failed":
		fmt.Printf("[worker %s] failed: %s\n", str("worker_id"), str("error"))
	case "supervisor_complete":
		fmt.Printf("\n\n%s\n", str("result"))
	case "supervisor_failed":
		*failure = str("error")
		if *failure == "" {
			*failure = str("reason")
		}
		fmt.Printf("\nrun failed: %s\n", *failure)
	case "stream_control":
		if str("action") == "close" {
			return true
		}
	}
	return false
}
