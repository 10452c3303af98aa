package accounts_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

/*
 * Common constants and helper functions for accounts service end-to-end tests.
 * This includes container setup, reading delivered links and assertions.
 */

const (
	testImageName = "accounts-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminEmail     = "admin@example.com"
	adminPassword  = "Admin123!"
	jwtSecret      = "e2e-secret-0123456789abcdef0123"
)

var dockerAvailable bool

// TestMain builds the Docker image once before all tests and removes it
// afterwards. Without a Docker daemon every test skips.
func TestMain(m *testing.M) {
	if err := exec.Command("docker", "info").Run(); err != nil {
		fmt.Fprintf(os.Stdout, "Docker unavailable, skipping end-to-end tests\n")
		os.Exit(m.Run())
	}
	dockerAvailable = true

	fmt.Fprintf(os.Stdout, "Building Accounts Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Accounts Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accounts/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.Command("docker", "rmi", "-f", testImageName).Run() // image might not exist
}

// service is a running accounts container.
type service struct {
	container testcontainers.Container
	client    *accountsdk.Client
}

// setupAccountsContainer starts the service with the log notifier so
// delivered links can be read back from the container output.
func setupAccountsContainer(t *testing.T) *service {
	t.Helper()
	if !dockerAvailable {
		t.Skip("docker is not available")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET":      jwtSecret,
			"BOOTSTRAP_TOKEN": bootstrapToken,
			"APP_NAME":        "Bartab",
			"APP_URL":         "https://app.example.com",
			"NOTIFIER":        "log",
			"ENV":             "test",
			"LOG_LEVEL":       "info",
			"LOG_FORMAT":      "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return &service{
		container: container,
		client:    accountsdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port())),
	}
}

// notification mirrors the log notifier's output line.
type notification struct {
	Msg       string `json:"msg"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	ActionURL string `json:"action_url"`
}

// lastToken returns the token from the most recent link sent to the address
// with the given subject. Log delivery trails the response, so it polls.
func (s *service) lastToken(t *testing.T, to, subject string) string {
	t.Helper()

	var token string
	require.Eventually(t, func() bool {
		found, err := s.scanNotifications(to, subject)
		if err != nil {
			t.Logf("reading container logs: %v", err)
			return false
		}
		token = found
		return token != ""
	}, 10*time.Second, 200*time.Millisecond, "no %q notification for %s", subject, to)

	return token
}

func (s *service) scanNotifications(to, subject string) (string, error) {
	logs, err := s.container.Logs(context.Background())
	if err != nil {
		return "", err
	}
	defer logs.Close()

	var token string
	scanner := bufio.NewScanner(logs)
	for scanner.Scan() {
		var n notification
		if json.Unmarshal(scanner.Bytes(), &n) != nil || n.Msg != "notification" {
			continue
		}
		if n.To == to && n.Subject == subject {
			token = path.Base(n.ActionURL)
		}
	}
	return token, scanner.Err()
}

// bootstrapAdmin creates the first admin and returns an authorized client.
func (s *service) bootstrapAdmin(t *testing.T) *accountsdk.Client {
	t.Helper()
	ctx := t.Context()

	resp, err := s.client.Bootstrap(ctx, bootstrapToken, accountsdk.BootstrapRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.Equal(t, "admin", resp.Account.Role)

	token, err := s.client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err, "Admin login should succeed")

	return s.client.WithToken(token)
}

// inviteAndSignup runs the full registration flow for email.
func (s *service) inviteAndSignup(t *testing.T, admin *accountsdk.Client, email, password string) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, admin.CreateInvite(ctx, email))
	token := s.lastToken(t, email, "Registration")
	require.NoError(t, s.client.Signup(ctx, token, password))
}

// requireStatus checks err is an APIError with the given status code.
func requireStatus(t *testing.T, err error, status int) *accountsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *accountsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	return apiErr
}

func assertHealthy(t *testing.T, health *accountsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
