//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/restofront/apiserver/config"
	"github.com/restofront/apiserver/internal/db"
	"github.com/restofront/apiserver/internal/server"
)

const serverPort = 18080

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	root, err := repoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to locate repo root: %v\n", err)
		os.Exit(1)
	}

	if err := dockerCompose(ctx, root, "up", "-d"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start docker compose: %v\n", err)
		os.Exit(1)
	}

	if err := waitForPostgres(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "postgres not ready: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	if err := runMigrations(root); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	srv, err := startServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	if err := waitForHealth(ctx, baseURL+"/healthz"); err != nil {
		fmt.Fprintf(os.Stderr, "server not healthy: %v\n", err)
		_ = srv.Shutdown()
		_ = dockerCompose(context.Background(), root, "down")
		os.Exit(1)
	}

	code := m.Run()

	_ = srv.Shutdown()
	_ = dockerCompose(context.Background(), root, "down")
	os.Exit(code)
}

func TestAuthLifecycle(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	password := "admin123!"

	userID, err := registerUser(t, baseURL, email, password)
	if err != nil {
		t.Fatalf("register user: %v", err)
	}

	// A fresh client must not pass the admin gate.
	token, err := login(t, baseURL, email, password)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	status, err := getStatus(baseURL+"/admin/users", token)
	if err != nil {
		t.Fatalf("admin route: %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 for client on admin route, got %d", status)
	}

	if err := promoteUserToAdmin(email); err != nil {
		t.Fatalf("promote user: %v", err)
	}

	// The outstanding token picks up the new role without re-login.
	status, err = getStatus(baseURL+"/admin/users", token)
	if err != nil {
		t.Fatalf("admin route after promote: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected 200 for promoted user, got %d", status)
	}

	// Role update through the API, with an invalid value rejected.
	if err := updateRole(t, baseURL, token, userID, "superadmin", http.StatusBadRequest); err != nil {
		t.Fatalf("invalid role update: %v", err)
	}
	if err := updateRole(t, baseURL, token, userID, "staff", http.StatusOK); err != nil {
		t.Fatalf("role update: %v", err)
	}

	// After self-demotion the same token no longer passes the gate.
	status, err = getStatus(baseURL+"/admin/users", token)
	if err != nil {
		t.Fatalf("admin route after demote: %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("expected 403 after demotion, got %d", status)
	}
}

func TestLoginFailure(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)

	form := url.Values{}
	form.Set("username", "wrong@test.com")
	form.Set("password", "wrongpass")

	resp, err := http.PostForm(baseURL+"/token", form)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAdminRouteWithoutToken(t *testing.T) {
	baseURL := fmt.Sprintf("http://localhost:%d", serverPort)

	status, err := getStatus(baseURL+"/admin/users", "")
	if err != nil {
		t.Fatalf("admin route: %v", err)
	}
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}

type userResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func registerUser(t *testing.T, baseURL, email, password string) (int, error) {
	t.Helper()

	payload := map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": password,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	resp, err := http.Post(baseURL+"/register", "application/json", strings.NewReader(string(body)))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("register status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed userResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, err
	}
	if parsed.ID == 0 {
		return 0, fmt.Errorf("missing id in register response")
	}
	return parsed.ID, nil
}

func login(t *testing.T, baseURL, email, password string) (string, error) {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := http.PostForm(baseURL+"/token", form)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" || parsed.TokenType != "bearer" {
		return "", fmt.Errorf("unexpected token response %+v", parsed)
	}
	return parsed.AccessToken, nil
}

func getStatus(targetURL, token string) (int, error) {
	req, err := http.NewRequest(http.MethodGet, targetURL, nil)
	if err != nil {
		return 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func updateRole(t *testing.T, baseURL, token string, userID int, role string, wantStatus int) error {
	t.Helper()

	body, err := json.Marshal(map[string]string{"role": role})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/admin/users/%d/role", baseURL, userID), strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("update role status %d (want %d): %s", resp.StatusCode, wantStatus, strings.TrimSpace(string(msg)))
	}
	return nil
}

func promoteUserToAdmin(email string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	conn, err := sql.Open("postgres", db.PostgresURL(cfg))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = conn.ExecContext(ctx, "UPDATE users SET role = 'admin', updated_at = NOW() WHERE email = $1", email)
	return err
}

func waitForPostgres(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	conn, err := sql.Open("postgres", db.PostgresURL(cfg))
	if err != nil {
		return err
	}
	defer conn.Close()

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := conn.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("postgres ping timeout: %w", err)
		case <-ticker.C:
		}
	}
}

func waitForHealth(ctx context.Context, url string) error {
	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			return fmt.Errorf("health check failed with status")
		case <-ticker.C:
		}
	}
}

func runMigrations(root string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	migrationsPath := filepath.Join(root, "internal", "db", "migrations")
	migrationsURL := "file://" + migrationsPath

	migrator, err := migrate.New(migrationsURL, db.PostgresURL(cfg))
	if err != nil {
		return err
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func startServer() (*server.Server, error) {
	_ = os.Setenv("JWT_SECRET", "test-secret")
	_ = os.Setenv("SERVER_PORT", fmt.Sprintf("%d", serverPort))
	_ = os.Setenv("DB_HOST", "localhost")
	_ = os.Setenv("DB_PORT", "5432")
	_ = os.Setenv("DB_USER", "restofront")
	_ = os.Setenv("DB_PASSWORD", "restofront")
	_ = os.Setenv("DB_NAME", "restofront")
	_ = os.Setenv("DB_USE_SSL", "false")

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	go func() {
		_ = srv.Start()
	}()

	return srv, nil
}

func dockerCompose(ctx context.Context, root string, args ...string) error {
	composeFile := filepath.Join(root, "development", "docker-compose.yml")
	baseArgs := append([]string{"compose", "-f", composeFile}, args...)
	cmd := exec.CommandContext(ctx, "docker", baseArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}
