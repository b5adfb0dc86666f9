package config

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func resetConfig(t *testing.T) {
	t.Helper()
	orig := Config
	t.Cleanup(func() { Config = orig })
}

func TestLoadAppConfig_FromFile(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	yml := `server:
  port: 9090
client:
  baseURL: http://localhost:8081/ewp
  connectTimeoutMS: 1000
  requestTimeoutMS: 2000
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", Config.Server.Port)
	}
	if Config.Client.BaseURL != "http://localhost:8081/ewp" {
		t.Errorf("unexpected base URL %s", Config.Client.BaseURL)
	}
	if Config.Client.ConnectTimeoutMS != 1000 || Config.Client.RequestTimeoutMS != 2000 {
		t.Errorf("unexpected timeouts: %+v", Config.Client)
	}
}

func TestLoadAppConfig_MissingFileUsesDefaults(t *testing.T) {
	resetConfig(t)
	chdir(t, t.TempDir())

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("missing config.yml should not fail: %v", err)
	}
	if Config.Server.Port != defaultPort {
		t.Errorf("expected default port %d, got %d", defaultPort, Config.Server.Port)
	}
	if Config.Client.ConnectTimeoutMS != defaultConnectTimeoutMS {
		t.Errorf("expected default connect timeout, got %d", Config.Client.ConnectTimeoutMS)
	}
	if Config.Client.RequestTimeoutMS != defaultRequestTimeoutMS {
		t.Errorf("expected default request timeout, got %d", Config.Client.RequestTimeoutMS)
	}
	if Config.Client.BaseURL != "" {
		t.Errorf("base URL default belongs to the client package, got %q", Config.Client.BaseURL)
	}
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("client: [[["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	if err := LoadAppConfig(); err == nil {
		t.Error("invalid YAML should return an error")
	}
}

func TestLoadAppConfig_InvalidBaseURL(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	yml := "client:\n  baseURL: not-a-url\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)

	if err := LoadAppConfig(); err == nil {
		t.Error("non-URL baseURL should fail validation")
	}
}

func TestLoadAppConfig_EnvOverridesFile(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	yml := "server:\n  port: 9090\nclient:\n  baseURL: http://file.example/ewp\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	chdir(t, dir)
	t.Setenv("TAN_PORT", "7070")
	t.Setenv("TAN_BASE_URL", "http://env.example/ewp")
	t.Setenv("TAN_REQUEST_TIMEOUT_MS", "2500")

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Server.Port != 7070 {
		t.Errorf("env port should win, got %d", Config.Server.Port)
	}
	if Config.Client.BaseURL != "http://env.example/ewp" {
		t.Errorf("env base URL should win, got %s", Config.Client.BaseURL)
	}
	if Config.Client.RequestTimeoutMS != 2500 {
		t.Errorf("env request timeout should win, got %d", Config.Client.RequestTimeoutMS)
	}
}

func TestLoadAppConfig_IgnoresUnparseableEnvInt(t *testing.T) {
	resetConfig(t)
	chdir(t, t.TempDir())
	t.Setenv("TAN_PORT", "not-a-number")

	if err := LoadAppConfig(); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if Config.Server.Port != defaultPort {
		t.Errorf("unparseable env int should fall back to default, got %d", Config.Server.Port)
	}
}
