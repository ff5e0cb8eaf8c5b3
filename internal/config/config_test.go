package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_EnvOverride 环境变量 FT_SERVER_PORT 应该覆盖配置文件里的 server.port
func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `server:
  address: "127.0.0.1"
  port: 5000
  mode: "test"
database:
  path: "data/test.db"
jwt:
  secret: "test-secret"
  expire_hours: 1
security:
  bcrypt_cost: 4
app:
  page_size: 20
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("FT_SERVER_PORT", "9000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("server.port = %d, want 9000 (env override)", cfg.Server.Port)
	}
	// 没有被环境变量覆盖的 key 保持文件里的值
	if cfg.Server.Address != "127.0.0.1" {
		t.Errorf("server.address = %q, want 127.0.0.1", cfg.Server.Address)
	}
	if cfg.App.PageSize != 20 {
		t.Errorf("app.page_size = %d, want 20", cfg.App.PageSize)
	}
}
