package tracing

import (
	"context"
	"testing"

	"github.com/Manav2209/s30-assignment-4/config"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.OtelConfig{Enabled: false})
	if err != nil {
		t.Fatalf("未启用时 Setup 不应失败: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("空 shutdown 不应返回错误: %v", err)
	}
}
