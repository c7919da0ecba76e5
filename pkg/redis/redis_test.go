package redis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Manav2209/s30-assignment-4/config"
	"github.com/Manav2209/s30-assignment-4/internal/api/middleware"
)

// ── 测试辅助 ──

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client, err := NewClient(&config.RedisConfig{Addr: srv.Addr()}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient 应成功: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

// ── NewClient ──

func TestNewClient_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	if _, err := NewClient(&config.RedisConfig{Addr: addr}, zap.NewNop()); err == nil {
		t.Fatal("期望 Redis 不可达时返回错误")
	}
}

// ── CheckRateLimit ──

func TestCheckRateLimit_FixedWindow(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()
	key := "rate_limit:/api/v1/appointments:user-1"

	for i := 1; i <= 3; i++ {
		allowed, err := client.CheckRateLimit(ctx, key, 3, time.Minute)
		if err != nil {
			t.Fatalf("第 %d 次请求出错: %v", i, err)
		}
		if !allowed {
			t.Fatalf("第 %d 次请求应放行", i)
		}
	}

	allowed, err := client.CheckRateLimit(ctx, key, 3, time.Minute)
	if err != nil {
		t.Fatalf("第 4 次请求出错: %v", err)
	}
	if allowed {
		t.Error("超出上限的请求应被拒绝")
	}

	// 过期时间只在窗口首个请求时设置
	if ttl := srv.TTL(key); ttl <= 0 || ttl > time.Minute {
		t.Errorf("期望 0 < ttl <= 1m，实际 %v", ttl)
	}
	if got, _ := srv.Get(key); got != "4" {
		t.Errorf("期望计数为 4，实际 %q", got)
	}

	// 窗口过期后重新计数
	srv.FastForward(time.Minute + time.Second)
	allowed, err = client.CheckRateLimit(ctx, key, 3, time.Minute)
	if err != nil || !allowed {
		t.Errorf("新窗口的首个请求应放行，allowed=%v err=%v", allowed, err)
	}
}

func TestCheckRateLimit_KeysIndependent(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if allowed, _ := client.CheckRateLimit(ctx, "k:user-1", 1, time.Minute); !allowed {
		t.Fatal("user-1 首个请求应放行")
	}
	if allowed, _ := client.CheckRateLimit(ctx, "k:user-1", 1, time.Minute); allowed {
		t.Fatal("user-1 第二个请求应被拒绝")
	}
	if allowed, _ := client.CheckRateLimit(ctx, "k:user-2", 1, time.Minute); !allowed {
		t.Error("user-2 不应受 user-1 计数影响")
	}
}

func TestCheckRateLimit_DefaultWindow(t *testing.T) {
	client, srv := newTestClient(t)

	if _, err := client.CheckRateLimit(context.Background(), "k:zero", 5, 0); err != nil {
		t.Fatalf("CheckRateLimit 出错: %v", err)
	}
	if ttl := srv.TTL("k:zero"); ttl != time.Minute {
		t.Errorf("窗口为 0 时期望按 1m 过期，实际 %v", ttl)
	}
}

func TestCheckRateLimit_ServerError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetError("LOADING Redis is loading the dataset in memory")

	allowed, err := client.CheckRateLimit(context.Background(), "k:err", 5, time.Minute)
	if err == nil {
		t.Fatal("期望 Redis 出错时返回错误")
	}
	if allowed {
		t.Error("出错时不应报告放行，由调用方决定降级")
	}
}

// ── 与限流中间件联动 ──

func TestRateLimitMiddleware_WithRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client, srv := newTestClient(t)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.ContextKeyUserID, "user-1") })
	r.POST("/appointments",
		middleware.RateLimit(client, 2, time.Minute, zap.NewNop()),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)

	post := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/appointments", nil))
		return w.Code
	}

	if code := post(); code != http.StatusCreated {
		t.Fatalf("第 1 次期望 201，实际 %d", code)
	}
	if code := post(); code != http.StatusCreated {
		t.Fatalf("第 2 次期望 201，实际 %d", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("第 3 次期望 429，实际 %d", code)
	}
	if _, err := srv.Get("rate_limit:/appointments:user-1"); err != nil {
		t.Errorf("期望按路由与用户计数: %v", err)
	}

	// Redis 故障时降级放行
	srv.SetError("ERR server unavailable")
	if code := post(); code != http.StatusCreated {
		t.Errorf("Redis 出错时期望放行 201，实际 %d", code)
	}
}
