package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm 转换后的重复键", gorm.ErrDuplicatedKey, true},
		{"包装后的重复键", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"pgconn 23505", &pgconn.PgError{Code: "23505"}, true},
		{"包装后的 pgconn 23505", fmt.Errorf("tx: %w", &pgconn.PgError{Code: "23505"}), true},
		{"排他约束不算唯一冲突", &pgconn.PgError{Code: "23P01"}, false},
		{"普通错误", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v)=%v，期望 %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsExclusionViolation(t *testing.T) {
	if !IsExclusionViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})) {
		t.Error("期望 23P01 被识别为排他约束冲突")
	}
	if IsExclusionViolation(&pgconn.PgError{Code: "23505"}) {
		t.Error("23505 不应被识别为排他约束冲突")
	}
	if IsExclusionViolation(nil) {
		t.Error("nil 不应被识别为排他约束冲突")
	}
}
