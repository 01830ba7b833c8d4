package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigPingTimeout(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want time.Duration
	}{
		{
			name: "zero falls back to default",
			cfg:  Config{Addr: "localhost:6379"},
			want: defaultPingTimeout,
		},
		{
			name: "negative falls back to default",
			cfg:  Config{Addr: "localhost:6379", PingTimeout: -time.Second},
			want: defaultPingTimeout,
		},
		{
			name: "explicit timeout kept",
			cfg:  Config{Addr: "localhost:6379", PingTimeout: 500 * time.Millisecond},
			want: 500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.pingTimeout())
		})
	}
}
