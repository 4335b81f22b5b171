package connection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMongoDB_GenerateConnectionString(t *testing.T) {
	tests := []struct {
		name string
		m    *MongoDB
		want string
	}{
		{
			name: "HostOnly",
			m:    &MongoDB{Host: "cluster0.example.net"},
			want: "mongodb+srv://cluster0.example.net",
		},
		{
			name: "UserAndPassword",
			m:    &MongoDB{Username: "orders", Password: "s3cret", Host: "db", Args: "retryWrites=true"},
			want: "mongodb+srv://orders:s3cret@db/?retryWrites=true",
		},
		{
			name: "UserNoPassword",
			m:    &MongoDB{Username: "orders", Host: "db", Port: "27017"},
			want: "mongodb+srv://orders@db:27017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.m.GenerateConnectionString()
			require.Equal(t, tt.want, tt.m.ConnectionString)
		})
	}
}

func TestPing_NilClient(t *testing.T) {
	require.Error(t, Ping(context.Background(), nil))
}
