package storage

import (
	"context"
	"testing"

	"farmacia/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateMinIOConfig(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "exports"}

	tests := []struct {
		name    string
		mutate  func(c *config.MinIOConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.MinIOConfig) {}},
		{name: "missing endpoint", mutate: func(c *config.MinIOConfig) { c.Endpoint = "" }, wantErr: "minio endpoint is required"},
		{name: "missing secret", mutate: func(c *config.MinIOConfig) { c.SecretKey = "" }, wantErr: "minio credentials are required"},
		{name: "missing bucket", mutate: func(c *config.MinIOConfig) { c.Bucket = "" }, wantErr: "minio bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := ValidateMinIOConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	s, err := NewMinIO(context.Background(), config.MinIOConfig{})
	assert.Error(t, err)
	assert.Nil(t, s)
}
