package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name: "Development with defaults",
			config: Config{
				Env:        "development",
				Port:       "8080",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "password",
				UploadDir:  "uploads",
			},
			expectError: false,
		},
		{
			name: "Missing port",
			config: Config{
				Env:       "development",
				JWTSecret: "secret",
				UploadDir: "uploads",
			},
			expectError: true,
		},
		{
			name: "Missing JWT secret",
			config: Config{
				Env:       "development",
				Port:      "8080",
				UploadDir: "uploads",
			},
			expectError: true,
		},
		{
			name: "Production with default JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "your-secret-key-change-in-production",
				DBPassword: "secure-password",
				UploadDir:  "uploads",
			},
			expectError: true,
		},
		{
			name: "Production with short JWT secret",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "short",
				DBPassword: "secure-password",
				UploadDir:  "uploads",
			},
			expectError: true,
		},
		{
			name: "Production with weak DB password",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "password",
				UploadDir:  "uploads",
			},
			expectError: true,
		},
		{
			name: "Production fully configured",
			config: Config{
				Env:        "production",
				Port:       "8080",
				JWTSecret:  "secure-secret-at-least-32-chars-long",
				DBPassword: "secure-password",
				DBSSLMode:  "require",
				UploadDir:  "uploads",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
