package config

import (
	"testing"
	"time"

	"github.com/dealerhub/sales-api/pkg/wheel"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "dealer-sales-api", cfg.App.Name)
				assert.Equal(t, "8080", cfg.App.Port)
				assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Database.Timezone)
				assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiryHours)
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, 100, cfg.RateLimit.Requests)
			},
		},
		{
			name: "env overrides defaults",
			env: map[string]string{
				"APP_ENV":          "production",
				"APP_PORT":         "9090",
				"DB_NAME":          "showroom",
				"JWT_EXPIRY_HOURS": "2",
				"LOG_LEVEL":        "debug",
				"ADMIN_EMAIL":      "admin@dealer.vn",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "production", cfg.App.Env)
				assert.Equal(t, "9090", cfg.App.Port)
				assert.Equal(t, "showroom", cfg.Database.Name)
				assert.Equal(t, 2*time.Hour, cfg.JWT.ExpiryHours)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "admin@dealer.vn", cfg.Seed.AdminEmail)
			},
		},
		{
			name: "catalog from JSON env",
			env: map[string]string{
				"VEHICLE_MODELS": `{"vf8":"VinFast VF 8","cx5":"Mazda CX-5","accent":"Hyundai Accent"}`,
				"SHOWROOMS":      `{"hcm-q7":"Quận 7","hn-cg":"Cầu Giấy"}`,
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, wheel.Dictionary{
					{Code: "vf8", Label: "VinFast VF 8"},
					{Code: "cx5", Label: "Mazda CX-5"},
					{Code: "accent", Label: "Hyundai Accent"},
				}, cfg.Catalog.VehicleModels)
				assert.Equal(t, map[string]string{"hcm-q7": "Quận 7", "hn-cg": "Cầu Giấy"}, cfg.Catalog.Showrooms)
			},
		},
		{
			name: "malformed vehicle models are ignored",
			env:  map[string]string{"VEHICLE_MODELS": `["vf8"]`},
			want: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Catalog.VehicleModels)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			v := viper.New()
			v.AutomaticEnv()

			tt.want(t, fromViper(v))
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "sales",
		User:     "u",
		Password: "p",
		SSLMode:  "disable",
		Timezone: "Asia/Ho_Chi_Minh",
	}
	assert.Equal(t, "host=db user=u password=p dbname=sales port=5432 sslmode=disable TimeZone=Asia/Ho_Chi_Minh", cfg.DSN())
}
