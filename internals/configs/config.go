package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret           string
	GoogleClientID      string
	GoogleClientSecret  string
	GoogleRefreshToken  string
	SyncContinueOnError bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = MustEnv("GOOGLE_CLIENT_ID")
	GoogleClientSecret = MustEnv("GOOGLE_CLIENT_SECRET")
	GoogleRefreshToken = MustEnv("GOOGLE_REFRESH_TOKEN")
	SyncContinueOnError = GetEnv("SYNC_CONTINUE_ON_ERROR") == "true"

	// DB config wajib lengkap; tidak ada fallback kredensial hard-coded
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"} {
		MustEnv(key)
	}

	if JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET belum diset, route admin berjalan TANPA guard (dev only)")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// MustEnv fatal saat key kosong — konfigurasi wajib, bukan default diam-diam.
func MustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ %s belum diset!", key)
	}
	log.Printf("✅ %s berhasil dimuat.", key)
	return value
}
