package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, searchCacheTTL,
		kafkaBrokers, kafkaTopic, logLevel,
		jwtSecret, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "courses" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" || searchCacheTTL != 15 {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if kafkaBrokers != "" || kafkaTopic != "enrollments" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaBrokers, kafkaTopic)
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 3600 {
		t.Errorf("unexpected jwt config: %v/%v", jwtSecret, jwtExp)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()

	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("POSTGRES_HOST", "db.internal")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_DB", "registrar")
	os.Setenv("KAFKA_BROKERS", "kafka:9092")
	os.Setenv("KAFKA_ENROLLMENTS_TOPIC", "course-enrollments")
	os.Setenv("JWT_EXP_SECOND", "120")
	defer resetEnv()

	appHost, appPort,
		pgHost, pgPort, _, _, pgDB,
		_, _,
		_, _, _, _, _,
		kafkaBrokers, kafkaTopic, logLevel,
		_, jwtExp, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "0.0.0.0" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}
	if pgHost != "db.internal" || pgPort != 5433 || pgDB != "registrar" {
		t.Errorf("unexpected postgres config: %v/%v/%v", pgHost, pgPort, pgDB)
	}
	if kafkaBrokers != "kafka:9092" || kafkaTopic != "course-enrollments" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaBrokers, kafkaTopic)
	}
	if jwtExp != 120 {
		t.Errorf("unexpected jwt exp: %v", jwtExp)
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}
