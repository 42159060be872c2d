package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/barbelltracker/internal"
	"github.com/2beens/barbelltracker/internal/config"
	"github.com/2beens/barbelltracker/internal/logging"
	"github.com/2beens/barbelltracker/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	hashToken := flag.String("hash-token", "", "print the bcrypt hash of the given write token and exit")
	flag.Parse()

	if *hashToken != "" {
		hash, err := pkg.HashPassword(*hashToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash token: %s\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "barbell-tracker",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	writeTokenHash := os.Getenv("TRACKER_TOKEN_HASH")
	if writeTokenHash == "" {
		log.Errorf("write token hash not set, all writes will be refused. use TRACKER_TOKEN_HASH (see -hash-token)")
	}

	dbUser := os.Getenv("TRACKER_DB_USER")
	dbPassword := os.Getenv("TRACKER_DB_PASS")
	if dbPassword == "" {
		log.Warnln("db password not set. use TRACKER_DB_PASS")
	}

	redisPassword := os.Getenv("TRACKER_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use TRACKER_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			DBUser:                  dbUser,
			DBPassword:              dbPassword,
			RedisPassword:           redisPassword,
			WriteTokenHash:          writeTokenHash,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
