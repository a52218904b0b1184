package main

import (
	"assetconsole/apiclient"
	"assetconsole/console"
	"assetconsole/providers"
	"assetconsole/providers/configProvider"
	"assetconsole/providers/loggerProvider"
	"assetconsole/providers/redisProvider"
	"assetconsole/providers/sessionProvider"
	"assetconsole/querycache"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := configprovider.NewConfigProvider()
	_ = cfg.LoadEnv()
	logger := loggerProvider.NewLogProvider(cfg.GetLogLevel())
	logger.InitLogger()
	defer logger.SyncLogger()

	store, closeStore, err := credentialStore(cfg)
	if err != nil {
		logger.GetLogger().Fatal("failed to open session store", zap.Error(err))
	}
	defer closeStore()

	client := apiclient.NewClient(cfg.GetAPIBaseURL(), store, logger.GetLogger())
	c := console.New(client, store, querycache.New(cfg.GetCacheTTL(), logger.GetLogger()), logger.GetLogger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, c, os.Args[1:])
	if err != nil {
		report(err)
		stop()
		logger.SyncLogger()
		os.Exit(1)
	}
	if result != nil {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	}
}

func credentialStore(cfg providers.ConfigProvider) (providers.CredentialStore, func(), error) {
	switch cfg.GetSessionStore() {
	case "redis":
		store := redisprovider.NewRedisCredentialStore(cfg.GetRedisAddr(), cfg.GetSessionKeyPrefix())
		if err := store.Ping(context.Background()); err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "file", "":
		return sessionprovider.NewFileStore(cfg.GetSessionFile()), func() {}, nil
	default:
		return nil, nil, errors.Errorf("unknown SESSION_STORE %q", cfg.GetSessionStore())
	}
}

func report(err error) {
	switch {
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, console.ErrSessionExpired):
		fmt.Fprintln(os.Stderr, "Your session has expired. Run `assetctl login` to sign in again.")
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "Error:", err)
		usage()
	case apiclient.StatusCode(err) != 0:
		fmt.Fprintf(os.Stderr, "Error (%d): %s\n", apiclient.StatusCode(err), apiclient.Message(err))
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: assetctl <command> [flags]

  login | register | logout | whoami | dashboard
  assets      list | get | create | update | status | delete | request
  requests    mine | list | approve | reject
  users       list | get | update | upload-image | delete-image
  categories  list | all | get | create | update | delete | toggle | browse

Run "assetctl <command> [subcommand] -h" for flags.
`)
}
