// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/stratastor/nimbus/pkg/errors"
)

var (
	shutdownHooks []func()
	cancel        context.CancelFunc
)

func RegisterShutdownHook(hook func()) {
	shutdownHooks = append(shutdownHooks, hook)
}

func RegisterContextCanceller(c context.CancelFunc) {
	cancel = c
}

func HandleSignals(ctx context.Context) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	for {
		select {
		case sig := <-stop:
			switch sig {
			case syscall.SIGTERM, syscall.SIGINT:
				shutdown()
				return
			case syscall.SIGHUP:
				// Config reload is not supported; Azure credentials are
				// resolved once at startup.
			}
		case <-ctx.Done():
			return
		}
	}
}

func shutdown() {
	if cancel != nil {
		cancel()
	}
	// Hooks run in reverse registration order so the PID file outlives
	// the server teardown it guards.
	for i := len(shutdownHooks) - 1; i >= 0; i-- {
		shutdownHooks[i]()
	}
	os.Exit(0)
}

// EnsureSingleInstance claims the PID file, refusing to start when a live
// process already holds it. Stale files from crashed runs are cleared.
func EnsureSingleInstance(pidPath string) error {
	if pidPath == "" {
		return errors.New(errors.LifecyclePIDFileError, "empty PID file path")
	}

	if _, err := os.Stat(pidPath); err == nil {
		pidBytes, err := os.ReadFile(pidPath)
		if err != nil {
			return errors.New(errors.LifecyclePIDFileError, err.Error())
		}

		content := strings.TrimSpace(string(pidBytes))
		if content == "" {
			os.Remove(pidPath)
		} else {
			pid, err := strconv.Atoi(content)
			if err != nil {
				return errors.New(errors.LifecyclePIDFileError,
					fmt.Sprintf("invalid PID format: %v", err))
			}

			process, err := os.FindProcess(pid)
			if err == nil {
				if err := process.Signal(syscall.Signal(0)); err == nil {
					return errors.New(errors.LifecycleAlreadyRunning,
						fmt.Sprintf("PID %d", pid))
				}
			}
			// Process not running, remove stale PID file
			os.Remove(pidPath)
		}
	}

	currentPid := os.Getpid()
	if err := os.WriteFile(pidPath, []byte(strconv.Itoa(currentPid)), 0644); err != nil {
		return errors.New(errors.LifecyclePIDFileError, err.Error())
	}

	RegisterShutdownHook(func() {
		os.Remove(pidPath)
	})

	return nil
}
