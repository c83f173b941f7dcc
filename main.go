package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"contexto/cmd"
	"contexto/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	if err != nil {
		// Flag errors happen before the logger exists.
		if logging.Logger == nil {
			log.Fatalf("contexto execution failed: %v", err)
		}
		logging.Logger.Fatal("contexto execution failed", zap.Error(err))
	}

	if logging.Logger == nil {
		return
	}
	// Check if stderr is a terminal or a regular file before attempting to sync.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.Logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
