package main

import (
	"context"
	"log"
	"time"

	"corretoraBack/internal/services"
)

// startSessionCleaner ends idle sessions every interval until ctx is done.
func startSessionCleaner(ctx context.Context, svc *services.SessionService, interval time.Duration, infoLog, errorLog *log.Logger) {
	if svc == nil || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		run := func() {
			expired, err := svc.ExpireIdle(ctx, time.Now())
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("session cleaner: %v", err)
				}
				return
			}
			if expired > 0 && infoLog != nil {
				infoLog.Printf("session cleaner: ended %d idle sessions", expired)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
