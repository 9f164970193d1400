// Package notify implements the nightly backlog-reminder fan-out.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"backlogapi/internal/metadata"
	"backlogapi/internal/platform/fcm"
	"backlogapi/internal/usecase"
)

// defaultPace is the fixed delay between sends; a throttle for the push
// transport, not a correctness requirement.
const defaultPace = 100 * time.Millisecond

// NameResolver resolves a game id to a display name, substituting a
// placeholder when the catalog is degraded.
type NameResolver interface {
	DisplayName(ctx context.Context, gameID int64) string
}

var _ NameResolver = (*metadata.Resolver)(nil)

type Dispatcher struct {
	library usecase.LibraryRepository
	tokens  usecase.PushTokenRepository
	names   NameResolver
	sender  fcm.Sender
	pace    time.Duration
	sleep   func(ctx context.Context, d time.Duration)
}

func NewDispatcher(library usecase.LibraryRepository, tokens usecase.PushTokenRepository, names NameResolver, sender fcm.Sender) *Dispatcher {
	return &Dispatcher{
		library: library,
		tokens:  tokens,
		names:   names,
		sender:  sender,
		pace:    defaultPace,
		sleep:   sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Run sends one reminder to every user that has both a push token and at
// least one backlogged game. Users are processed sequentially with a
// pacing delay; a failure for one user is logged and never stops the rest
// of the batch.
func (d *Dispatcher) Run(ctx context.Context) error {
	recipients, err := d.library.ListReminderRecipients(ctx)
	if err != nil {
		return fmt.Errorf("list reminder recipients: %w", err)
	}

	log.Printf("notify: sending backlog reminders recipient_count=%d", len(recipients))

	for i, userID := range recipients {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			d.sleep(ctx, d.pace)
		}
		if err := d.notifyUser(ctx, userID); err != nil {
			log.Printf("notify: reminder failed user_id=%s err=%v", userID, err)
		}
	}

	log.Printf("notify: backlog reminder run finished")
	return nil
}

func (d *Dispatcher) notifyUser(ctx context.Context, userID string) error {
	game, err := d.library.RandomBacklogged(ctx, userID)
	if errors.Is(err, usecase.ErrNotFound) {
		// Status changed since the recipient query ran; nothing to remind
		// this user about anymore.
		return nil
	}
	if err != nil {
		return fmt.Errorf("pick backlogged game: %w", err)
	}

	name := d.names.DisplayName(ctx, game.IGDBGameID)

	tok, err := d.tokens.Get(ctx, userID)
	if errors.Is(err, usecase.ErrNotFound) {
		// Token removed mid-run; skip.
		return nil
	}
	if err != nil {
		return fmt.Errorf("get push token: %w", err)
	}

	receipt, err := d.sender.Send(ctx, fcm.Message{
		Token: tok.Token,
		Title: "Time to play! 🎮",
		Body:  fmt.Sprintf("%s has been waiting in your backlog. Why not give it a try today?", name),
		Data: map[string]string{
			"type":         "backlog_reminder",
			"game_id":      game.ID,
			"igdb_game_id": strconv.FormatInt(game.IGDBGameID, 10),
		},
	})
	if err != nil {
		if errors.Is(err, fcm.ErrTokenNotRegistered) {
			if delErr := d.tokens.Delete(ctx, userID); delErr != nil {
				log.Printf("notify: pruning dead token failed user_id=%s err=%v", userID, delErr)
			} else {
				log.Printf("notify: pruned dead push token user_id=%s", userID)
			}
		}
		return fmt.Errorf("send reminder igdb_game_id=%d: %w", game.IGDBGameID, err)
	}

	log.Printf("notify: reminder sent user_id=%s igdb_game_id=%d receipt=%s", userID, game.IGDBGameID, receipt)
	return nil
}
