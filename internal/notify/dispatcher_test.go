package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backlogapi/internal/entity"
	"backlogapi/internal/platform/fcm"
	"backlogapi/internal/usecase"
)

type fakeLibrary struct {
	recipients []string
	backlogged map[string]entity.UserGame
	listErr    error
}

func (f *fakeLibrary) ListReminderRecipients(_ context.Context) ([]string, error) {
	return f.recipients, f.listErr
}

func (f *fakeLibrary) RandomBacklogged(_ context.Context, userID string) (entity.UserGame, error) {
	g, ok := f.backlogged[userID]
	if !ok {
		return entity.UserGame{}, usecase.ErrNotFound
	}
	return g, nil
}

func (f *fakeLibrary) List(context.Context, string, usecase.LibraryListParams) ([]entity.UserGame, int, error) {
	panic("not used")
}
func (f *fakeLibrary) Get(context.Context, string, string) (entity.UserGame, error) {
	panic("not used")
}
func (f *fakeLibrary) Add(context.Context, *entity.UserGame) error { panic("not used") }
func (f *fakeLibrary) Update(context.Context, string, string, map[string]any) error {
	panic("not used")
}
func (f *fakeLibrary) Delete(context.Context, string, string) error { panic("not used") }

type fakeTokens struct {
	tokens  map[string]string
	deleted []string
}

func (f *fakeTokens) Get(_ context.Context, userID string) (entity.PushToken, error) {
	tok, ok := f.tokens[userID]
	if !ok {
		return entity.PushToken{}, usecase.ErrNotFound
	}
	return entity.PushToken{UserID: userID, Token: tok}, nil
}

func (f *fakeTokens) Save(_ context.Context, userID, token string) error {
	f.tokens[userID] = token
	return nil
}

func (f *fakeTokens) Delete(_ context.Context, userID string) error {
	f.deleted = append(f.deleted, userID)
	delete(f.tokens, userID)
	return nil
}

type fakeNames struct {
	names map[int64]string
}

func (f *fakeNames) DisplayName(_ context.Context, gameID int64) string {
	if n, ok := f.names[gameID]; ok {
		return n
	}
	return "a game"
}

type fakeSender struct {
	sent    []fcm.Message
	failFor map[string]error
}

func (f *fakeSender) Send(_ context.Context, msg fcm.Message) (string, error) {
	if err, ok := f.failFor[msg.Token]; ok {
		return "", err
	}
	f.sent = append(f.sent, msg)
	return fmt.Sprintf("receipt-%d", len(f.sent)), nil
}

func newTestDispatcher(lib *fakeLibrary, tokens *fakeTokens, names *fakeNames, sender *fakeSender) *Dispatcher {
	d := NewDispatcher(lib, tokens, names, sender)
	d.pace = 0
	d.sleep = func(context.Context, time.Duration) {}
	return d
}

func game(userID string, gameID int64) entity.UserGame {
	return entity.UserGame{ID: "row-" + userID, UserID: userID, IGDBGameID: gameID, Status: entity.StatusBacklogged}
}

func TestRun_SendsToAllRecipients(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"alice", "bob"},
		backlogged: map[string]entity.UserGame{"alice": game("alice", 42), "bob": game("bob", 7)},
	}
	tokens := &fakeTokens{tokens: map[string]string{"alice": "tok-a", "bob": "tok-b"}}
	names := &fakeNames{names: map[int64]string{42: "Example Game", 7: "Other Game"}}
	sender := &fakeSender{}

	err := newTestDispatcher(lib, tokens, names, sender).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "tok-a", sender.sent[0].Token)
	assert.Contains(t, sender.sent[0].Body, "Example Game")
	assert.Equal(t, "backlog_reminder", sender.sent[0].Data["type"])
	assert.Equal(t, "row-alice", sender.sent[0].Data["game_id"])
	assert.Equal(t, "42", sender.sent[0].Data["igdb_game_id"])
}

func TestRun_OneUserFailureDoesNotStopOthers(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"a", "b", "c"},
		backlogged: map[string]entity.UserGame{"a": game("a", 1), "b": game("b", 2), "c": game("c", 3)},
	}
	tokens := &fakeTokens{tokens: map[string]string{"a": "tok-a", "b": "tok-b", "c": "tok-c"}}
	sender := &fakeSender{failFor: map[string]error{"tok-b": errors.New("transport exploded")}}

	err := newTestDispatcher(lib, tokens, &fakeNames{}, sender).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "tok-a", sender.sent[0].Token)
	assert.Equal(t, "tok-c", sender.sent[1].Token)
	assert.Empty(t, tokens.deleted, "a generic failure must not prune the token")
}

func TestRun_PrunesDeadTokenWithoutAffectingOthers(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"x", "y"},
		backlogged: map[string]entity.UserGame{"x": game("x", 1), "y": game("y", 2)},
	}
	tokens := &fakeTokens{tokens: map[string]string{"x": "tok-x", "y": "tok-y"}}
	sender := &fakeSender{failFor: map[string]error{
		"tok-x": fmt.Errorf("%w: unregistered", fcm.ErrTokenNotRegistered),
	}}

	err := newTestDispatcher(lib, tokens, &fakeNames{}, sender).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, tokens.deleted)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "tok-y", sender.sent[0].Token)
}

func TestRun_SkipsUserWhoseBacklogEmptiedMidRun(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"gone", "still-here"},
		backlogged: map[string]entity.UserGame{"still-here": game("still-here", 5)},
	}
	tokens := &fakeTokens{tokens: map[string]string{"gone": "tok-g", "still-here": "tok-s"}}
	sender := &fakeSender{}

	err := newTestDispatcher(lib, tokens, &fakeNames{}, sender).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "tok-s", sender.sent[0].Token)
}

func TestRun_SkipsUserWhoseTokenVanishedMidRun(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"u"},
		backlogged: map[string]entity.UserGame{"u": game("u", 5)},
	}
	tokens := &fakeTokens{tokens: map[string]string{}}
	sender := &fakeSender{}

	err := newTestDispatcher(lib, tokens, &fakeNames{}, sender).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sender.sent)
	assert.Empty(t, tokens.deleted)
}

func TestRun_PlaceholderNameWhenCatalogDegraded(t *testing.T) {
	lib := &fakeLibrary{
		recipients: []string{"u"},
		backlogged: map[string]entity.UserGame{"u": game("u", 99)},
	}
	tokens := &fakeTokens{tokens: map[string]string{"u": "tok-u"}}
	sender := &fakeSender{}

	err := newTestDispatcher(lib, tokens, &fakeNames{}, sender).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Body, "a game has been waiting")
}

func TestRun_RecipientQueryFailureAborts(t *testing.T) {
	lib := &fakeLibrary{listErr: errors.New("db down")}
	err := newTestDispatcher(lib, &fakeTokens{}, &fakeNames{}, &fakeSender{}).Run(context.Background())
	assert.Error(t, err)
}
