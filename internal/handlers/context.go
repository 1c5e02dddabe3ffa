package handlers

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/config"
	"github.com/aaronzipp/classroom-arcade/internal/game"
	"github.com/aaronzipp/classroom-arcade/internal/hangman"
	"github.com/aaronzipp/classroom-arcade/internal/models"
	"github.com/aaronzipp/classroom-arcade/internal/store"
	"github.com/aaronzipp/classroom-arcade/internal/tictactoe"
)

// Context carries the dependencies shared by every screen
type Context struct {
	SessionStore *store.SessionStore
	Config       *config.Config
	Logger       *zap.Logger
	Words        hangman.WordPool
	Selector     hangman.Selector // nil draws from the process-wide source
}

// NewSession creates and stores a session for the given exercise
func (ctx *Context) NewSession(kind models.Kind) *models.Session {
	session := &models.Session{
		ID:        uuid.New().String(),
		Name:      game.GetUniqueSessionName(ctx.SessionStore),
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	switch kind {
	case models.KindTicTacToe:
		session.TicTacToe = tictactoe.NewEngine()
	case models.KindHangman:
		var opts []hangman.Option
		if ctx.Selector != nil {
			opts = append(opts, hangman.WithSelector(ctx.Selector))
		}
		session.Hangman = hangman.NewEngine(ctx.Words, opts...)
	}
	ctx.SessionStore.Set(session)

	ctx.Logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("name", session.Name),
		zap.String("kind", string(kind)),
	)
	return session
}

// Open returns the screen for an existing session
func (ctx *Context) Open(session *models.Session) Controller {
	switch session.Kind {
	case models.KindTicTacToe:
		return newTicTacToeController(ctx, session)
	case models.KindHangman:
		return newHangmanController(ctx, session)
	default:
		ctx.Logger.Warn("unknown session kind", zap.String("kind", string(session.Kind)))
		return newMenuController(ctx)
	}
}

// removeFinished deletes every session whose current game is over
func (ctx *Context) removeFinished() int {
	n := 0
	for _, s := range ctx.SessionStore.List() {
		if !game.Status(s, ctx.Config.MaxMisses).Finished() {
			continue
		}
		ctx.SessionStore.Delete(s.ID)
		ctx.Logger.Info("session removed",
			zap.String("session_id", s.ID),
			zap.String("name", s.Name),
			zap.Int("played", s.Score.Played),
		)
		n++
	}
	return n
}

// recordOutcome scores a finished game once and logs it
func (ctx *Context) recordOutcome(session *models.Session) {
	outcome, recorded := game.RecordOutcome(session, ctx.Config.MaxMisses)
	if !recorded {
		return
	}
	ctx.Logger.Info("game finished",
		zap.String("session_id", session.ID),
		zap.String("kind", string(session.Kind)),
		zap.String("outcome", outcome),
		zap.Int("played", session.Score.Played),
	)
}
