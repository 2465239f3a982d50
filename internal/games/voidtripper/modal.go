package voidtripper

import (
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// quizState is an open chess-dimension quiz. Timers use host wall time so
// the world clock stays frozen while it is shown.
type quizState struct {
	puzzle   Puzzle
	openedAt time.Time
}

// crashState is the fake crash screen.
type crashState struct {
	message string
	until   time.Time
}

func (g *Game) openQuiz(wall time.Time) {
	g.quiz = &quizState{puzzle: *g.pendingQuiz, openedAt: wall}
	g.pendingQuiz = nil
	g.phase = PhaseQuiz
}

// stepQuiz waits for an answer. Every answer is accepted as given: yes is
// the brilliant move, no disappoints the chess gods.
func (g *Game) stepQuiz(in core.InputFrame) {
	if g.quiz == nil {
		g.resume(in.Now)
		return
	}

	switch {
	case in.Has(core.ActionAnswerYes):
		g.resolveQuiz(true, in.Now)
	case in.Has(core.ActionAnswerNo):
		g.resolveQuiz(false, in.Now)
	case g.quizTimedOut(in.Now):
		g.resolveQuiz(false, in.Now)
	}
}

func (g *Game) quizTimedOut(wall time.Time) bool {
	timeout := g.cfg.PowerUps.QuizTimeout
	if timeout <= 0 || wall.IsZero() || g.quiz.openedAt.IsZero() {
		return false
	}
	return wall.Sub(g.quiz.openedAt) >= timeout
}

func (g *Game) resolveQuiz(correct bool, wall time.Time) {
	cx, cy := g.worldW/2, g.worldH/2
	if correct {
		g.addScore(g.cfg.PowerUps.QuizReward)
		g.addOverlayLife(msgQuizCorrect, cx, cy, StylePiece, quizOverlayLife)
	} else {
		g.addOverlayLife(msgQuizWrong, cx, cy, StyleMeta, quizOverlayLife)
	}
	g.quiz = nil
	g.resume(wall)
}

func (g *Game) openCrash(wall time.Time) {
	g.crash = crashState{
		message: core.Pick(g.rng, crashMessages),
		until:   wall.Add(g.cfg.Events.FakeCrashDuration),
	}
	g.phase = PhaseCrash
}

func (g *Game) stepCrash(in core.InputFrame) {
	if in.Now.Before(g.crash.until) {
		return
	}
	g.crash = crashState{}
	g.addOverlay(msgJustKidding, g.worldW/2, g.worldH/2, StyleMeta)
	g.resume(in.Now)
}

// resume returns to play without crediting the modal time to the world.
func (g *Game) resume(wall time.Time) {
	g.phase = PhasePlaying
	g.clock.Sync(wall)
}
