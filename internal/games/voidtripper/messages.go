package voidtripper

// metaMessages are the random commentary lines shown during play.
var metaMessages = []string{
	"Are you still playing this?",
	"The asteroids are becoming self-aware",
	"ERROR: Fun.exe not found... just kidding",
	"Your GPU is judging you right now",
	"Plot twist: You are the asteroid",
	"The void stares back",
	"Achievement Unlocked: Wasting Time",
	"Why are we here? Just to suffer?",
	"Loading existential dread... 100%",
	"The developer is watching",
	"This isn't even my final form",
	"Reality.dll has crashed",
	"Is this game... sentient?",
	"Help I'm trapped in a game factory",
	"Your score means nothing in the cosmic void",
	"The asteroids have families, you monster",
	"Have you tried turning reality off and on?",
	"Breaking the 4th wall costs extra",
	"Simulation theory confirmed",
	"THE CAKE IS A LIE (sorry wrong game)",
	"Press F to pay respects to fallen asteroids",
	"You're not playing the game, the game is playing you",
	"Insert coin to continue existing",
	"Your moves are being uploaded to the cloud",
	"DEBUG: player.sanity = null",
}

// Puzzle is one chess-dimension quiz.
type Puzzle struct {
	Question string
	Pieces   []string
}

var chessPuzzles = []Puzzle{
	{Question: "White to move: Qh7#?", Pieces: []string{"♕", "♔", "♚"}},
	{Question: "En passant is real, right?", Pieces: []string{"♙", "♟"}},
	{Question: "Is a knight worth 3 points?", Pieces: []string{"♘", "♞"}},
	{Question: "What's the best opening?", Pieces: []string{"♔", "♚"}},
}

// dialogues are spoken by sentient asteroids.
var dialogues = []string{
	"Why do you shoot us?",
	"I have a family!",
	"I'm not even a real asteroid",
	"This is asteroid abuse",
	"I voted for you",
	"We could have been friends",
	"I was 2 days from retirement",
	"Tell my wife I love her",
	"*existential screaming*",
	"I'm just a bunch of vertices",
}

var hitMessages = []string{"OOF", "BONK", "F", "RIP", "*windows xp shutdown*", "skill issue?"}

var crashMessages = []string{"SEGFAULT", "NULL_POINTER", "STACK_OVERFLOW", "REALITY_EXCEPTION"}

var chessGlyphs = []string{"♜", "♞", "♝", "♛", "♚", "♟"}

// thoughts drift across the screen during an existential crisis.
var thoughts = []string{
	"What is reality?",
	"Do asteroids dream?",
	"Is high score the meaning of life?",
	"I think, therefore I game",
}

// greetings stand in for the player's name when the host does not know it.
var greetings = []string{"gamer", "player", "human", "you there"}

const (
	msgQuizCorrect  = "♔ BRILLIANT MOVE! +500 ♔"
	msgQuizWrong    = "The chess gods are disappointed"
	msgJustKidding  = "Just kidding >:)"
	msgInverted     = "⚠ CONTROLS INVERTED ⚠"
	msgMonster      = "You monster... :'("
	msgRecord       = "NEW DIMENSION RECORD"
	msgTimeSlows    = "T I M E   S L O W S"
	msgAustralia    = "ɐᴉlɐɹʇsn∀ oʇ ǝɯoɔlǝM"
	msgChessOn      = "♔ CHESS DIMENSION ACTIVATED ♔"
	msgRealityBreak = "R̸E̵A̶L̷I̴T̸Y̵ ̶B̷R̸O̴K̵E̸N̶"
	msgNegative     = "ENTERING THE NEGATIVE ZONE"
	msgSmol         = "smol mode"
	msgUnit         = "ABSOLUTE UNIT"
)

var existentialLines = []string{"Why do we play games?", "What is the point?", "Are we the asteroid?"}

var fourthWallLines = []string{"I can see you through the screen", "Just kidding... or am I?"}

// summaryBlurb describes a final score.
func summaryBlurb(score int) string {
	switch {
	case score < 100:
		return "The asteroids barely noticed you"
	case score < 500:
		return "The void is mildly uncomfortable"
	case score < 1000:
		return "The void acknowledges your existence"
	case score < 2000:
		return "Reality trembled slightly"
	default:
		return "You have glimpsed the true nature of the void"
	}
}
