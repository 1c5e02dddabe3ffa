package game

const (
	// DefaultMaxMisses is the miss count at which a hangman game is lost
	DefaultMaxMisses = 7

	// GallowsStages is the number of figure parts drawn, one per miss
	GallowsStages = 7

	// SessionNameWords is the number of words in a generated session name
	SessionNameWords = 2

	// SessionNameSeparator joins the words of a session name
	SessionNameSeparator = "-"

	// MaxNameAttempts bounds the search for an unused session name before a suffix is added
	MaxNameAttempts = 20
)

// Outcome labels recorded on a session score
const (
	OutcomeXWins  = "X wins"
	OutcomeOWins  = "O wins"
	OutcomeDraw   = "Draws"
	OutcomeSolved = "Solved"
	OutcomeHanged = "Hanged"
)
