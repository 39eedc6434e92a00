package camomile

// Object names used as console prefixes
const (
	tabplayerName = "tabplayer~"
	medianName    = "median~"
)

// Processing defaults and limits
const (
	// DefaultBlockSize is the Pure Data block size.
	DefaultBlockSize = 64

	// DefaultSampleRate is the engine rate assumed until Configure is called.
	DefaultSampleRate = 44100

	// MaxChannels is the maximum number of player outputs.
	MaxChannels = 64

	// maxBlockSize bounds the block size accepted by Configure.
	maxBlockSize = 1 << 16
)

// Playback parameter defaults
const (
	// percentScale converts speed percentages to rate multipliers.
	percentScale = 100.0

	defaultRate     = 1.0
	defaultChannels = 1
)

// Command argument counts
const (
	playMaxArgs  = 3
	rangeArgs    = 2
	singleArg    = 1
	noArgs       = 0
	playStartArg = 1
	playEndArg   = 2
	playRateArg  = 3
)
