package table

const (
	// maxChannels bounds the channel count of a single array.
	maxChannels = 256

	msPerSecond = 1000.0

	// PCM format tag written into WAV headers.
	wavFormatPCM = 1

	// Default bit depth used by EncodeWAV when none is given.
	defaultBitDepth = 16
)
