// Package camomile provides the signal externals of the Camomile plugin
// bridge in pure Go, centred on tabplayer~, a real-time table player.
//
// # Features
//
//   - Sample-accurate playback of a range of a multi-channel array
//   - Variable, signed speed: negative speeds play backwards
//   - Looping with an equal-power (sine/cosine) crossfade across the seam
//   - Compensation for arrays recorded at a different rate than the engine
//   - 4-point Hermite interpolation with safe edge handling
//   - Allocation-free, lock-free audio path
//   - Sliding-window median filter (median~)
//   - Parameter, array and console model of a plugin instance
//
// # Quick Start
//
// Arrays live in a store that is handed to every player explicitly:
//
//	arr, err := camomile.NewArray(44100, left, right)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := camomile.NewStore()
//	store.Put("loop", arr)
//
//	p, err := camomile.NewTabPlayer(store, camomile.Options{
//	    ArrayName: "loop",
//	    Loop:      true,
//	    FadeMs:    20,
//	    Channels:  2,
//	}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.Configure(camomile.Config{Channels: 2, BlockSize: 64, SampleRate: 48000})
//	p.Send("range", camomile.FloatAtom(0), camomile.FloatAtom(1000))
//	p.Send("play")
//
//	// in the audio callback
//	p.Process(64, nil, outputs)
//
// Arrays can also be read from WAV files with [LoadWAV]. Within a Camomile
// instance, [Instance.LoadArray] does that into the instance's [Store], and
// [Instance.NewTabPlayer] parses the usual construction arguments:
//
//	tabplayer~ <array-name> [-loop] [-fade <ms>] [channel-count]
//
// # Messages
//
// Control messages are parsed into a closed set of [Command] values by
// [ParseCommand] and applied with [TabPlayer.Handle], or both at once with
// [TabPlayer.Send]:
//
//	set <array>                  bind another array
//	play [start-ms end-ms speed] start playback, optionally updating range and speed
//	stop, pause, resume          transport
//	reset                        full range, 100% speed
//	start <ms>, end <ms>         range boundaries
//	range <start-ms> <end-ms>    both boundaries
//	speed <percent>              100 is normal speed, negative plays backwards
//	loop <0|1>                   looping
//	fade <ms>                    loop crossfade, at most half of the range
//	bang, <float>                play; a zero float stops
//
// Malformed messages are rejected with [ErrImproperArgs] and leave the
// player unchanged.
//
// # Thread Safety
//
// A [TabPlayer] is driven by one audio goroutine calling [TabPlayer.Process]
// and one control goroutine sending messages. The control goroutine publishes
// a freshly computed [PlaybackRange] and atomic scalar fields; the audio
// goroutine reads them without locking. Calls from several control goroutines
// must be serialized by the caller.
//
// The done handler registered with [TabPlayer.OnDone] runs on the audio
// goroutine for natural ends and loop wraps and must not block.
package camomile
