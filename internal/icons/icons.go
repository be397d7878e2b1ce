package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Stop       string
	Device     string
	Shuffle    string
	RepeatAll  string
	RepeatOne  string
	Volume     string
	VolumeMute string
	Queue      string
	Offline    string
}

var (
	nerdIcons = Icons{
		Play:       "", // nf-fa-play
		Pause:      "", // nf-fa-pause
		Stop:       "", // nf-fa-stop
		Device:     "󰓃",      // nf-md-speaker
		Shuffle:    "󰒟",      // nf-md-shuffle
		RepeatAll:  "󰑖",      // nf-md-repeat
		RepeatOne:  "󰑘",      // nf-md-repeat_once
		Volume:     "󰕾",      // nf-md-volume_high
		VolumeMute: "󰖁",      // nf-md-volume_off
		Queue:      "󰲸",      // nf-md-playlist_music
		Offline:    "󰖪",      // nf-md-wifi_off
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Stop:       "⏹",
		Device:     "🔊",
		Shuffle:    "🔀",
		RepeatAll:  "🔁",
		RepeatOne:  "🔂",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Queue:      "📋",
		Offline:    "⚠",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Stop:       "[]",
		Device:     "#",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		RepeatOne:  "[1]",
		Volume:     "vol",
		VolumeMute: "mut",
		Queue:      "[Q]",
		Offline:    "[!]",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the play indicator.
func Play() string { return current.Play }

// Pause returns the pause indicator.
func Pause() string { return current.Pause }

// Stop returns the stop indicator.
func Stop() string { return current.Stop }

// Device returns the playback target glyph, used as a stand-in when a
// target has no current track to show.
func Device() string { return current.Device }

// Shuffle returns the shuffle icon.
func Shuffle() string { return current.Shuffle }

// RepeatAll returns the repeat all icon.
func RepeatAll() string { return current.RepeatAll }

// RepeatOne returns the repeat one icon.
func RepeatOne() string { return current.RepeatOne }

// Volume returns the volume icon.
func Volume() string { return current.Volume }

// VolumeMute returns the muted volume icon.
func VolumeMute() string { return current.VolumeMute }

// Queue returns the queue icon.
func Queue() string { return current.Queue }

// Offline returns the disconnected indicator.
func Offline() string { return current.Offline }
