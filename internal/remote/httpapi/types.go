package httpapi

// Wire types for the playback server's JSON API.

type targetDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	PoweredOn bool   `json:"poweredOn"`
	State     string `json:"state"` // "idle", "playing", "paused"
	TrackID   string `json:"trackId,omitempty"`
}

type trackDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album,omitempty"`
	DurationMS int64  `json:"durationMs,omitempty"`
}

type statusDTO struct {
	Target     string    `json:"target"`
	State      string    `json:"state"`
	Track      *trackDTO `json:"track,omitempty"`
	PositionMS int64     `json:"positionMs"`
	Volume     int       `json:"volume"`
	Shuffle    bool      `json:"shuffle"`
	Repeat     string    `json:"repeat"` // "off", "all", "one"
}

type commandDTO struct {
	Action     string `json:"action"`
	PositionMS int64  `json:"positionMs,omitempty"`
	Volume     int    `json:"volume,omitempty"`
}
