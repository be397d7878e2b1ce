package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "targets"
}

// All contains every key binding, in help-display order.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},
	{[]string{"enter"}, ActionToggleExpand, "Expand/collapse player", "global"},
	{[]string{"esc"}, ActionCollapse, "Collapse player", "global"},
	{[]string{"u"}, ActionToggleQueue, "Toggle queue panel", "global"},

	// Playback
	{[]string{"space"}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"s"}, ActionStop, "Stop", "playback"},
	{[]string{"n", "pgdown"}, ActionNextTrack, "Next track", "playback"},
	{[]string{"p", "pgup"}, ActionPrevTrack, "Previous track", "playback"},
	{[]string{"shift+right"}, ActionSeekForward, "Seek +5s", "playback"},
	{[]string{"shift+left"}, ActionSeekBack, "Seek -5s", "playback"},
	{[]string{"+", "="}, ActionVolumeUp, "Volume up", "playback"},
	{[]string{"-"}, ActionVolumeDown, "Volume down", "playback"},
	{[]string{"R"}, ActionCycleRepeat, "Cycle repeat mode", "playback"},
	{[]string{"S"}, ActionToggleShuffle, "Toggle shuffle", "playback"},

	// Targets
	{[]string{"tab", "]"}, ActionNextTarget, "Next target", "targets"},
	{[]string{"shift+tab", "["}, ActionPrevTarget, "Previous target", "targets"},
	{[]string{"x"}, ActionDismissHints, "Dismiss swipe hints", "targets"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
