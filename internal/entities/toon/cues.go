package toon

// CueKind names a client-side effect raised while a reward is applied
type CueKind string

const (
	CueHPString      CueKind = "hp_string"
	CueEmote         CueKind = "emote"
	CueSound         CueKind = "sound"
	CueSystemMessage CueKind = "system_message"
)

// Color is an RGB triple in the 0..1 range
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Cue is one pending client effect. Cues are not persisted; the delivery
// layer drains them after a successful apply.
type Cue struct {
	Kind  CueKind `json:"kind"`
	Text  string  `json:"text"`
	Color *Color  `json:"color,omitempty"`
}

// BroadcastHPString floats coloured text above the toon's head
func (t *Toon) BroadcastHPString(text string, color Color) {
	t.cues = append(t.cues, Cue{Kind: CueHPString, Text: text, Color: &color})
}

// PlayEmote makes the toon perform an emote
func (t *Toon) PlayEmote(emote string) {
	t.cues = append(t.cues, Cue{Kind: CueEmote, Text: emote})
}

// PlaySound plays a sound file on the client
func (t *Toon) PlaySound(path string) {
	t.cues = append(t.cues, Cue{Kind: CueSound, Text: path})
}

// SendSystemMessage shows a system message to the player
func (t *Toon) SendSystemMessage(text string) {
	t.cues = append(t.cues, Cue{Kind: CueSystemMessage, Text: text})
}

// PendingCues returns the cues raised so far without clearing them
func (t *Toon) PendingCues() []Cue {
	return t.cues
}

// DrainCues returns and clears the pending cues
func (t *Toon) DrainCues() []Cue {
	cues := t.cues
	t.cues = nil
	return cues
}
