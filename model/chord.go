package model

// ChordDef is a parsed chord symbol. The parser treats it as an opaque,
// comparable value.
type ChordDef struct {
	Root       string `json:"root"`
	Descriptor string `json:"descriptor,omitempty"`
	Bass       string `json:"bass,omitempty"`
}

// ChordModel is either a parsed chord or the no-chord sentinel.
type ChordModel struct {
	Def       ChordDef `json:"def"`
	IsNoChord bool     `json:"isNoChord,omitempty"`
}

var NoChord = ChordModel{IsNoChord: true}

// Chord is one chord of a chord line. Token, Model, Duration and Beat belong
// to the parser; Symbol and the spacing fields are added by later stages.
type Chord struct {
	Token            string     `json:"string"`
	Model            ChordModel `json:"model"`
	Duration         float64    `json:"duration"`
	Beat             int        `json:"beat"`
	IsInSubBeatGroup bool       `json:"isInSubBeatGroup"`
	IsFirstOfSubBeat bool       `json:"isFirstOfSubBeat,omitempty"`
	IsLastOfSubBeat  bool       `json:"isLastOfSubBeat,omitempty"`

	Symbol       string `json:"symbol,omitempty"`
	SpacesWithin int    `json:"spacesWithin,omitempty"`
	SpacesAfter  int    `json:"spacesAfter,omitempty"`
}
