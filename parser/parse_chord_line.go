package parser

import (
	"github.com/jsphweid/chordmark/model"
)

// ParseChordLine parses a line such as "C.. G.. % [Am F] NC..." into bars of
// beat-positioned chords.
//
// The returned tree is built from scratch on each call; repeated bars are
// independent copies of the bar they repeat.
func ParseChordLine(line string, opts ...Option) (model.ChordLine, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return model.ChordLine{}, err
	}

	tokens, err := tokenize(line, o.grammar)
	if err != nil {
		return model.ChordLine{}, err
	}

	b := &barBuilder{
		line:    line,
		opts:    o,
		allBars: []model.Bar{},
	}
	for i, tok := range tokens {
		isLast := i == len(tokens)-1
		if o.grammar.IsBarRepeat(tok.text) {
			err = b.repeatBar(tok)
		} else {
			err = b.addChord(tok, isLast)
		}
		if err != nil {
			return model.ChordLine{}, err
		}
	}

	if err := resolveSubBeats(line, b.allBars); err != nil {
		return model.ChordLine{}, err
	}

	return model.ChordLine{AllBars: b.allBars}, nil
}

type barBuilder struct {
	line string
	opts *options

	allBars          []model.Bar
	bar              model.Bar
	previousBar      *model.Bar
	currentBeatCount int
	isInSubBeatGroup bool
	subBeatGroupSize int
}

func (b *barBuilder) repeatBar(tok token) error {
	if n := len(b.bar.AllChords); n > 0 {
		last := b.bar.AllChords[n-1]
		return &IncorrectBeatCountError{
			Token:            last.Token,
			Duration:         int(last.Duration),
			CurrentBeatCount: b.currentBeatCount,
			BeatCount:        b.opts.timeSignature.BeatCount,
		}
	}
	if b.previousBar == nil {
		return &BarRepeatError{Line: b.line, Token: tok.text}
	}

	for range []rune(tok.text) {
		repeated := b.previousBar.Clone()
		repeated.IsRepeated = true
		b.allBars = append(b.allBars, repeated)
	}
	return nil
}

func (b *barBuilder) addChord(tok token, isLast bool) error {
	g := b.opts.grammar
	beatCount := b.opts.timeSignature.BeatCount

	if g.OpensSubBeat(tok.text) {
		b.isInSubBeatGroup = true
		b.subBeatGroupSize = 0
	}
	if b.isInSubBeatGroup {
		b.subBeatGroupSize++
	}
	if b.isInSubBeatGroup && g.DurationMarkers(tok.text) > 0 {
		return &InvalidSubBeatGroupError{
			Line:     b.line,
			Symbol:   tok.text,
			Position: tok.offset,
			Reason:   "duration markers are not allowed inside a group",
		}
	}

	duration := b.duration(tok.text)
	chordModel, err := b.chordModel(tok.text)
	if err != nil {
		return err
	}

	chord := model.Chord{
		Token:            tok.text,
		Model:            chordModel,
		Duration:         float64(duration),
		Beat:             b.currentBeatCount + 1,
		IsInSubBeatGroup: b.isInSubBeatGroup,
	}
	b.currentBeatCount += duration

	if err := b.checkRepetition(chord); err != nil {
		return err
	}
	b.bar.AllChords = append(b.bar.AllChords, chord)

	if g.ClosesSubBeat(tok.text) {
		if !isValidGroupSize(b.subBeatGroupSize) {
			return &InvalidSubBeatGroupError{
				Line:     b.line,
				Symbol:   tok.text,
				Position: tok.offset,
				Reason:   groupSizeReason(b.subBeatGroupSize),
			}
		}
		b.isInSubBeatGroup = false
		b.currentBeatCount++
	}

	switch {
	case b.currentBeatCount == beatCount:
		b.closeBar()
	case b.currentBeatCount > beatCount || isLast:
		return &IncorrectBeatCountError{
			Token:            tok.text,
			Duration:         duration,
			CurrentBeatCount: b.currentBeatCount,
			BeatCount:        beatCount,
		}
	}
	return nil
}

// duration is the number of trailing duration markers, the whole bar when
// there are none, or 0 for sub-beat members which are resolved afterwards.
func (b *barBuilder) duration(text string) int {
	if b.isInSubBeatGroup {
		return 0
	}
	if n := b.opts.grammar.DurationMarkers(text); n > 0 {
		return n
	}
	return b.opts.timeSignature.BeatCount
}

func (b *barBuilder) chordModel(text string) (model.ChordModel, error) {
	cleaned := b.opts.grammar.Clean(text)
	if b.opts.grammar.IsNoChord(cleaned) {
		return model.NoChord, nil
	}
	def, err := b.opts.parseChord(cleaned)
	if err != nil {
		return model.ChordModel{}, &InvalidChordError{Token: text, Err: err}
	}
	return model.ChordModel{Def: def}, nil
}

// checkRepetition rejects a chord equal to the one before it in the bar,
// unless a sub-beat group boundary separates them.
func (b *barBuilder) checkRepetition(chord model.Chord) error {
	n := len(b.bar.AllChords)
	if n == 0 {
		return nil
	}
	previous := b.bar.AllChords[n-1]
	if previous.Model != chord.Model {
		return nil
	}
	g := b.opts.grammar
	if g.OpensSubBeat(chord.Token) || g.ClosesSubBeat(previous.Token) {
		return nil
	}
	return &InvalidChordRepetitionError{Token: chord.Token}
}

func (b *barBuilder) closeBar() {
	b.bar.TimeSignature = b.opts.timeSignature
	b.bar.HasUnevenChordsDurations = hasUnevenChordsDurations(b.bar)
	if b.previousBar != nil {
		b.bar.IsRepeated = b.bar.Equal(*b.previousBar)
	}

	b.allBars = append(b.allBars, b.bar.Clone())

	closed := b.bar.Clone()
	closed.IsRepeated = false
	b.previousBar = &closed

	b.bar = model.Bar{}
	b.currentBeatCount = 0
}

func hasUnevenChordsDurations(bar model.Bar) bool {
	first := bar.AllChords[0].Duration
	for _, c := range bar.AllChords[1:] {
		if c.Duration != first {
			return true
		}
	}
	return false
}
