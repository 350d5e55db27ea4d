package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/chordmark/model"
)

const (
	minSubBeatGroupSize = 2
	maxSubBeatGroupSize = 4
)

// resolveSubBeats gives the members of each sub-beat group their share of
// the beat and flags the first and last members. A group is a run of
// in-group chords sharing the same bar and beat.
func resolveSubBeats(line string, allBars []model.Bar) error {
	for barIndex := range allBars {
		chords := allBars[barIndex].AllChords
		for start := 0; start < len(chords); {
			if !chords[start].IsInSubBeatGroup {
				start++
				continue
			}
			end := start + 1
			for end < len(chords) && chords[end].IsInSubBeatGroup && chords[end].Beat == chords[start].Beat {
				end++
			}

			size := end - start
			if !isValidGroupSize(size) {
				return &InvalidSubBeatGroupError{
					Line:     line,
					Symbol:   chords[end-1].Token,
					Position: runeIndex(line, chords[end-1].Token),
					Reason:   groupSizeReason(size),
				}
			}

			duration := roundSignificant(1/float64(size), 2)
			for i := start; i < end; i++ {
				chords[i].Duration = duration
				chords[i].IsFirstOfSubBeat = i == start
				chords[i].IsLastOfSubBeat = i == end-1
			}
			start = end
		}
	}
	return nil
}

// roundSignificant keeps digits significant digits of x: 1/3 becomes 0.33.
func roundSignificant(x float64, digits int) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'g', digits, 64), 64)
	return rounded
}

// runeIndex is the rune offset of the last occurrence of sub in s.
func runeIndex(s, sub string) int {
	i := strings.LastIndex(s, sub)
	if i < 0 {
		return i
	}
	return utf8.RuneCountInString(s[:i])
}

func groupSizeReason(size int) string {
	return "a group holds from 2 to 4 chords, got " + strconv.Itoa(size)
}

func isValidGroupSize(size int) bool {
	return size >= minSubBeatGroupSize && size <= maxSubBeatGroupSize
}
