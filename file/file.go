package file

import (
	"fmt"
	"os"

	"github.com/jsphweid/chordmark/constants"
	"github.com/jsphweid/chordmark/util"
)

type SheetFile struct {
	Path string
	Text string
}

// LoadSheets reads the sheet at path, or every sheet file below path when
// it is a directory.
func LoadSheets(path string) ([]SheetFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not load sheets: %w", err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = util.GatherSheetPaths(path, constants.SheetExtensions, 0)
		if err != nil {
			return nil, fmt.Errorf("could not walk %s: %w", path, err)
		}
	}

	res := make([]SheetFile, 0, len(paths))
	for _, p := range paths {
		text, err := ReadSheet(p)
		if err != nil {
			return nil, err
		}
		res = append(res, SheetFile{Path: p, Text: text})
	}
	return res, nil
}

func ReadSheet(path string) (string, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read sheet: %w", err)
	}
	return string(dat), nil
}
