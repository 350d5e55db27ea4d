package util

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// GatherSheetPaths walks path and returns the files having one of the given
// extensions. maxNum of 0 means no limit.
func GatherSheetPaths(path string, extensions []string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.HasSuffix(s, ext) {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
				break
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}
