package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/abcroll/constants"
	"golang.org/x/exp/constraints"
)

func EnsureDir(dir string) {
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		panic("Could not create dir: " + err.Error())
	}
}

func GatherAllSongPaths(path string) []string {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			panic("Error walking: " + err.Error())
		}
		if !d.IsDir() && strings.HasSuffix(s, constants.SongExtension) {
			res = append(res, s)
		}
		return nil
	}
	filepath.WalkDir(path, walk)
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
