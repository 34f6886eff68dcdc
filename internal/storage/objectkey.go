package storage

import (
	"fmt"
	"math/rand/v2"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ThumbnailFolder is the sub-path thumbnail uploads are placed under.
const ThumbnailFolder = "thumbnails"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// ObjectKey builds a storage key for an uploaded file:
// [folder/]{unix millis}-{9-char base36 token}.{original extension}.
// Keys sort by upload time and collide only if two uploads land in the same
// millisecond with the same token.
func ObjectKey(filename, folder string) string {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomToken(9))
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		key += "." + ext
	}
	if folder != "" {
		key = path.Join(folder, key)
	}
	return key
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}
