package s3

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// specific logic around s3, eg how noise tiles are laid out under a
// bucket's hash prefixes

// Ext is the extension of encoded noise tiles.
const Ext = ".bnz"

// Params are the generator arguments recorded in a tile's key.
type Params struct {
	Size       int
	MinSpacing int
	Seed       int64
}

// ParseParamsFromKey parses generator parameters from an s3 key ending in
// <size>/<min-spacing>/<seed>.bnz.
func ParseParamsFromKey(key string) (*Params, error) {
	// sanity check to see if it's even possible
	if len(key) < 6+len(Ext) {
		return nil, errors.New("Too few characters")
	}
	if !strings.HasSuffix(key, Ext) {
		return nil, errors.New("Missing extension")
	}
	trimmed := key[:len(key)-len(Ext)]

	fields := strings.Split(trimmed, "/")
	if len(fields) < 3 {
		return nil, errors.New("Missing fields")
	}
	fields = fields[len(fields)-3:]

	size, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("Invalid size: %#v %s", fields[0], err)
	}
	spacing, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("Invalid min spacing: %#v %s", fields[1], err)
	}
	seed, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("Invalid seed: %#v %s", fields[2], err)
	}
	return &Params{Size: size, MinSpacing: spacing, Seed: seed}, nil
}

// HashString returns the first 5 characters of the md5 hash.
// This is what gets used as s3 path prefixes.
func HashString(s string) string {
	md5Hash := md5.Sum([]byte(s))
	hex := fmt.Sprintf("%x", md5Hash)
	return hex[:5]
}

// KeyForParams returns the hashed s3 key for a noise tile.
func KeyForParams(prefix string, p Params) string {
	pathToHash := fmt.Sprintf("%d/%d/%d%s", p.Size, p.MinSpacing, p.Seed, Ext)
	hash := HashString(pathToHash)
	return fmt.Sprintf("%s/%s/%s", hash, prefix, pathToHash)
}
