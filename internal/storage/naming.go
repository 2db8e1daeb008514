package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

var pathSeparators = strings.NewReplacer("/", " ", `\`, " ")

// Sanitize turns a client supplied filename into one that is safe to store on
// disk. Non-ASCII characters are decomposed and dropped, path separators and
// whitespace become underscores and anything outside [A-Za-z0-9_.-] is removed.
// The result may be empty.
func Sanitize(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	name = pathSeparators.Replace(b.String())
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}

// Namer derives the storage name of an incoming file from its original name.
// An empty result means the original name cannot be stored.
type Namer interface {
	StorageName(original string) string
}

// PlainNamer stores files under their sanitized original name.
type PlainNamer struct{}

func (PlainNamer) StorageName(original string) string {
	return Sanitize(original)
}

// TimestampNamer prefixes the sanitized original name with the current unix
// time in seconds.
type TimestampNamer struct {
	Now func() time.Time
}

func (n TimestampNamer) StorageName(original string) string {
	safe := Sanitize(original)
	if safe == "" {
		return ""
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	return fmt.Sprintf("%d-%s", now().Unix(), safe)
}

// UniqueNamer prefixes the sanitized original name with a random UUID.
type UniqueNamer struct {
	NewID func() string
}

func (n UniqueNamer) StorageName(original string) string {
	safe := Sanitize(original)
	if safe == "" {
		return ""
	}

	newID := uuid.NewString
	if n.NewID != nil {
		newID = n.NewID
	}

	return newID() + "-" + safe
}

// Naming groups the namers used by every ingestion path.
type Naming struct {
	Multi  Namer
	Single Namer
	Remote Namer
}

// UniqueNaming uses a UUID prefix on every ingestion path.
func UniqueNaming() Naming {
	n := UniqueNamer{}
	return Naming{Multi: n, Single: n, Remote: n}
}

// LegacyNaming timestamps multi-file uploads and stores single uploads and
// fetched avatars under their sanitized name, overwriting earlier files.
func LegacyNaming() Naming {
	return Naming{
		Multi:  TimestampNamer{},
		Single: PlainNamer{},
		Remote: PlainNamer{},
	}
}
