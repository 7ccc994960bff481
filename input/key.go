package input

import (
	"time"

	"github.com/lixenwraith/space-shooter/engine"
)

// Key is a logical game key, independent of the platform's key codes
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyShoot

	keyCount
)

var keyNames = [keyCount]string{
	KeyLeft:  "left",
	KeyRight: "right",
	KeyShoot: "shoot",
}

// String returns the key's canonical name
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeyState reports whether a logical key is currently held
type KeyState interface {
	Pressed(k Key) bool
}

// Sample reads all game keys once and stamps the result with now
func Sample(ks KeyState, now time.Time) engine.Input {
	return engine.Input{
		Left:  ks.Pressed(KeyLeft),
		Right: ks.Pressed(KeyRight),
		Shoot: ks.Pressed(KeyShoot),
		Now:   now,
	}
}
