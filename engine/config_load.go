package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// sizeFile is the TOML shape of a sprite size
type sizeFile struct {
	W int `toml:"w"`
	H int `toml:"h"`
}

// configFile is the TOML shape of Config; durations are whole milliseconds
type configFile struct {
	ScreenWidth     int      `toml:"screen_width"`
	ScreenHeight    int      `toml:"screen_height"`
	PlayerSpeed     int      `toml:"player_speed"`
	BulletSpeed     int      `toml:"bullet_speed"`
	EnemySpeed      int      `toml:"enemy_speed"`
	PlayerStartX    int      `toml:"player_start_x"`
	PlayerStartY    int      `toml:"player_start_y"`
	BulletMargin    int      `toml:"bullet_margin"`
	ShootCooldownMs int      `toml:"shoot_cooldown_ms"`
	FrameDelayMs    int      `toml:"frame_delay_ms"`
	SpawnOdds       int      `toml:"spawn_odds"`
	Player          sizeFile `toml:"player"`
	Bullet          sizeFile `toml:"bullet"`
	Enemy           sizeFile `toml:"enemy"`
}

func toConfigFile(c Config) configFile {
	return configFile{
		ScreenWidth:     c.ScreenWidth,
		ScreenHeight:    c.ScreenHeight,
		PlayerSpeed:     c.PlayerSpeed,
		BulletSpeed:     c.BulletSpeed,
		EnemySpeed:      c.EnemySpeed,
		PlayerStartX:    c.PlayerStartX,
		PlayerStartY:    c.PlayerStartY,
		BulletMargin:    c.BulletMargin,
		ShootCooldownMs: int(c.ShootCooldown / time.Millisecond),
		FrameDelayMs:    int(c.FrameDelay / time.Millisecond),
		SpawnOdds:       c.SpawnOdds,
		Player:          sizeFile{W: c.PlayerSize.W, H: c.PlayerSize.H},
		Bullet:          sizeFile{W: c.BulletSize.W, H: c.BulletSize.H},
		Enemy:           sizeFile{W: c.EnemySize.W, H: c.EnemySize.H},
	}
}

func (f configFile) config() Config {
	return Config{
		ScreenWidth:   f.ScreenWidth,
		ScreenHeight:  f.ScreenHeight,
		PlayerSpeed:   f.PlayerSpeed,
		BulletSpeed:   f.BulletSpeed,
		EnemySpeed:    f.EnemySpeed,
		PlayerSize:    Size{W: f.Player.W, H: f.Player.H},
		BulletSize:    Size{W: f.Bullet.W, H: f.Bullet.H},
		EnemySize:     Size{W: f.Enemy.W, H: f.Enemy.H},
		PlayerStartX:  f.PlayerStartX,
		PlayerStartY:  f.PlayerStartY,
		BulletMargin:  f.BulletMargin,
		ShootCooldown: time.Duration(f.ShootCooldownMs) * time.Millisecond,
		FrameDelay:    time.Duration(f.FrameDelayMs) * time.Millisecond,
		SpawnOdds:     f.SpawnOdds,
	}
}

// LoadConfig decodes a TOML tuning file over base and validates the result.
// Keys absent from the file keep base's value; unknown keys are rejected.
func LoadConfig(path string, base Config) (Config, error) {
	f := toConfigFile(base)
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return finishConfig(path, md, f)
}

// ParseConfig is LoadConfig for in-memory TOML
func ParseConfig(data string, base Config) (Config, error) {
	f := toConfigFile(base)
	md, err := toml.Decode(data, &f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return finishConfig("<inline>", md, f)
}

func finishConfig(source string, md toml.MetaData, f configFile) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, source, strings.Join(keys, ", "))
	}
	cfg := f.config()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}
