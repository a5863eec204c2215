package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the gameplay configuration table. The source variants
// disagree on several combat constants (tower cooldown 45 vs 60 ticks,
// shooting range 15 vs 20, monument pools 500-2000); this table pins
// one consistent set instead of hiding the choice in code.
type Config struct {
	Logging Logging `toml:"logging"`
	Match   Match   `toml:"match"`
	Minion  Minion  `toml:"minion"`
	Tower   Tower   `toml:"tower"`
	Player  Player  `toml:"player"`
	Base    Base    `toml:"base"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type Match struct {
	TickRate          float64 `toml:"tick_rate"`
	WaveIntervalTicks int     `toml:"wave_interval_ticks"`
	MinionsPerWave    int     `toml:"minions_per_wave"`
	RushChance        float64 `toml:"rush_chance"` // monument-rush probability per spawned minion
	SpawnJitter       float64 `toml:"spawn_jitter"`
}

type Minion struct {
	MaxHealth       int     `toml:"max_health"`
	Damage          int     `toml:"damage"`
	Speed           float64 `toml:"speed"`
	AttackRange     float64 `toml:"attack_range"`
	MonumentExtra   float64 `toml:"monument_extra"` // extra aggro radius against monuments
	CooldownTicks   int     `toml:"cooldown_ticks"`
	ProjectileSpeed float64 `toml:"projectile_speed"`
}

type Tower struct {
	MaxHealth       int     `toml:"max_health"`
	Damage          int     `toml:"damage"`
	ShootingRange   float64 `toml:"shooting_range"`
	CooldownTicks   int     `toml:"cooldown_ticks"`
	DetectTicks     int     `toml:"detect_ticks"` // scan interval, 30 ticks = 500ms
	ProjectileSpeed float64 `toml:"projectile_speed"`
}

type Player struct {
	MaxHealth    int     `toml:"max_health"`
	Speed        float64 `toml:"speed"`
	SprintMult   float64 `toml:"sprint_mult"`
	Radius       float64 `toml:"radius"`
	ArriveEps    float64 `toml:"arrive_eps"`
	RespawnTicks int     `toml:"respawn_ticks"` // 300 ticks = 5s
}

type Base struct {
	ShellHealth    int     `toml:"shell_health"`    // outer shell, cosmetic pool
	MonumentHealth int     `toml:"monument_health"` // the win-condition pool
	MonumentScale  float64 `toml:"monument_scale"`  // incoming damage multiplier
	PlatformHeight float64 `toml:"platform_height"`
	RampWidth      float64 `toml:"ramp_width"` // height transition zone
}

// Default returns the canonical constant set
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "console"},
		Match: Match{
			TickRate:          60,
			WaveIntervalTicks: 1800, // 30s
			MinionsPerWave:    4,
			RushChance:        0.05,
			SpawnJitter:       1.5,
		},
		Minion: Minion{
			MaxHealth:       100,
			Damage:          10,
			Speed:           3.5,
			AttackRange:     5,
			MonumentExtra:   15,
			CooldownTicks:   60, // 1s at 60fps
			ProjectileSpeed: 18,
		},
		Tower: Tower{
			MaxHealth:       300,
			Damage:          50,
			ShootingRange:   15,
			CooldownTicks:   45,
			DetectTicks:     30,
			ProjectileSpeed: 24,
		},
		Player: Player{
			MaxHealth:    200,
			Speed:        6,
			SprintMult:   1.6,
			Radius:       0.5,
			ArriveEps:    0.1,
			RespawnTicks: 300, // 5s
		},
		Base: Base{
			ShellHealth:    1000,
			MonumentHealth: 1000,
			MonumentScale:  0.2,
			PlatformHeight: 1.2,
			RampWidth:      5,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error: the defaults stand.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would break simulation invariants
func (c *Config) Validate() error {
	if c.Match.TickRate <= 0 {
		return fmt.Errorf("match.tick_rate must be positive, got %v", c.Match.TickRate)
	}
	if c.Match.MinionsPerWave < 0 {
		return fmt.Errorf("match.minions_per_wave must not be negative, got %d", c.Match.MinionsPerWave)
	}
	if c.Match.RushChance < 0 || c.Match.RushChance > 1 {
		return fmt.Errorf("match.rush_chance must be in [0,1], got %v", c.Match.RushChance)
	}
	if c.Base.MonumentScale <= 0 || c.Base.MonumentScale > 1 {
		return fmt.Errorf("base.monument_scale must be in (0,1], got %v", c.Base.MonumentScale)
	}
	for name, v := range map[string]int{
		"minion.max_health":    c.Minion.MaxHealth,
		"tower.max_health":     c.Tower.MaxHealth,
		"player.max_health":    c.Player.MaxHealth,
		"base.shell_health":    c.Base.ShellHealth,
		"base.monument_health": c.Base.MonumentHealth,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	return nil
}
