package domain

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty int32

const (
	DifficultyClassic Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

const RottenSlots = 4

// Difficulties is the cycling order shown on the menu.
var Difficulties = []Difficulty{
	DifficultyClassic,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyClassic:
		return "Classic"
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int32(d))
}

// Next wraps around after the last tier.
func (d Difficulty) Next() Difficulty {
	for i, tier := range Difficulties {
		if tier == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return Difficulties[0]
}

func ParseDifficulty(name string) (Difficulty, error) {
	for _, tier := range Difficulties {
		if strings.EqualFold(tier.String(), strings.TrimSpace(name)) {
			return tier, nil
		}
	}
	return DifficultyClassic, fmt.Errorf("unknown difficulty %q", name)
}

// DifficultySettings is one tier's row. FoodChance is the lemon's respawn
// chance and stays 1 on every tier, so an eaten lemon always reappears.
// BossMode is carried for display only.
type DifficultySettings struct {
	Difficulty    Difficulty
	FoodChance    float64
	RottenChance  [RottenSlots]float64
	AppleChance   float64
	BananaChance  float64
	SpeedBonus    time.Duration
	Obstacles     bool
	ObstacleCount int
	BossMode      bool
}

var difficultyTable = map[Difficulty]DifficultySettings{
	DifficultyClassic: {
		Difficulty: DifficultyClassic,
		FoodChance: 1,
	},
	DifficultyEasy: {
		Difficulty:   DifficultyEasy,
		FoodChance:   1,
		RottenChance: [RottenSlots]float64{0.2, 0.1, 0, 0},
		AppleChance:  0.10,
		BananaChance: 0.02,
		SpeedBonus:   time.Millisecond,
	},
	DifficultyMedium: {
		Difficulty:    DifficultyMedium,
		FoodChance:    1,
		RottenChance:  [RottenSlots]float64{0.35, 0.25, 0.15, 0},
		AppleChance:   0.12,
		BananaChance:  0.04,
		SpeedBonus:    2 * time.Millisecond,
		Obstacles:     true,
		ObstacleCount: 6,
	},
	DifficultyHard: {
		Difficulty:    DifficultyHard,
		FoodChance:    1,
		RottenChance:  [RottenSlots]float64{0.8, 0.7, 0.6, 0.6},
		AppleChance:   0.10,
		BananaChance:  0.01,
		SpeedBonus:    4 * time.Millisecond,
		Obstacles:     true,
		ObstacleCount: 12,
		BossMode:      true,
	},
}

func (d Difficulty) Settings() DifficultySettings {
	if s, ok := difficultyTable[d]; ok {
		return s
	}
	return difficultyTable[DifficultyClassic]
}
