// Package pet defines the pet model shared by the API client and the CLI
// display.
package pet

import (
	"fmt"
	"time"

	"github.com/bitpet/bitpet/internal/model"
)

// Pet mirrors the API's pet resource. Timestamps are unix milliseconds.
type Pet struct {
	UserID    string  `json:"user_id"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Level     float64 `json:"level"`
	Hunger    float64 `json:"hunger"`
	Energy    float64 `json:"energy"`
	Happiness float64 `json:"happiness"`
	CreatedAt int64   `json:"created_at"`
	LastFedAt int64   `json:"last_fed_at"`
	Streak    uint64  `json:"streak"`
}

// State extracts the stats the transition model operates on.
func (p *Pet) State() *model.State {
	return &model.State{
		Hunger:    p.Hunger,
		Energy:    p.Energy,
		Happiness: p.Happiness,
		Level:     p.Level,
	}
}

// SetState writes transitioned stats back.
func (p *Pet) SetState(s *model.State) {
	p.Hunger = s.Hunger
	p.Energy = s.Energy
	p.Happiness = s.Happiness
	p.Level = s.Level
}

// AgeDays returns the pet's age in whole days at now.
func (p *Pet) AgeDays(now time.Time) int64 {
	ms := now.UnixMilli() - p.CreatedAt
	if ms < 0 {
		return 0
	}
	return ms / (1000 * 60 * 60 * 24)
}

// Health grades a stat for display colouring.
type Health int

const (
	Good Health = iota
	Fair
	Poor
)

// HungerHealth grades hunger: low hunger is good.
func (p *Pet) HungerHealth() Health {
	switch {
	case p.Hunger <= 30:
		return Good
	case p.Hunger <= 75:
		return Fair
	default:
		return Poor
	}
}

// EnergyHealth grades coding energy: high energy is good.
func (p *Pet) EnergyHealth() Health {
	switch {
	case p.Energy <= 30:
		return Poor
	case p.Energy <= 75:
		return Fair
	default:
		return Good
	}
}

// HappinessHealth grades happiness: high happiness is good.
func (p *Pet) HappinessHealth() Health {
	switch {
	case p.Happiness <= 30:
		return Poor
	case p.Happiness <= 75:
		return Fair
	default:
		return Good
	}
}

// StatLine is one row of the status display.
type StatLine struct {
	Label  string
	Value  string
	Health Health
}

// StatusLines builds the status rows shown by 'bitpet status'.
func (p *Pet) StatusLines(now time.Time) []StatLine {
	return []StatLine{
		{Label: "Level", Value: fmt.Sprintf("%.1f", p.Level), Health: Good},
		{Label: "Hunger", Value: fmt.Sprintf("%.0f", p.Hunger), Health: p.HungerHealth()},
		{Label: "Coding Energy", Value: fmt.Sprintf("%.0f", p.Energy), Health: p.EnergyHealth()},
		{Label: "Happiness", Value: fmt.Sprintf("%.0f", p.Happiness), Health: p.HappinessHealth()},
		{Label: "Coding streak days", Value: fmt.Sprintf("%d", p.Streak), Health: Good},
		{Label: "Age", Value: fmt.Sprintf("%d days", p.AgeDays(now)), Health: Good},
	}
}
