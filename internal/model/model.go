// Package model evaluates the linear pet-state transition model. The model
// predicts the pet's next hunger, energy, happiness and level from its
// current stats, the action taken, and the elapsed time.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// EnvModelPath overrides the built-in coefficients with a model file.
const EnvModelPath = "BITPET_MODEL_JSON"

// featureCount is the width of the feature vector: four stats, the one-hot
// action, elapsed hours. Every weight row must match it.
const featureCount = 9

// Action is the input event driving a state transition.
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionSleep
	ActionTick
)

// Model holds the trained coefficients. Feature order must match the
// training input columns: hunger, energy, happiness, level, then the one-hot
// action, then elapsed hours.
type Model struct {
	InputCols  []string    `json:"input_cols"`
	OutputCols []string    `json:"output_cols"`
	Weights    [][]float64 `json:"weights"` // shape: [4][9]
	Bias       []float64   `json:"bias"`    // shape: [4]
}

// State is the mutable part of a pet the model operates on.
type State struct {
	Hunger    float64
	Energy    float64
	Happiness float64
	Level     float64
}

// Load returns the model from EnvModelPath when set, otherwise the built-in
// coefficients.
func Load() (*Model, error) {
	path := os.Getenv(EnvModelPath)
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model file: %w", err)
	}
	if len(m.Weights) != 4 || len(m.Bias) != 4 {
		return nil, fmt.Errorf("model file has wrong shape: %d weight rows, %d biases", len(m.Weights), len(m.Bias))
	}
	for i, row := range m.Weights {
		if len(row) != featureCount {
			return nil, fmt.Errorf("model file has wrong shape: weight row %d has %d columns, want %d", i, len(row), featureCount)
		}
	}
	return &m, nil
}

// Default returns hand-tuned coefficients approximating the trained model:
// hunger climbs with time and drops on feeding, energy recovers on sleep and
// drains on play, happiness rises on play and decays on its own, level creeps
// up with any activity.
func Default() *Model {
	return &Model{
		InputCols: []string{
			"hunger", "energy", "happiness", "level",
			"action_feed", "action_play", "action_sleep", "action_tick",
			"elapsed_time",
		},
		OutputCols: []string{"next_hunger", "next_energy", "next_happiness", "next_level"},
		Weights: [][]float64{
			{0.95, 0, 0, 0, -30, 5, 0, 0, 1.5},  // next_hunger
			{0, 0.95, 0, 0, 5, -10, 25, 0, 0.5}, // next_energy
			{0, 0, 0.90, 0, 5, 25, 0, 0, -1.0},  // next_happiness
			{0, 0, 0, 1.0, 0.2, 0.2, 0.05, 0, 0},
		},
		Bias: []float64{0, 0, 0, 0},
	}
}

// Predict evaluates the model on a raw feature vector.
func (m *Model) Predict(x []float64) [4]float64 {
	var y [4]float64
	for i := 0; i < 4; i++ {
		s := m.Bias[i]
		row := m.Weights[i]
		for j := range x {
			s += row[j] * x[j]
		}
		y[i] = s
	}
	return y
}

// Apply advances state by one action after elapsedHours. Stats clamp to
// [0, 100]; level never drops and keeps fractional progress.
func (m *Model) Apply(s *State, action Action, elapsedHours float64) {
	x := features(s, action, elapsedHours)
	y := m.Predict(x[:])

	s.Hunger = clamp(y[0])
	s.Energy = clamp(y[1])
	s.Happiness = clamp(y[2])
	s.Level = max(y[3], s.Level)
}

func features(s *State, action Action, elapsedHours float64) [9]float64 {
	oh := oneHot(action)
	return [9]float64{
		s.Hunger, s.Energy, s.Happiness, s.Level,
		oh[0], oh[1], oh[2], oh[3],
		elapsedHours,
	}
}

func oneHot(a Action) [4]float64 {
	var oh [4]float64
	oh[a] = 1
	return oh
}

func clamp(v float64) float64 {
	return min(max(v, 0), 100)
}
