package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/lpernett/godotenv"

	"github.com/katalvlaran/ductroute/energy"
)

// Environment variables overriding the default energy model. All are
// optional; values must parse as non-negative floats.
const (
	envHorizontal   = "DUCTROUTE_COST_HORIZONTAL"
	envVerticalUp   = "DUCTROUTE_COST_VERTICAL_UP"
	envVerticalDown = "DUCTROUTE_COST_VERTICAL_DOWN"
	envTurn         = "DUCTROUTE_COST_TURN"
	envBasePressure = "DUCTROUTE_COST_BASE_PRESSURE"
)

// loadModel builds the energy model from the environment, reading an
// optional .env file first. A missing .env is fine; malformed or
// negative overrides are errors.
func loadModel() (energy.Model, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return energy.Model{}, fmt.Errorf("load .env: %w", err)
	}

	m := energy.DefaultModel()
	for _, override := range []struct {
		key string
		dst *float64
	}{
		{envHorizontal, &m.Horizontal},
		{envVerticalUp, &m.VerticalUp},
		{envVerticalDown, &m.VerticalDown},
		{envTurn, &m.Turn},
		{envBasePressure, &m.BasePressure},
	} {
		raw, ok := os.LookupEnv(override.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return energy.Model{}, fmt.Errorf("%s: not a number: %q", override.key, raw)
		}
		if v < 0 {
			return energy.Model{}, fmt.Errorf("%s: must be non-negative, got %v", override.key, v)
		}
		*override.dst = v
	}
	return m, nil
}
