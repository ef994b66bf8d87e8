package config

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsTooFewCircles(t *testing.T) {
	cfg := Default()
	cfg.TotalCircles = 1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for total-circles < 2")
	}
}

func TestValidateRejectsInvertedSpawnRange(t *testing.T) {
	cfg := Default()
	cfg.XSpawnRangeLo, cfg.XSpawnRangeHi = 10, -10
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for inverted spawn range")
	}
}

func TestValidateRejectsInvertedVelocityRange(t *testing.T) {
	cfg := Default()
	cfg.YVelocityRangeLo, cfg.YVelocityRangeHi = 5, -5
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for inverted velocity range")
	}
}

func TestValidateRejectsNonPositiveFixedRadius(t *testing.T) {
	cfg := Default()
	cfg.RadiusFixed = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for non-positive fixed radius")
	}
}

func TestValidateRejectsInvertedUniformRadiusRange(t *testing.T) {
	cfg := Default()
	cfg.RadiusUniform = true
	cfg.RadiusLo, cfg.RadiusHi = 5, 1
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for inverted radius range")
	}
}

func TestValidateRejectsOutOfRangeWorkerCount(t *testing.T) {
	cfg := Default()
	cfg.MaxWorkers = 0
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for max-workers=0")
	}
	cfg.MaxWorkers = 1000
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for max-workers beyond the ceiling")
	}
}

func TestValidateRejectsUnknownSinkAndVisualize(t *testing.T) {
	cfg := Default()
	cfg.Sink = "carrier-pigeon"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown sink")
	}

	cfg = Default()
	cfg.Visualize = "hologram"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unknown visualize mode")
	}
}

func TestParseAppliesFlagOverrides(t *testing.T) {
	cfg, err := Parse([]string{"-total-circles", "500", "-spawn-seed", "9", "-max-workers", "2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TotalCircles != 500 {
		t.Fatalf("expected total-circles 500, got %d", cfg.TotalCircles)
	}
	if cfg.SpawnSeed != 9 {
		t.Fatalf("expected spawn-seed 9, got %d", cfg.SpawnSeed)
	}
	if cfg.MaxWorkers != 2 {
		t.Fatalf("expected max-workers 2, got %d", cfg.MaxWorkers)
	}
}

func TestParseRejectsInvalidFlagCombination(t *testing.T) {
	if _, err := Parse([]string{"-total-circles", "1"}); err == nil {
		t.Fatalf("expected Parse to reject total-circles=1 via Validate")
	}
}
