package config

// SetDefaults fills every zero-valued field with a playtested default.
func SetDefaults(cfg *Config) {
	if cfg.Expansion.ReturnDistance == 0 {
		cfg.Expansion.ReturnDistance = 15
	}
	if cfg.Expansion.ExpansionDistance == 0 {
		cfg.Expansion.ExpansionDistance = 10
	}
	if cfg.Expansion.MinHaliteDensity == 0 {
		cfg.Expansion.MinHaliteDensity = 200
	}
	if cfg.Expansion.ShipRadius == 0 {
		cfg.Expansion.ShipRadius = 8
	}
	if cfg.Expansion.NShips == 0 {
		cfg.Expansion.NShips = 3
	}

	if cfg.Navigation.ReturnStepCost == 0 {
		cfg.Navigation.ReturnStepCost = 1
	}
	if cfg.Navigation.GoHomeSafetyFactor == 0 {
		cfg.Navigation.GoHomeSafetyFactor = 2
	}

	if cfg.Pheromones.DiffusionCoefficient == 0 {
		cfg.Pheromones.DiffusionCoefficient = 0.3
	}
	if cfg.Pheromones.DecayRate == 0 {
		cfg.Pheromones.DecayRate = 0.05
	}
	if cfg.Pheromones.ShipAbsorbtion == 0 {
		cfg.Pheromones.ShipAbsorbtion = 1.0
	}
	if cfg.Pheromones.ShipEvaporation == 0 {
		cfg.Pheromones.ShipEvaporation = 0.1
	}
	if cfg.Pheromones.TimeStep == 0 {
		cfg.Pheromones.TimeStep = 1.0
	}
	if cfg.Pheromones.NSteps == 0 {
		cfg.Pheromones.NSteps = 3
	}

	if cfg.Strategy.SpawnHaliteFloor == 0 {
		cfg.Strategy.SpawnHaliteFloor = 1000
	}
	if cfg.Strategy.SpawnMinRoundsLeftFactor == 0 {
		cfg.Strategy.SpawnMinRoundsLeftFactor = 0.5
	}

	if cfg.Ships.GreedyHarvestLimit == 0 {
		cfg.Ships.GreedyHarvestLimit = 50
	}
	if cfg.Ships.CarefulnessLimit == 0 {
		cfg.Ships.CarefulnessLimit = 100
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Driver == "" {
		cfg.Telemetry.Driver = "sqlite"
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.DSN == "" {
		cfg.Telemetry.DSN = "halite-telemetry.db"
	}
}
