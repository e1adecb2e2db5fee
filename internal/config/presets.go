package config

var Presets = map[string]map[string]*Config{
	"decay": {
		"unit": {
			Model: "decay", Method: "backward_euler", Step: 0.01, T0: 0, T1: 1,
			Y0: []float64{1.0},
		},
		"fast": {
			Model: "decay", Method: "backward_euler", Step: 0.001, T0: 0, T1: 1,
			Y0: []float64{1.0}, Params: map[string]float64{"rate": 10.0},
		},
	},
	"vanderpol": {
		"limit_cycle": {
			Model: "vanderpol", Method: "rk4", Step: 0.01, T0: 0, T1: 30,
			Y0: []float64{2.0, 0.0},
		},
		"stiff": {
			Model: "vanderpol", Method: "backward_euler", Step: 0.01, T0: 0, T1: 50,
			Y0: []float64{2.0, 0.0}, Params: map[string]float64{"mu": 50.0},
		},
	},
	"spring_mass": {
		"underdamped": {
			Model: "spring_mass", Method: "rk4", Step: 0.01, T0: 0, T1: 20,
			Y0: []float64{1.0, 0.0},
		},
		"overdamped": {
			Model: "spring_mass", Method: "backward_euler", Step: 0.01, T0: 0, T1: 20,
			Y0: []float64{1.0, 0.0}, Params: map[string]float64{"damping": 15.0},
		},
	},
	"logistic": {
		"growth": {
			Model: "logistic", Method: "backward_euler", Step: 0.01, T0: 0, T1: 10,
			Y0: []float64{0.1},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
