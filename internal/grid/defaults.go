package grid

import "github.com/zclconf/go-cty/cty"

// BohrMagneton is the Bohr magneton in A·m², used to express atomic moments.
const BohrMagneton = 9.2740100657e-24

// Default returns the built-in grid used when no configuration file is
// given: a single GdFe case with every field a one-element list.
func Default() *Grid {
	num := func(f float64) []cty.Value { return []cty.Value{cty.NumberFloatVal(f)} }
	integer := func(i int64) []cty.Value { return []cty.Value{cty.NumberIntVal(i)} }
	str := func(s string) []cty.Value { return []cty.Value{cty.StringVal(s)} }
	// Moments are multiplied at float64 precision, as the simulator inputs always were.
	var muB float64 = BohrMagneton

	return &Grid{values: map[string][]cty.Value{
		"seed":            integer(12345),
		"pre_steps":       integer(40000),
		"run_steps":       integer(120000),
		"save_steps":      integer(100),
		"dt_sec":          num(0.1e-15),
		"run_parent_path": str("C:/my_files/research/project_3/project_3_data/data_atomistic_spin_model_GdFe"),
		"run_base_folder": str("run_20250915_004000_000000"),
		"pre_Te_kelvin":   integer(83),
		"input_Te_path":   str("C:/my_files/research/project_3/project_3_data/data_two_temperature_model/chen_2001/temperatures_20250914_212817_938"),
		"nx":              integer(50),
		"ny":              integer(50),
		"nz":              integer(50),
		"a_m":             integer(1),
		"frac_Gd":         num(0.25),

		"J_FeFe_joule_per_link": num(2.835e-21),
		"J_FeGd_joule_per_link": num(-1.09e-22),
		"J_GdGd_joule_per_link": num(1.26e-21),

		"mx_init_Fe": num(0.0), "my_init_Fe": num(0.0), "mz_init_Fe": num(-1.0),
		"mx_init_Gd": num(0.0), "my_init_Gd": num(0.0), "mz_init_Gd": num(1.0),

		"Hx_appl_tesla": num(0.0), "Hy_appl_tesla": num(0.0), "Hz_appl_tesla": num(0.0),

		"mu_ampere_m2_Fe":            num(1.92 * muB),
		"alpha_Fe":                   num(0.05),
		"gamma_rad_per_tesla_sec_Fe": num(1.76e11),
		"ku_joule_per_atom_Fe":       num(0.807246e-23),
		"easy_axis_x_Fe":             num(0.0), "easy_axis_y_Fe": num(0.0), "easy_axis_z_Fe": num(1.0),

		"mu_ampere_m2_Gd":            num(7.63 * muB),
		"alpha_Gd":                   num(0.05),
		"gamma_rad_per_tesla_sec_Gd": num(1.76e11),
		"ku_joule_per_atom_Gd":       num(0.807246e-23),
		"easy_axis_x_Gd":             num(0.0), "easy_axis_y_Gd": num(0.0), "easy_axis_z_Gd": num(1.0),
	}}
}
