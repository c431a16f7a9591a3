package schema

// Kind is the value type a field's candidates are coerced to.
type Kind int

const (
	// Number is a real-valued physical quantity.
	Number Kind = iota
	// Integer is a count or seed; fractional values are rejected.
	Integer
	// String is a filesystem path or folder name.
	String
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case String:
		return "string"
	default:
		return "number"
	}
}

// Field is a single named simulation parameter.
type Field struct {
	Name string
	Kind Kind
	// Group names the vector the field is a component of, or is empty.
	Group string
}

// Vector group names.
const (
	GroupMagInitFe  = "m_init_Fe"
	GroupMagInitGd  = "m_init_Gd"
	GroupAppliedH   = "H_appl"
	GroupEasyAxisFe = "easy_axis_Fe"
	GroupEasyAxisGd = "easy_axis_Gd"
)

// Fields referenced by name outside this package.
const (
	SeedField     = "seed"
	RunParentPath = "run_parent_path"
	RunBaseFolder = "run_base_folder"
	InputTempPath = "input_Te_path"
)

var fields = []Field{
	{Name: SeedField, Kind: Integer},
	{Name: "pre_steps", Kind: Integer},
	{Name: "run_steps", Kind: Integer},
	{Name: "save_steps", Kind: Integer},
	{Name: "dt_sec", Kind: Number},
	{Name: RunParentPath, Kind: String},
	{Name: RunBaseFolder, Kind: String},
	{Name: "pre_Te_kelvin", Kind: Number},
	{Name: InputTempPath, Kind: String},
	{Name: "nx", Kind: Integer},
	{Name: "ny", Kind: Integer},
	{Name: "nz", Kind: Integer},
	{Name: "a_m", Kind: Number},
	{Name: "frac_Gd", Kind: Number},
	{Name: "J_FeFe_joule_per_link", Kind: Number},
	{Name: "J_FeGd_joule_per_link", Kind: Number},
	{Name: "J_GdGd_joule_per_link", Kind: Number},
	{Name: "mx_init_Fe", Kind: Number, Group: GroupMagInitFe},
	{Name: "my_init_Fe", Kind: Number, Group: GroupMagInitFe},
	{Name: "mz_init_Fe", Kind: Number, Group: GroupMagInitFe},
	{Name: "mx_init_Gd", Kind: Number, Group: GroupMagInitGd},
	{Name: "my_init_Gd", Kind: Number, Group: GroupMagInitGd},
	{Name: "mz_init_Gd", Kind: Number, Group: GroupMagInitGd},
	{Name: "Hx_appl_tesla", Kind: Number, Group: GroupAppliedH},
	{Name: "Hy_appl_tesla", Kind: Number, Group: GroupAppliedH},
	{Name: "Hz_appl_tesla", Kind: Number, Group: GroupAppliedH},
	{Name: "mu_ampere_m2_Fe", Kind: Number},
	{Name: "alpha_Fe", Kind: Number},
	{Name: "gamma_rad_per_tesla_sec_Fe", Kind: Number},
	{Name: "ku_joule_per_atom_Fe", Kind: Number},
	{Name: "easy_axis_x_Fe", Kind: Number, Group: GroupEasyAxisFe},
	{Name: "easy_axis_y_Fe", Kind: Number, Group: GroupEasyAxisFe},
	{Name: "easy_axis_z_Fe", Kind: Number, Group: GroupEasyAxisFe},
	{Name: "mu_ampere_m2_Gd", Kind: Number},
	{Name: "alpha_Gd", Kind: Number},
	{Name: "gamma_rad_per_tesla_sec_Gd", Kind: Number},
	{Name: "ku_joule_per_atom_Gd", Kind: Number},
	{Name: "easy_axis_x_Gd", Kind: Number, Group: GroupEasyAxisGd},
	{Name: "easy_axis_y_Gd", Kind: Number, Group: GroupEasyAxisGd},
	{Name: "easy_axis_z_Gd", Kind: Number, Group: GroupEasyAxisGd},
}

// index maps a field name to its position in fields.
var index = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.Name] = i
	}
	return m
}()

// Len returns the number of schema fields.
func Len() int {
	return len(fields)
}

// Fields returns a copy of the schema in column order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Names returns the field names in column order. The result is a fresh slice.
func Names() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

// At returns the field at position i. It panics if i is out of range.
func At(i int) Field {
	return fields[i]
}

// Lookup returns the field with the given name.
func Lookup(name string) (Field, bool) {
	i, ok := index[name]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// Index returns the column position of name, or -1 if it is not a schema field.
func Index(name string) int {
	if i, ok := index[name]; ok {
		return i
	}
	return -1
}

// Groups returns the vector group names in schema order.
func Groups() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, f := range fields {
		if f.Group == "" {
			continue
		}
		if _, ok := seen[f.Group]; ok {
			continue
		}
		seen[f.Group] = struct{}{}
		out = append(out, f.Group)
	}
	return out
}

// GroupMembers returns the column positions of the components of group,
// in schema order. Unknown groups yield nil.
func GroupMembers(group string) []int {
	var out []int
	for i, f := range fields {
		if f.Group == group {
			out = append(out, i)
		}
	}
	return out
}
