package configs

// Shell points at an optional YAML file replacing the built-in panel
// layout.
type Shell struct {
	LayoutFile string `env:"LAYOUT_FILE"`
}
