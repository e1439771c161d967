package configs

// Redis configures the cross-instance event bus. An empty Addr disables it
// and events stay inside the process.
type Redis struct {
	Addr    string `env:"ADDRESS"`
	Channel string `env:"CHANNEL" envDefault:"adpanel:events"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
